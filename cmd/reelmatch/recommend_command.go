package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/models"
	"github.com/kdimtricp/reelmatch/internal/recommend"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var title string
	var topN int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend movies similar to a title",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := models.ParseLanguage(languageFlag)
			if err != nil {
				return err
			}
			title = strings.TrimSpace(title)
			if title == "" {
				return errors.New("--title is required")
			}
			if topN == 0 {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				topN = cfg.Recommend.TopN
			}
			if topN < 1 || topN > 20 {
				return fmt.Errorf("--n must be between 1 and 20, got %d", topN)
			}

			return ctx.withFetcher(cmd.Context(), func(f catalog.Fetcher) error {
				movies, err := f.Discover(cmd.Context(), lang)
				if err != nil {
					return fmt.Errorf("fetch %s movies: %w", lang.Name(), err)
				}

				recs := recommend.Recommend(movies, title, topN)
				if asJSON {
					if recs == nil {
						recs = []models.Movie{}
					}
					return writeJSON(cmd, recs)
				}
				if len(recs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No recommendations found.")
					return nil
				}

				rows := make([][]string, len(recs))
				for i, m := range recs {
					rows[i] = []string{strconv.Itoa(i + 1), m.Title, yearOrNA(m), catalog.MovieURL(m.ID)}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Rank", "Title", "Year", "Link"},
					rows,
					[]columnAlignment{alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", string(models.Telugu), "Language code or name (te, hi, en)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Title to find similar movies for")
	cmd.Flags().IntVar(&topN, "n", 0, "Number of recommendations (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
