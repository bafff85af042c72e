package main

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/models"
)

func newMoviesCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List the popular movies fetched for a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := models.ParseLanguage(languageFlag)
			if err != nil {
				return err
			}

			return ctx.withFetcher(cmd.Context(), func(f catalog.Fetcher) error {
				movies, err := f.Discover(cmd.Context(), lang)
				if err != nil {
					return fmt.Errorf("fetch %s movies: %w", lang.Name(), err)
				}
				if asJSON {
					return writeJSON(cmd, movies)
				}
				if len(movies) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies found.")
					return nil
				}

				rows := make([][]string, len(movies))
				for i, m := range movies {
					rows[i] = []string{
						strconv.Itoa(i + 1),
						m.Title,
						yearOrNA(m),
						strconv.FormatFloat(m.Popularity, 'f', 1, 64),
						strconv.Itoa(m.ID),
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Title", "Year", "Popularity", "TMDb ID"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", string(models.Telugu), "Language code or name (te, hi, en)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func yearOrNA(m models.Movie) string {
	if y := m.ReleaseYear(); y != "" {
		return y
	}
	return "N/A"
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
