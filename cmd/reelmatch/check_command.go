package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/models"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the API key and catalog reachability for every language",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFetcher(cmd.Context(), func(f catalog.Fetcher) error {
				var failed int
				rows := make([][]string, 0, len(models.Languages()))
				for _, lang := range models.Languages() {
					start := time.Now()
					movies, err := f.Discover(cmd.Context(), lang)
					latency := time.Since(start).Round(time.Millisecond)

					status := "ok"
					switch {
					case err != nil:
						failed++
						status = "unavailable"
					case len(movies) == 0:
						status = "empty"
					}
					rows = append(rows, []string{lang.Name(), lang.Code(), status, strconv.Itoa(len(movies)), latency.String()})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Language", "Code", "Status", "Movies", "Latency"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				if failed > 0 {
					return errors.New("catalog check failed; verify TMDB_API_KEY and network access")
				}
				return nil
			})
		},
	}
}
