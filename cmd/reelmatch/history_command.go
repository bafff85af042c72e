package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kdimtricp/reelmatch/internal/database"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent catalog fetches from the fetch log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFetchLog(cmd.Context(), func(repo *database.FetchLogRepository) error {
				entries, err := repo.ListRecent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No fetches recorded.")
					return nil
				}

				rows := make([][]string, len(entries))
				for i, e := range entries {
					rows[i] = []string{
						e.FetchedAt.Local().Format(time.DateTime),
						e.Language,
						e.Outcome,
						strconv.Itoa(e.RecordCount),
						strconv.FormatInt(e.LatencyMS, 10) + "ms",
						e.Error,
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Fetched", "Lang", "Outcome", "Records", "Latency", "Error"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")
	return cmd
}
