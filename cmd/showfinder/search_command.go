package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/showfinder/showfinder/internal/parser"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search shows by name",
		Long:  "Search shows by name. The term is sent exactly as given; quote it to keep spaces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := ctx.open()
			if err != nil {
				return err
			}
			defer q.Close()

			shows, err := q.SearchShows(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ctx.jsonOutput {
				return writeJSON(cmd, shows)
			}

			out := cmd.OutOrStdout()
			width := summaryWidth(out)
			rows := make([][]string, 0, len(shows))
			for _, s := range shows {
				rows = append(rows, []string{
					strconv.Itoa(s.ID),
					displayText(s.Name),
					truncate(displayText(parser.SummaryText(s.Summary)), width),
					s.Image,
				})
			}

			p := message.NewPrinter(language.English)
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Summary", "Image"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				shouldColorize(out),
			))
			p.Fprintf(out, "%d shows found\n", len(shows))
			return nil
		},
	}
}
