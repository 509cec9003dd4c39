package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "List the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.Atoi(args[0])
			if err != nil || showID <= 0 {
				return fmt.Errorf("invalid show id %q: must be a positive integer", args[0])
			}

			q, err := ctx.open()
			if err != nil {
				return err
			}
			defer q.Close()

			episodes, err := q.GetEpisodes(cmd.Context(), showID)
			if err != nil {
				return err
			}
			if ctx.jsonOutput {
				return writeJSON(cmd, episodes)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(episodes))
			for _, e := range episodes {
				rows = append(rows, []string{
					strconv.Itoa(e.Season),
					strconv.Itoa(e.Number),
					displayText(e.Name),
					strconv.Itoa(e.ID),
				})
			}

			p := message.NewPrinter(language.English)
			fmt.Fprintln(out, renderTable(
				[]string{"Season", "Number", "Name", "ID"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft, alignRight},
				shouldColorize(out),
			))
			p.Fprintf(out, "%d episodes\n", len(episodes))
			return nil
		},
	}
}
