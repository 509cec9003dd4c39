package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "showfinder",
		Short:         "Search TV shows and list their episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Request logs go to stderr and would drown the table.
			if !ctx.verbose {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.baseURL, "base-url", "", "TVmaze API base URL (overrides tvmaze_base_url)")
	flags.StringVar(&ctx.serverAddr, "server", "", "Query a showfinder gRPC server at host:port instead of the API")
	flags.StringVar(&ctx.timeout, "timeout", "", "Request timeout, e.g. 10s (overrides client_timeout)")
	flags.BoolVar(&ctx.jsonOutput, "json", false, "Print JSON instead of a table")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newEpisodesCommand(ctx))

	return rootCmd
}
