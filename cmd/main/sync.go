package main

import (
	"strings"

	"scryfall/client/internal/container"
	"scryfall/client/internal/search"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <query>...",
	Short: "Mirror every card matching a search into Postgres",
	Long: "Queues each result page on Redis streams and saves the cards with a pool of workers.\n" +
		"An interrupted sync of the same search resumes from its last page.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := container.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		opts := search.WithQuery(search.Custom(strings.Join(args, " "))).
			Unique(search.ParseUniqueStrategy(lo.Must(cmd.Flags().GetString("unique"))))

		log.Infof("🚀 Starting sync %s", opts.Values().Get("q"))
		return app.Sync(ctx, opts, lo.Must(cmd.Flags().GetBool("follow")))
	},
}

func init() {
	syncCmd.Flags().String("unique", "prints", "Collapse duplicates: cards, art or prints")
	syncCmd.Flags().Bool("follow", false, "Keep the workers running after the search is queued")

	rootCmd.AddCommand(syncCmd)
}
