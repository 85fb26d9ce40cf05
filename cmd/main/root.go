package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"scryfall/client/internal/client"
	"scryfall/client/internal/config"
	"scryfall/client/internal/logging"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfg is loaded once by the root command before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "scryfall",
	Short:         "Query the Scryfall card database and mirror it into Postgres",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.Log, os.Stderr)
		log.Debugf("⚙️ Using %s with %d workers", cfg.Scryfall.BaseURL, cfg.Scryfall.MaxWorkers)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	lo.Must0(viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().String("log-format", "", "Log format (text or json)")
	lo.Must0(viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")))

	rootCmd.PersistentFlags().String("base-url", "", "Scryfall API base URL")
	lo.Must0(viper.BindPFlag("scryfall.base_url", rootCmd.PersistentFlags().Lookup("base-url")))

	rootCmd.PersistentFlags().IntP("workers", "w", 0, "Number of concurrent workers")
	lo.Must0(viper.BindPFlag("scryfall.max_workers", rootCmd.PersistentFlags().Lookup("workers")))
}

// Execute runs the command line until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "❌ %s\n", strings.TrimSpace(err.Error()))
		stop()
		os.Exit(1)
	}
}

// newClient builds an API client for the lookup commands, which need
// neither Postgres nor Redis.
func newClient() client.ScryfallClient {
	return client.NewScryfallClient(cfg.Scryfall)
}
