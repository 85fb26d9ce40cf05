package main

import (
	"fmt"
	"slices"

	"scryfall/client/internal/container"
	"scryfall/client/internal/domain"
	"scryfall/client/internal/service"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Download or import Scryfall bulk data files",
}

var bulkImportCmd = &cobra.Command{
	Use:   "import <type>",
	Short: "Stream a bulk file into Postgres",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseBulkType(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		app, err := container.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		var stats service.ImportStats
		if file := lo.Must(cmd.Flags().GetString("file")); file != "" {
			stats, err = app.Service.ImportFile(ctx, kind, file)
		} else {
			stats, err = app.Service.ImportBulk(ctx, kind, lo.Must(cmd.Flags().GetBool("force")))
		}
		if err != nil {
			return err
		}

		if stats.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", kind)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d imported, %d failed\n", kind, stats.Items-stats.Failed, stats.Failed)
		return nil
	},
}

var bulkDownloadCmd = &cobra.Command{
	Use:   "download <type>",
	Short: "Save a bulk file under the bulk directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseBulkType(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		app, err := container.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		path, err := app.Service.DownloadBulk(ctx, kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var bulkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available bulk files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		files, err := newClient().BulkFiles(ctx)
		if err != nil {
			return err
		}
		for _, file := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %12d  %s  %s\n",
				file.Type, file.Size, file.UpdatedAt.Format("2006-01-02 15:04"), file.DownloadURI)
		}
		return nil
	},
}

func init() {
	bulkImportCmd.Flags().Bool("force", false, "Import even if the file has not changed")
	bulkImportCmd.Flags().String("file", "", "Import a previously downloaded file instead")

	bulkCmd.PersistentFlags().String("dir", "", "Directory for downloaded bulk files")
	lo.Must0(viper.BindPFlag("bulk.directory", bulkCmd.PersistentFlags().Lookup("dir")))

	bulkCmd.AddCommand(bulkImportCmd, bulkDownloadCmd, bulkListCmd)
	rootCmd.AddCommand(bulkCmd)
}

func parseBulkType(s string) (domain.BulkType, error) {
	kind := domain.BulkType(s)
	if !slices.Contains(domain.BulkTypes, kind) {
		return "", fmt.Errorf("unknown bulk type %q, want one of %v", s, domain.BulkTypes)
	}
	return kind, nil
}
