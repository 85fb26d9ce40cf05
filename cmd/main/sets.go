package main

import (
	"fmt"
	"slices"

	"scryfall/client/internal/domain"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets [code]",
	Short: "List every set, or the cards of one set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			set, err := c.Set(ctx, domain.SetCode(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (%s) %d cards, released %s\n", set.Name, set.Code, set.CardCount, set.ReleasedAt)

			cards, err := c.SetCards(ctx, set)
			if err != nil {
				return err
			}
			for card := range cards.All(ctx) {
				printCard(out, card)
			}
			return cards.Err()
		}

		sets, err := c.Sets(ctx)
		if err != nil {
			return err
		}
		setType := lo.Must(cmd.Flags().GetString("type"))
		for set := range sets.All(ctx) {
			if setType != "" && string(set.SetType) != setType {
				continue
			}
			fmt.Fprintf(out, "%-6s %-50s %-18s %s\n", set.Code, set.Name, set.SetType, set.ReleasedAt)
		}
		return sets.Err()
	},
}

var catalogCmd = &cobra.Command{
	Use:       "catalog <kind>",
	Short:     "Print a catalog such as creature-types or card-names",
	Args:      cobra.ExactArgs(1),
	ValidArgs: lo.Map(domain.CatalogKinds, func(k domain.CatalogKind, _ int) string { return k.String() }),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.CatalogKind(args[0])
		if !slices.Contains(domain.CatalogKinds, kind) {
			return fmt.Errorf("unknown catalog %q", args[0])
		}

		catalog, err := newClient().Catalog(cmd.Context(), kind)
		if err != nil {
			return err
		}
		for _, value := range catalog.Data {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	},
}

func init() {
	setsCmd.Flags().String("type", "", "Only list sets of this type, e.g. expansion")

	rootCmd.AddCommand(setsCmd, catalogCmd)
}
