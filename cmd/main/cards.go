package main

import (
	"fmt"
	"io"
	"strings"

	"scryfall/client/internal/domain"
	"scryfall/client/internal/search"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Print every card matching a search query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		opts := search.WithQuery(search.Custom(strings.Join(args, " "))).
			Unique(search.ParseUniqueStrategy(lo.Must(flags.GetString("unique")))).
			Order(search.ParseSortOrder(lo.Must(flags.GetString("order")))).
			Direction(search.ParseSortDirection(lo.Must(flags.GetString("dir"))))
		if lo.Must(flags.GetBool("extras")) {
			opts.Extras(true)
		}

		cards, err := newClient().Search(ctx, opts)
		if err != nil {
			return err
		}

		low, high := cards.SizeHint()
		if total, ok := high.Get(); ok {
			low = total
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "🔎 %d cards\n", low)

		limit := lo.Must(flags.GetInt("limit"))
		printed := 0
		for res := range cards.StreamBuffered(ctx, cfg.Bulk.Buffer) {
			card, err := res.Get()
			if err != nil {
				return err
			}
			printCard(cmd.OutOrStdout(), card)
			printed++
			if limit > 0 && printed >= limit {
				break
			}
		}
		return nil
	},
}

var namedCmd = &cobra.Command{
	Use:   "named <name>...",
	Short: "Look up a card by exact or fuzzy name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := strings.Join(args, " ")
		c := newClient()

		var (
			card domain.Card
			err  error
		)
		set := lo.Must(cmd.Flags().GetString("set"))
		switch {
		case lo.Must(cmd.Flags().GetBool("fuzzy")):
			card, err = c.NamedFuzzy(ctx, name)
		case set != "":
			card, err = c.NamedInSet(ctx, name, domain.SetCode(set))
		default:
			card, err = c.Named(ctx, name)
		}
		if err != nil {
			return err
		}

		printCardDetail(cmd.OutOrStdout(), card)
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random [query]...",
	Short: "Print a random card, optionally restricted by a query",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := search.Empty()
		if len(args) > 0 {
			q = search.Custom(strings.Join(args, " "))
		}

		card, err := newClient().Random(cmd.Context(), q)
		if err != nil {
			return err
		}

		printCardDetail(cmd.OutOrStdout(), card)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("unique", "cards", "Collapse duplicates: cards, art or prints")
	searchCmd.Flags().String("order", "name", "Sort field")
	searchCmd.Flags().String("dir", "auto", "Sort direction: auto, asc or desc")
	searchCmd.Flags().Bool("extras", false, "Include tokens and other extra cards")
	searchCmd.Flags().IntP("limit", "n", 0, "Stop after this many cards")

	namedCmd.Flags().Bool("fuzzy", false, "Match names fuzzily")
	namedCmd.Flags().String("set", "", "Restrict an exact match to a set code")

	rootCmd.AddCommand(searchCmd, namedCmd, randomCmd)
}

func printCard(w io.Writer, card domain.Card) {
	price := card.Prices.USD.Map(func(p string) (string, bool) {
		return "$" + p, true
	}).OrElse("-")
	fmt.Fprintf(w, "%-40s %-6s %-6s %-9s %s\n", card.Name, card.Set, card.CollectorNumber, card.Rarity, price)
}

func printCardDetail(w io.Writer, card domain.Card) {
	fmt.Fprintf(w, "%s %s\n", card.Name, card.ManaCost)
	fmt.Fprintln(w, card.TypeLine)
	if card.OracleText != "" {
		fmt.Fprintln(w, card.OracleText)
	}
	fmt.Fprintf(w, "%s #%s (%s) released %s\n", strings.ToUpper(string(card.Set)), card.CollectorNumber, card.Rarity, card.ReleasedAt)
	fmt.Fprintln(w, card.URI)
}
