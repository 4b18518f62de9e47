package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/demobank/fraudcall/internal/platform"
	"github.com/demobank/fraudcall/internal/storage"
	"github.com/spf13/cobra"
)

func casesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Manage fraud case records",
		Long:  `Inspect and reseed the fraud case store used by verification calls.`,
	}

	cmd.AddCommand(listCasesCmd())
	cmd.AddCommand(resetCasesCmd())

	return cmd
}

func listCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all fraud cases",
		Long:  `Display every fraud case in the store with its current disposition.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cases, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load cases: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Name"),
				headerStyle.Render("Card"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Merchant"),
				headerStyle.Render("Status"),
				headerStyle.Render("Outcome"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 12),
				strings.Repeat("-", 20),
				strings.Repeat("-", 20),
				strings.Repeat("-", 30))

			for _, c := range cases {
				note := c.OutcomeNote
				if note == "" {
					note = platform.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t…%s\t%.2f %s\t%s\t%s\t%s\n",
					c.UserName,
					c.CardEnding,
					c.TransactionAmount,
					c.TransactionCurrency,
					c.TransactionName,
					string(c.Status),
					note)
			}

			return nil
		},
	}
}

func resetCasesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reseed the store with the sample cases",
		Long:  `Replace the entire case store with the two pending sample records.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				fmt.Print("This replaces every case in the store. Continue? [y/N]: ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Println("Aborted.")
					return nil
				}
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Unlike mid-call saves, a reset must not fail silently.
			if err := store.Save(cmd.Context(), storage.SeedCases()); err != nil {
				return fmt.Errorf("failed to reseed case store: %w", err)
			}

			fmt.Println("Case store reseeded with sample records.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
