package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/cli"
)

func memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Inspect and manage session memory",
		Long: `Session memory holds the last-loaded transaction set plus free-form notes
(preferences, reminders) so the analytics commands can run without
re-supplying data each time.`,
	}

	cmd.AddCommand(memoryStatusCmd())
	cmd.AddCommand(memoryNoteCmd())
	cmd.AddCommand(memoryRecallCmd())
	cmd.AddCommand(memoryClearCmd())

	return cmd
}

func memoryStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report what the session currently holds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			sess, closeSession, err := openSession()
			if err != nil {
				return err
			}
			defer closeSession()

			status, err := sess.Status(cmd.Context())
			if err != nil {
				return fail(jsonOut, err)
			}

			return emit(jsonOut, status, func() {
				fmt.Println(cli.FormatTitle("Session Memory"))
				if status.HasTransactions {
					fmt.Printf("  Transactions: %d (from %s)\n",
						status.TransactionCount, cli.SubtleStyle.Render(status.LastSource))
				} else {
					fmt.Println(cli.SubtleStyle.Render("  No transactions loaded."))
				}
				fmt.Printf("  Notes: %d\n", status.NoteCount)
			})
		},
	}
	cmd.Flags().Bool("json", false, "emit the result as a JSON envelope")
	return cmd
}

func memoryNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <text>",
		Short: "Remember a free-form note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeSession, err := openSession()
			if err != nil {
				return err
			}
			defer closeSession()

			if err := sess.Remember(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Noted."))
			return nil
		},
	}
}

func memoryRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "List all remembered notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			sess, closeSession, err := openSession()
			if err != nil {
				return err
			}
			defer closeSession()

			notes, err := sess.RecallAll(cmd.Context())
			if err != nil {
				return fail(jsonOut, err)
			}

			if jsonOut {
				return printJSON(map[string]any{"notes": notes})
			}

			if len(notes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No notes remembered yet."))
				return nil
			}
			for _, note := range notes {
				fmt.Printf("%s %s\n", cli.MemoIcon, note)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "emit the result as a JSON envelope")
	return cmd
}

func memoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the transaction set and all notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, closeSession, err := openSession()
			if err != nil {
				return err
			}
			defer closeSession()

			if err := sess.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Session memory cleared."))
			return nil
		},
	}
}
