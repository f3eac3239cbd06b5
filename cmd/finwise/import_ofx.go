package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/model"
	"github.com/tejuiceB/finwiseai/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Load OFX/QFX bank statements into the session",
		Long: `Load transactions from OFX or QFX (Quicken) statements exported from your
bank. Debits come in as negative amounts, credits as positive, so the
analytics treat them as expenses and income directly.

Examples:
  finwise import-ofx ~/Downloads/chase_jan_2024.qfx
  finwise import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}

	sess, closeSession, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession()

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing OFX statements..."),
	)

	parser := ofx.NewParser()
	var all []model.Transaction
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		txns, err := parser.Parse(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", file, err)
		}
		all = append(all, txns...)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := sess.Load(cmd.Context(), all, strings.Join(files, ", ")); err != nil {
		return err
	}

	slog.Info("Imported OFX statements", "files", len(files), "transactions", len(all))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Loaded %d transactions from %d statement(s)", len(all), len(files))))
	return nil
}
