package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/cli"
	"github.com/tejuiceB/finwiseai/internal/loader"
	"github.com/tejuiceB/finwiseai/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Load CSV transactions into the session",
		Long: `Load transactions from CSV files (headers: date, description, amount,
category, type) into the session. The session holds one transaction set at a
time; importing replaces whatever was loaded before.

Examples:
  # Import a single file
  finwise import ~/Downloads/january.csv

  # Import several statements as one set
  finwise import ~/Downloads/*.csv

  # Import raw CSV text
  finwise import --text "date,description,amount
2024-01-01,Monthly Salary,3000"`,
		RunE: runImport,
	}

	cmd.Flags().StringP("text", "t", "", "raw CSV text to import instead of files")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")

	sess, closeSession, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession()

	if text != "" {
		if len(args) > 0 {
			return fmt.Errorf("provide files or --text, not both")
		}
		txns, err := loader.FromText(text)
		if err != nil {
			return fmt.Errorf("failed to parse CSV text: %w", err)
		}
		if err := sess.Load(cmd.Context(), txns, loader.SourceRawText); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Loaded %d transactions from raw text", len(txns))))
		return nil
	}

	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing CSV files..."),
	)

	var all []model.Transaction
	for _, file := range files {
		txns, _, err := loader.FromFile(file)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", file, err)
		}
		all = append(all, txns...)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	source := strings.Join(files, ", ")
	if err := sess.Load(cmd.Context(), all, source); err != nil {
		return err
	}

	slog.Info("Imported transactions", "files", len(files), "transactions", len(all))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Loaded %d transactions from %d file(s)", len(all), len(files))))
	return nil
}

// expandFileArgs expands glob patterns and verifies at least one file is
// named.
func expandFileArgs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a glob; let the loader report a missing file properly.
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files to import; pass file paths or --text")
	}
	return files, nil
}
