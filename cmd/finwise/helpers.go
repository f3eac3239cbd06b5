package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/config"
	"github.com/tejuiceB/finwiseai/internal/loader"
	"github.com/tejuiceB/finwiseai/internal/model"
	"github.com/tejuiceB/finwiseai/internal/session"
	"github.com/tejuiceB/finwiseai/internal/storage"
)

// openSession opens the session database and wraps it in a Session. The
// caller must invoke the returned cleanup function.
func openSession() (*session.Session, func(), error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError("Failed to open session database", err)
	}

	return session.New(store), func() { _ = store.Close() }, nil
}

// addSourceFlags registers the input flags shared by the analytics commands.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "load transactions from a CSV file before analyzing")
	cmd.Flags().StringP("text", "t", "", "load transactions from raw CSV text before analyzing")
	cmd.Flags().Bool("json", false, "emit the result as a JSON envelope")
}

// sourceArgs reads back the shared input flags.
func sourceArgs(cmd *cobra.Command) (file, text string, jsonOut bool) {
	file, _ = cmd.Flags().GetString("file")
	text, _ = cmd.Flags().GetString("text")
	jsonOut, _ = cmd.Flags().GetBool("json")
	return file, text, jsonOut
}

// resolveTransactions returns the transaction set an analytics command should
// operate on. Fresh input via --file or --text is loaded into the session
// first (replacing the previous set), matching the import command; with
// neither flag the session's current set is used.
func resolveTransactions(ctx context.Context, sess *session.Session, file, text string) ([]model.Transaction, error) {
	switch {
	case file != "":
		txns, source, err := loader.FromFile(file)
		if err != nil {
			return nil, err
		}
		if err := sess.Load(ctx, txns, source); err != nil {
			return nil, err
		}
		return txns, nil
	case text != "":
		txns, err := loader.FromText(text)
		if err != nil {
			return nil, err
		}
		if err := sess.Load(ctx, txns, loader.SourceRawText); err != nil {
			return nil, err
		}
		return txns, nil
	default:
		return sess.Transactions(ctx)
	}
}

// printJSON emits a payload as a status-tagged JSON envelope, the shape the
// conversational front-end consumes.
func printJSON(payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	envelope := map[string]any{}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to build result envelope: %w", err)
	}
	envelope["status"] = "success"

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

// printJSONError emits the error variant of the envelope.
func printJSONError(origErr error) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"status":        "error",
		"error_message": origErr.Error(),
	})
}

// emit renders a successful result either as JSON or through the styled
// renderer.
func emit(jsonOut bool, payload any, render func()) error {
	if jsonOut {
		return printJSON(payload)
	}
	render()
	return nil
}

// fail reports an analytics error: the JSON envelope when --json was asked
// for, a user-facing error otherwise.
func fail(jsonOut bool, err error) error {
	if jsonOut {
		return printJSONError(err)
	}
	return common.NewUserError("Unable to complete the request", err)
}
