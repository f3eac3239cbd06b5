// Package loader converts raw tabular sources into the normalized
// transaction shape consumed by the analytics. All coercion and defaulting
// happens here: the core never parses anything itself.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/config"
	"github.com/tejuiceB/finwiseai/internal/model"
)

// SourceRawText is the source descriptor for transactions loaded from raw
// CSV text rather than a file.
const SourceRawText = "raw text"

// Recognized CSV header names. Matching is case-insensitive and unknown
// columns are ignored.
const (
	colDate        = "date"
	colDescription = "description"
	colAmount      = "amount"
	colCategory    = "category"
	colType        = "type"
)

// FromFile loads transactions from a CSV file. The returned source
// descriptor is the (expanded) path. Missing files map to common.ErrNotFound.
func FromFile(path string) ([]model.Transaction, string, error) {
	expanded := config.ExpandPath(path)

	f, err := os.Open(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	txns, err := Parse(f)
	if err != nil {
		return nil, "", err
	}
	return txns, expanded, nil
}

// FromText loads transactions from raw CSV text.
func FromText(text string) ([]model.Transaction, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads CSV records into transactions. Expected headers: date,
// description, amount, category, type. Amounts that fail to parse become 0;
// a missing type defaults from the sign of the amount. Returns
// common.ErrNoTransactions when the source yields zero data rows and
// common.ErrInvalidEncoding when the source is not valid UTF-8.
func Parse(r io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, common.ErrInvalidEncoding
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, common.ErrNoTransactions
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var txns []model.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		amount := parseAmount(field(record, colAmount))
		txnType := field(record, colType)
		if txnType == "" {
			txnType = model.DefaultType(amount)
		}

		txns = append(txns, model.Transaction{
			Date:        field(record, colDate),
			Description: field(record, colDescription),
			Amount:      amount,
			Category:    field(record, colCategory),
			Type:        txnType,
		})
	}

	if len(txns) == 0 {
		return nil, common.ErrNoTransactions
	}

	slog.Debug("Parsed CSV source", "transactions", len(txns))
	return txns, nil
}

// parseAmount coerces an amount field to a number, defaulting to 0 when the
// value is missing or unparseable.
func parseAmount(val string) float64 {
	if val == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return amount
}
