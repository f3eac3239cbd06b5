// Package ofx parses OFX/QFX bank statements into the normalized transaction
// shape, as an alternative tabular source to CSV.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/tejuiceB/finwiseai/internal/model"
)

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes formatting issues common in bank-exported OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

// Parse reads an OFX/QFX statement and returns its transactions. Bank and
// credit card statements are both handled. Amounts keep the sign the
// statement carries: debits negative, credits positive.
func (p *Parser) Parse(r io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX source: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX source: %w", err)
	}

	var txns []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			txns = append(txns, p.statementTransactions(stmt.BankTranList)...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			txns = append(txns, p.statementTransactions(stmt.BankTranList)...)
		}
	}

	slog.Info("Parsed OFX statement",
		"transactions", len(txns),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return txns, nil
}

func (p *Parser) statementTransactions(list *ofxgo.TransactionList) []model.Transaction {
	if list == nil {
		return nil
	}
	txns := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		txns = append(txns, p.convert(ofxTx))
	}
	return txns
}

// convert maps one OFX transaction onto the normalized shape.
func (p *Parser) convert(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	t := model.Transaction{
		Date:        ofxTx.DtPosted.Format("2006-01-02"),
		Description: p.description(ofxTx),
		Amount:      amount,
		Type:        model.DefaultType(amount),
	}

	// Statement transaction types carry weak category hints; everything else
	// is left for the keyword categorizer at aggregation time.
	switch fmt.Sprintf("%v", ofxTx.TrnType) {
	case "INT", "DIV", "DIRECTDEP":
		t.Category = model.CategoryIncome
	}

	return t
}

// description picks the most useful free text a statement offers: the payee
// name when present, otherwise NAME, falling back to MEMO when NAME is a
// generic placeholder.
func (p *Parser) description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}

// isGenericDescription reports whether a transaction name carries no
// merchant information.
func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
