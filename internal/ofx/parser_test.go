package ofx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejuiceB/finwiseai/internal/model"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS CAFE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DIRECTDEP
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024012001
<NAME>ACME CORP PAYROLL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>UBER TRIP 4Y7HG2
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		ofxData   string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "valid bank statement",
			ofxData:   sampleBankOFX,
			wantCount: 2,
		},
		{
			name:      "valid credit card statement",
			ofxData:   sampleCreditCardOFX,
			wantCount: 1,
		},
		{
			name:    "invalid OFX data",
			ofxData: "not valid OFX",
			wantErr: true,
		},
		{
			name:    "empty source",
			ofxData: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := NewParser().Parse(strings.NewReader(tt.ofxData))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, txns, tt.wantCount)
		})
	}
}

func TestParseBankStatement(t *testing.T) {
	txns, err := NewParser().Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Debits keep their negative sign and default to expense.
	coffee := txns[0]
	assert.Equal(t, "2024-01-15", coffee.Date)
	assert.Equal(t, "STARBUCKS CAFE #1234", coffee.Description)
	assert.InDelta(t, -25.50, coffee.Amount, 0.001)
	assert.Equal(t, model.TypeExpense, coffee.Type)
	assert.Empty(t, coffee.Category)

	// Direct deposits carry an income category hint.
	payroll := txns[1]
	assert.InDelta(t, 2500.00, payroll.Amount, 0.001)
	assert.Equal(t, model.TypeIncome, payroll.Type)
	assert.Equal(t, model.CategoryIncome, payroll.Category)
}

func TestParseCreditCardStatement(t *testing.T) {
	txns, err := NewParser().Parse(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, "UBER TRIP 4Y7HG2", txns[0].Description)
	assert.InDelta(t, -45.99, txns[0].Amount, 0.001)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
}

func TestIsGenericDescription(t *testing.T) {
	assert.True(t, isGenericDescription("DEBIT"))
	assert.True(t, isGenericDescription("card purchase"))
	assert.False(t, isGenericDescription("NETFLIX.COM"))
}
