package exchange

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook/pocketbook/internal/dates"
	"github.com/pocketbook/pocketbook/internal/model"
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
<DTSERVER>20251101120000[0:GMT]
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
<CURDEF>INR
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20251001120000[0:GMT]
<DTEND>20251031120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20251015120000[0:GMT]
<TRNAMT>-250.75
<FITID>2025101501
<NAME>BIG BAZAAR 42
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20251020120000[0:GMT]
<TRNAMT>3000.00
<FITID>2025102001
<MEMO>Salary credit
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>5000.00
<DTASOF>20251031120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseOFX(t *testing.T) {
	txns, err := ParseOFX(strings.NewReader(sampleBankOFX), "acc-1")
	require.NoError(t, err)
	require.Len(t, txns, 2)

	debit := txns[0]
	assert.Equal(t, model.TypeExpense, debit.Type, "negative amounts become expenses")
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("250.75")), "amounts are stored positive, got %s", debit.Amount)
	assert.Equal(t, "BIG BAZAAR 42", debit.Description)
	assert.Equal(t, "acc-1", debit.AccountID)
	assert.Equal(t, dates.New(2025, time.October, 15), debit.Date)
	assert.Empty(t, debit.ID, "ids are assigned by the ledger, not the parser")

	credit := txns[1]
	assert.Equal(t, model.TypeIncome, credit.Type)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Salary credit", credit.Description, "memo is the fallback description")
}

func TestParseOFXRejectsGarbage(t *testing.T) {
	_, err := ParseOFX(strings.NewReader("this is not an OFX document"), "acc-1")
	assert.Error(t, err)
}
