package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$ 1.000.000", FormatCurrency(1000000))
	assert.Equal(t, "$ 0", FormatCurrency(0))
	assert.Equal(t, "$ 999", FormatCurrency(999))
	assert.Equal(t, "$ 1.000", FormatCurrency(1000))
	assert.Equal(t, "$ 50.000.000", FormatCurrency(50000000))
	assert.Equal(t, "-$ 15.000", FormatCurrency(-15000))
}

func TestFormatCurrency_NoDecimals(t *testing.T) {
	assert.Equal(t, "$ 90.258", FormatCurrency(90257.6))
	assert.NotContains(t, FormatCurrency(1234.56), ",")
}

func TestFormatCurrencyString(t *testing.T) {
	assert.Equal(t, "$ 1.000.000", FormatCurrencyString("1000000"))
	assert.Equal(t, "$ 1.000.000", FormatCurrencyString(" 1000000 "))

	// unparseable input formats as zero
	assert.Equal(t, "$ 0", FormatCurrencyString("no-es-numero"))
	assert.Equal(t, "$ 0", FormatCurrencyString(""))
}
