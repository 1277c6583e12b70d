package statement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "action,symbol,description,date,settlement,quantity,price,amount,currency\n"

func TestReadRows(t *testing.T) {
	csv := header +
		"Buy,XYZ,,2013-06-01,2013-06-04,10,5.00,50.00,USD\n" +
		",RBF1680,\"DIST ON 1,300 SHS\",2013-06-28,2013-06-28,0,2.50,25.00,CAD\n"

	rows, err := ReadRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Buy", rows[0].Action)
	assert.Equal(t, "XYZ", rows[0].Symbol)
	assert.Equal(t, "2013-06-04", rows[0].Settlement)
	assert.Equal(t, "50.00", rows[0].Amount)

	assert.Equal(t, "", rows[1].Action)
	assert.Equal(t, "DIST ON 1,300 SHS", rows[1].Description)
	assert.Equal(t, "CAD", rows[1].Currency)
}

func TestReadRows_HeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(header))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadRows_MissingColumn(t *testing.T) {
	csv := "action,symbol,description,date,settlement,quantity,price,amount\n"
	_, err := ReadRows(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "currency"`)
}

func TestReadRows_ColumnOrderIrrelevant(t *testing.T) {
	csv := "currency,amount,price,quantity,settlement,date,description,symbol,action\n" +
		"USD,50.00,5.00,10,2013-06-04,2013-06-01,,XYZ,Buy\n"

	rows, err := ReadRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Buy", rows[0].Action)
	assert.Equal(t, "USD", rows[0].Currency)
	assert.Equal(t, "10", rows[0].Quantity)
}

func TestReadRows_IgnoresExtraColumns(t *testing.T) {
	csv := header[:len(header)-1] + ",note\n" +
		"Buy,XYZ,,2013-06-01,2013-06-04,10,5.00,50.00,USD,hello\n"

	rows, err := ReadRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "USD", rows[0].Currency)
}

func TestReadRows_ShortRecord(t *testing.T) {
	csv := header + "Buy,XYZ\n"
	_, err := ReadRows(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestReadRows_HeaderCaseInsensitive(t *testing.T) {
	csv := "Action,Symbol,Description,Date,Settlement,Quantity,Price,Amount,Currency\n" +
		"Buy,XYZ,,2013-06-01,2013-06-04,10,5.00,50.00,USD\n"

	rows, err := ReadRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
