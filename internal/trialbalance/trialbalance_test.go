package trialbalance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_Parse(t *testing.T) {
	input := "1990011100000000000,5000.25,4800,4700.50\n" +
		"1990021100000000000,-600,0,0\n"
	p := NewCSVParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1990011100000000000", rows[0].AccountCode)
	assert.Equal(t, "5000.25", rows[0].CurrentYearActual.String())
	assert.Equal(t, "4800", rows[0].Budget.String())
	assert.Equal(t, "4700.5", rows[0].PriorYearActual.String())
	assert.True(t, rows[1].CurrentYearActual.IsNegative())
}

func TestTSVParser_Parse(t *testing.T) {
	input := "1990011100000000000\t5000\t4800\t4700\n"
	p := NewTSVParser()
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "5000", rows[0].CurrentYearActual.String())
}

func TestParse_MissingAmountColumnsDefaultZero(t *testing.T) {
	input := "1990011100000000000,5000\n"
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Budget.IsZero())
	assert.True(t, rows[0].PriorYearActual.IsZero())
}

func TestParse_NonNumericAmountsBecomeZero(t *testing.T) {
	input := "1990011100000000000,n/a,,4700\n"
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CurrentYearActual.IsZero())
	assert.True(t, rows[0].Budget.IsZero())
	assert.Equal(t, "4700", rows[0].PriorYearActual.String())
}

func TestParse_SkipsEmptyRowsAndBlankCodes(t *testing.T) {
	input := "1990011100000000000,5000\n" +
		",,\n" +
		"   ,100\n" +
		"1990021100000000000,200\n"
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1990021100000000000", rows[1].AccountCode)
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	input := "1990011100000000000,5000,4800,4700,999,888\n"
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "4700", rows[0].PriorYearActual.String())
}

func TestParse_TooFewColumns(t *testing.T) {
	_, err := NewCSVParser().Parse(strings.NewReader("1990011100000000000\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 columns")
}

func TestParse_EmptyFile(t *testing.T) {
	rows, err := NewCSVParser().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("csv"))
	assert.NotNil(t, r.Get("TSV"))
	assert.Nil(t, r.Get("xlsx"))
	assert.Len(t, r.Formats(), 2)

	assert.Panics(t, func() { r.Register(NewCSVParser()) })
}

func TestFormatForFile(t *testing.T) {
	assert.Equal(t, "tsv", FormatForFile("tb.TSV"))
	assert.Equal(t, "tsv", FormatForFile("export.txt"))
	assert.Equal(t, "csv", FormatForFile("tb.csv"))
	assert.Equal(t, "csv", FormatForFile("unknown.dat"))
}
