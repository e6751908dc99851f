package trialbalance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// Column positions in the canonical TEA export layout. Files may carry
// fewer amount columns; extras beyond the prior year are ignored.
const (
	colAccountCode = 0
	colCurrentYear = 1
	colBudget      = 2
	colPriorYear   = 3
)

// DelimitedParser reads a headerless delimited trial balance.
type DelimitedParser struct {
	format string
	comma  rune
}

// NewCSVParser returns the comma-delimited reader.
func NewCSVParser() *DelimitedParser {
	return &DelimitedParser{format: "csv", comma: ','}
}

// NewTSVParser returns the tab-delimited reader.
func NewTSVParser() *DelimitedParser {
	return &DelimitedParser{format: "tsv", comma: '\t'}
}

// Format returns the parser name.
func (p *DelimitedParser) Format() string { return p.format }

// Parse reads delimited rows. Rows with an empty account code are skipped;
// missing or non-numeric amounts become zero.
func (p *DelimitedParser) Parse(r io.Reader) ([]model.TrialBalanceRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s trial balance: %w", p.format, err)
	}

	var rows []model.TrialBalanceRow
	for i, rec := range records {
		if isEmptyRecord(rec) {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 columns, got %d", i+1, len(rec))
		}
		code := strings.TrimSpace(rec[colAccountCode])
		if code == "" {
			continue
		}
		rows = append(rows, model.TrialBalanceRow{
			AccountCode:       code,
			CurrentYearActual: amountAt(rec, colCurrentYear),
			Budget:            amountAt(rec, colBudget),
			PriorYearActual:   amountAt(rec, colPriorYear),
		})
	}
	return rows, nil
}

func isEmptyRecord(rec []string) bool {
	for _, field := range rec {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// amountAt parses the amount in column idx, defaulting to zero when the
// column is absent, blank, or not numeric.
func amountAt(rec []string, idx int) decimal.Decimal {
	if idx >= len(rec) {
		return decimal.Zero
	}
	raw := strings.TrimSpace(rec[idx])
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
