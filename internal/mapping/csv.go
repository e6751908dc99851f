package mapping

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/afrgen-dev/afrgen/internal/model"
)

const (
	numFields          = 10
	colAccountCode     = 0
	colDescription     = 1
	colTEACategory     = 2
	colGASBCategory    = 3
	colFundCategory    = 4
	colStatementLine   = 5
	colNotes           = 6
	colMethod          = 7
	colConfidence      = 8
	colProcessingNotes = 9
)

// ReadEntries reads mappings.csv.
func ReadEntries(r io.Reader) ([]model.MappingEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mappings CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.MappingEntry
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes mappings.csv.
func WriteEntries(w io.Writer, entries []model.MappingEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"account_code", "description", "tea_category", "gasb_category",
		"fund_category", "statement_line", "notes", "mapping_method",
		"mapping_confidence", "processing_notes",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a MappingEntry to a CSV row.
func MarshalEntry(entry model.MappingEntry) []string {
	row := make([]string, numFields)
	row[colAccountCode] = entry.AccountCode
	row[colDescription] = entry.Description
	row[colTEACategory] = string(entry.TEACategory)
	row[colGASBCategory] = string(entry.GASBCategory)
	row[colFundCategory] = string(entry.FundCategory)
	row[colStatementLine] = entry.StatementLine
	row[colNotes] = entry.Notes
	row[colMethod] = string(entry.Method)
	row[colConfidence] = string(entry.Confidence)
	row[colProcessingNotes] = entry.ProcessingNotes
	return row
}

// UnmarshalEntry converts a CSV row to a MappingEntry.
func UnmarshalEntry(record []string) (model.MappingEntry, error) {
	if len(record) != numFields {
		return model.MappingEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colAccountCode] == "" {
		return model.MappingEntry{}, fmt.Errorf("empty account_code")
	}

	return model.MappingEntry{
		AccountCode:     record[colAccountCode],
		Description:     record[colDescription],
		TEACategory:     model.TEACategory(record[colTEACategory]),
		GASBCategory:    model.GASBCategory(record[colGASBCategory]),
		FundCategory:    model.FundCategory(record[colFundCategory]),
		StatementLine:   record[colStatementLine],
		Notes:           record[colNotes],
		Method:          model.MappingMethod(record[colMethod]),
		Confidence:      model.MappingConfidence(record[colConfidence]),
		ProcessingNotes: record[colProcessingNotes],
	}, nil
}
