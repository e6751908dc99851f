// Package export renders generated statements and audit trails to files:
// an xlsx workbook with one sheet per statement, and a flat audit CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/afrgen-dev/afrgen/internal/audit"
)

var auditHeader = []string{
	"account_code", "current_year_actual", "budget", "prior_year_actual",
	"fund_code", "function_code", "object_code", "sub_object_code", "location_code",
	"unmapped_accounts",
	"tea_category", "gasb_category", "fund_category",
	"statement_type", "statement_section", "statement_line_code", "statement_line_description",
	"mapping_method", "mapping_confidence", "processing_notes",
	"rollup_applied", "rollup_description",
	"processing_timestamp", "version",
}

// WriteAuditCSV writes the audit trail as a flat CSV, one row per record.
func WriteAuditCSV(w io.Writer, trail audit.Trail) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(auditHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range trail.Records {
		row := []string{
			rec.AccountCode,
			rec.CurrentYearActual.String(),
			rec.Budget.String(),
			rec.PriorYearActual.String(),
			rec.FundCode,
			rec.FunctionCode,
			rec.ObjectCode,
			rec.SubObjectCode,
			rec.LocationCode,
			strconv.FormatBool(rec.Unmapped),
			string(rec.TEACategory),
			string(rec.GASBCategory),
			string(rec.FundCategory),
			rec.StatementType,
			rec.StatementSection,
			rec.StatementLineCode,
			rec.StatementLineDescription,
			string(rec.MappingMethod),
			string(rec.MappingConfidence),
			rec.ProcessingNotes,
			strconv.FormatBool(rec.RollupApplied),
			rec.RollupDescription,
			rec.ProcessedAt.Format(time.RFC3339),
			rec.Version,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
