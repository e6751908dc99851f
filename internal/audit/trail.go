// Package audit builds the transaction-level audit trail tying each trial
// balance row to its categories, statement line, and rollup treatment.
package audit

import (
	"time"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
	"github.com/afrgen-dev/afrgen/internal/statement"
)

// Version stamps every audit record with the trail format revision.
const Version = "1.0"

// Trail is the full audit trail for one trial balance snapshot.
type Trail struct {
	Records         []model.AuditRecord
	TotalRecords    int
	MappedRecords   int
	UnmappedRecords int
}

// BuildTrail produces one audit record per trial balance row, in input
// order. Duplicate account codes yield one record each.
func BuildTrail(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry) Trail {
	trail := Trail{Records: make([]model.AuditRecord, 0, len(rows))}
	now := time.Now()

	for _, row := range rows {
		segments := acctcode.Parse(row.AccountCode)
		rec := model.AuditRecord{
			AccountCode:       row.AccountCode,
			CurrentYearActual: row.CurrentYearActual,
			Budget:            row.Budget,
			PriorYearActual:   row.PriorYearActual,
			FundCode:          segments.FundCode,
			FunctionCode:      segments.FunctionCode,
			ObjectCode:        segments.ObjectCode,
			SubObjectCode:     segments.SubObjectCode,
			LocationCode:      segments.LocationCode,
			ProcessedAt:       now,
			Version:           Version,
		}

		entry, mapped := mapping[row.AccountCode]
		if mapped {
			rec.TEACategory = entry.TEACategory
			rec.GASBCategory = entry.GASBCategory
			rec.FundCategory = entry.FundCategory
			rec.MappingMethod = entry.Method
			rec.MappingConfidence = entry.Confidence
			rec.ProcessingNotes = entry.ProcessingNotes
			if rec.MappingMethod == "" {
				rec.MappingMethod = model.MethodAutoMapped
			}
			if rec.MappingConfidence == "" {
				rec.MappingConfidence = model.ConfidenceMedium
			}
			trail.MappedRecords++
		} else {
			rec.Unmapped = true
			rec.TEACategory = model.TEAUnmappedLiteral
			rec.GASBCategory = model.GASBUnmapped
			rec.FundCategory = model.FundUnmapped
			rec.MappingMethod = model.MethodUnmapped
			rec.MappingConfidence = model.ConfidenceNone
			rec.ProcessingNotes = "Account not mapped"
			trail.UnmappedRecords++
		}

		line := statement.ResolveLine(rec.GASBCategory, segments.ObjectCode, segments.FunctionCode)
		rec.StatementType = line.StatementType
		rec.StatementSection = line.Section
		rec.StatementLineCode = line.Code
		rec.StatementLineDescription = line.Description

		rec.RollupApplied, rec.RollupDescription = Rollup(rec.GASBCategory, segments.ObjectCode)

		trail.Records = append(trail.Records, rec)
	}

	trail.TotalRecords = len(trail.Records)
	return trail
}
