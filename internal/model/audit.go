package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditRecord traces one trial balance row from its raw account code to the
// statement line it was reported on. Records are transaction-level: a code
// appearing twice in the trial balance yields two records.
type AuditRecord struct {
	// Original trial balance data.
	AccountCode       string
	CurrentYearActual decimal.Decimal
	Budget            decimal.Decimal
	PriorYearActual   decimal.Decimal

	// Account code breakdown, zero-padded for short codes.
	FundCode      string
	FunctionCode  string
	ObjectCode    string
	SubObjectCode string
	LocationCode  string
	Unmapped      bool

	// Category assignment.
	TEACategory  TEACategory
	GASBCategory GASBCategory
	FundCategory FundCategory

	// Destination statement line.
	StatementType            string
	StatementSection         string
	StatementLineCode        string
	StatementLineDescription string

	// Mapping provenance.
	MappingMethod     MappingMethod
	MappingConfidence MappingConfidence
	ProcessingNotes   string

	// Rollup metadata: set when this code's balance was folded into a
	// coarser line item rather than reported individually.
	RollupApplied     bool
	RollupDescription string

	ProcessedAt time.Time
	Version     string
}
