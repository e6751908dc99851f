package model

// MappingMethod records how a mapping entry was produced.
type MappingMethod string

const (
	MethodAutoMapped MappingMethod = "auto_mapped"
	MethodManual     MappingMethod = "manual"
	MethodUnmapped   MappingMethod = "unmapped"
)

// MappingConfidence grades how much to trust a mapping entry.
type MappingConfidence string

const (
	ConfidenceHigh   MappingConfidence = "high"
	ConfidenceMedium MappingConfidence = "medium"
	ConfidenceNone   MappingConfidence = "none"
)

// MappingEntry assigns an account code to its statement categories. At most
// one entry exists per code; re-mapping a code replaces the prior entry.
type MappingEntry struct {
	AccountCode   string
	Description   string
	TEACategory   TEACategory
	GASBCategory  GASBCategory
	FundCategory  FundCategory
	StatementLine string
	Notes         string

	// Method and Confidence are blank for auto-generated entries; audit
	// trail resolution fills auto_mapped/medium when unset.
	Method     MappingMethod
	Confidence MappingConfidence

	// ProcessingNotes carries a per-entry override for the audit trail.
	ProcessingNotes string
}
