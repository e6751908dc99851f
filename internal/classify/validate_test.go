package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrgen-dev/afrgen/internal/model"
)

func mappingFor(codes ...string) map[string]model.MappingEntry {
	return DefaultMapping(codes)
}

func TestValidateMapping_AllCovered(t *testing.T) {
	mapping := mappingFor(
		code("199", "11", "1110"), // current assets
		code("199", "11", "2110"), // current liabilities
		code("199", "11", "3900"), // unrestricted net position
		code("199", "11", "5700"), // general revenues
		code("199", "11", "6110"), // program expenses
	)
	report := ValidateMapping(mapping)
	assert.True(t, report.Valid)
	assert.True(t, report.HasEssentialCategories)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.UnmappedAccounts)
	assert.Empty(t, report.InvalidAccounts)
	assert.Len(t, report.MappedCategories, 5)
}

func TestValidateMapping_UnmappedEntry(t *testing.T) {
	mapping := mappingFor(code("199", "11", "1110"))
	bad := code("199", "11", "9999") // classifies to unknown
	mapping[bad] = model.MappingEntry{AccountCode: bad, GASBCategory: model.GASBUnknown}

	report := ValidateMapping(mapping)
	assert.False(t, report.Valid)
	assert.Equal(t, 1, report.TotalUnmapped)
	assert.Equal(t, []string{bad}, report.UnmappedAccounts)
}

func TestValidateMapping_EmptyGASBIsUnmapped(t *testing.T) {
	c := code("199", "11", "1110")
	mapping := map[string]model.MappingEntry{
		c: {AccountCode: c},
	}
	report := ValidateMapping(mapping)
	assert.Equal(t, 1, report.TotalUnmapped)
}

func TestValidateMapping_InvalidCodes(t *testing.T) {
	mapping := map[string]model.MappingEntry{
		"1991161110000000000": {AccountCode: "1991161110000000000", GASBCategory: model.GASBCurrentAssets},
		"123":                 {AccountCode: "123", GASBCategory: model.GASBCurrentAssets},
		"19911611X0000000000": {AccountCode: "19911611X0000000000", GASBCategory: model.GASBCurrentAssets},
	}
	report := ValidateMapping(mapping)
	assert.False(t, report.Valid)
	assert.Equal(t, 2, report.TotalInvalid)
	assert.ElementsMatch(t, []string{"123", "19911611X0000000000"}, report.InvalidAccounts)
	// Invalid codes are excluded from category coverage, not double-counted
	// as unmapped.
	assert.Equal(t, 0, report.TotalUnmapped)
}

func TestValidateMapping_ReportedListsCappedAtTen(t *testing.T) {
	mapping := make(map[string]model.MappingEntry)
	for i := 0; i < 25; i++ {
		c := fmt.Sprintf("%03d", i) // too short, invalid
		mapping[c] = model.MappingEntry{AccountCode: c}
	}
	report := ValidateMapping(mapping)
	assert.Equal(t, 25, report.TotalInvalid)
	assert.Len(t, report.InvalidAccounts, 10)
}

func TestValidateMapping_EssentialCategoryWarnings(t *testing.T) {
	// Only assets mapped: four groups missing.
	mapping := mappingFor(code("199", "11", "1110"))
	report := ValidateMapping(mapping)
	assert.True(t, report.Valid, "warnings are not blocking")
	assert.False(t, report.HasEssentialCategories)
	require.Len(t, report.Warnings, 4)
	assert.Contains(t, report.Warnings, "No liabilities categories mapped")
	assert.Contains(t, report.Warnings, "No net position categories mapped")
	assert.Contains(t, report.Warnings, "No revenues categories mapped")
	assert.Contains(t, report.Warnings, "No expenses categories mapped")
}

func TestValidateMapping_Empty(t *testing.T) {
	report := ValidateMapping(nil)
	assert.True(t, report.Valid)
	assert.False(t, report.HasEssentialCategories)
	assert.Len(t, report.Warnings, 5)
}
