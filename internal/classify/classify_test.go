package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// code builds a full 19-digit account code from fund, function, and object
// segments.
func code(fund, function, object string) string {
	return fund + function + object + "0000" + "000000"
}

func TestTEACategory(t *testing.T) {
	tests := []struct {
		object string
		want   model.TEACategory
	}{
		{"1110", model.TEAAssets},
		{"2110", model.TEALiabilities},
		{"3200", model.TEAFundBalances},
		{"4010", model.TEAClearing},
		{"5700", model.TEARevenues},
		{"6110", model.TEAExpenditures},
		{"7915", model.TEAOtherResources},
		{"8911", model.TEAOtherUses},
		{"9999", model.TEAUnknown},
	}
	for _, tt := range tests {
		got := TEACategory(code("199", "11", tt.object))
		assert.Equal(t, tt.want, got, "object: %s", tt.object)
	}
}

func TestTEACategory_ShortCode(t *testing.T) {
	assert.Equal(t, model.TEAUnknown, TEACategory("19911"))
	assert.Equal(t, model.TEAUnknown, TEACategory(""))
}

func TestGASBCategory_ExactMatch(t *testing.T) {
	tests := []struct {
		object string
		want   model.GASBCategory
	}{
		{"1110", model.GASBCurrentAssets},
		{"1225", model.GASBCurrentAssets},
		{"1510", model.GASBCapitalAssets},
		{"1705", model.GASBDeferredOutflows},
		{"2165", model.GASBCurrentLiabilities},
		{"2501", model.GASBLongTermLiabilities},
		{"2605", model.GASBDeferredInflows},
		{"3200", model.GASBNetInvestmentCapital},
		{"3820", model.GASBRestrictedNet},
		{"3900", model.GASBUnrestrictedNet},
		{"4010", model.GASBClearingAccounts},
		{"5100", model.GASBProgramRevenues},
		{"5700", model.GASBGeneralRevenues},
		{"6110", model.GASBProgramExpenses},
		{"6630", model.GASBGeneralExpenses},
		{"7915", model.GASBOtherResources},
		{"8911", model.GASBOtherUses},
	}
	for _, tt := range tests {
		got := GASBCategory(code("199", "11", tt.object))
		assert.Equal(t, tt.want, got, "object: %s", tt.object)
	}
}

// Codes falling in the gaps of the declared ranges must still resolve via
// the prefix rules, never to unknown.
func TestGASBCategory_PrefixFallback(t *testing.T) {
	tests := []struct {
		object string
		want   model.GASBCategory
	}{
		{"1495", model.GASBCurrentAssets},
		{"1599", model.GASBCapitalAssets},
		{"1777", model.GASBDeferredOutflows},
		{"1601", model.GASBCurrentAssets}, // 16xx has no finer rule
		{"2199", model.GASBCurrentLiabilities},
		{"2444", model.GASBLongTermLiabilities},
		{"2666", model.GASBDeferredInflows},
		{"2799", model.GASBCurrentLiabilities},
		{"3299", model.GASBNetInvestmentCapital},
		{"3555", model.GASBRestrictedNet},
		{"3999", model.GASBUnrestrictedNet},
		{"3111", model.GASBRestrictedNet},
		{"5199", model.GASBProgramRevenues},
		{"5555", model.GASBGeneralRevenues},
		{"6222", model.GASBProgramExpenses},
		{"6777", model.GASBGeneralExpenses},
		{"7001", model.GASBOtherResources},
		{"8001", model.GASBOtherUses},
		{"9123", model.GASBUnknown},
		{"0123", model.GASBUnknown},
	}
	for _, tt := range tests {
		got := GASBCategory(code("199", "11", tt.object))
		assert.Equal(t, tt.want, got, "object: %s", tt.object)
	}
}

func TestGASBCategory_ShortCode(t *testing.T) {
	assert.Equal(t, model.GASBUnknown, GASBCategory("19911"))
	assert.Equal(t, model.GASBUnknown, GASBCategory(""))
}

func TestFundCategory(t *testing.T) {
	tests := []struct {
		fund string
		want model.FundCategory
	}{
		{"100", model.FundGeneral},
		{"199", model.FundGeneral},
		{"240", model.FundSpecialRevenue},
		{"345", model.FundEnterprise},
		{"410", model.FundInternalService},
		{"599", model.FundDebtService},
		{"640", model.FundCapitalProjects},
		{"750", model.FundPermanent},
		{"865", model.FundFiduciary},
		{"901", model.FundOtherGovernmental},
		{"050", model.FundOtherGovernmental},
	}
	for _, tt := range tests {
		got := FundCategory(code(tt.fund, "11", "1110"))
		assert.Equal(t, tt.want, got, "fund: %s", tt.fund)
	}
}

func TestFundCategory_ShortCode(t *testing.T) {
	assert.Equal(t, model.FundOtherGovernmental, FundCategory("19"))
	assert.Equal(t, model.FundOtherGovernmental, FundCategory(""))
}

// Every digit-only code of at least 9 characters must classify into an
// enumerated category.
func TestClassify_TotalCoverage(t *testing.T) {
	known := map[model.GASBCategory]bool{
		model.GASBCurrentAssets: true, model.GASBCapitalAssets: true,
		model.GASBDeferredOutflows: true, model.GASBCurrentLiabilities: true,
		model.GASBLongTermLiabilities: true, model.GASBDeferredInflows: true,
		model.GASBNetInvestmentCapital: true, model.GASBRestrictedNet: true,
		model.GASBUnrestrictedNet: true, model.GASBProgramRevenues: true,
		model.GASBGeneralRevenues: true, model.GASBProgramExpenses: true,
		model.GASBGeneralExpenses: true, model.GASBOtherResources: true,
		model.GASBOtherUses: true, model.GASBClearingAccounts: true,
		model.GASBUnknown: true,
	}
	for obj := 0; obj < 10000; obj += 7 {
		c := code("199", "11", fmt.Sprintf("%04d", obj))
		got := Classify(c)
		assert.True(t, known[got.GASBCategory], "object %04d resolved to %q", obj, got.GASBCategory)
		assert.NotEmpty(t, got.TEACategory)
		assert.NotEmpty(t, got.FundCategory)
	}
}

func TestDefaultMapping(t *testing.T) {
	codes := []string{
		code("199", "11", "1110"),
		code("240", "35", "6110"),
	}
	mapping := DefaultMapping(codes)
	require.Len(t, mapping, 2)

	entry := mapping[codes[0]]
	assert.Equal(t, codes[0], entry.AccountCode)
	assert.Equal(t, "Account "+codes[0], entry.Description)
	assert.Equal(t, model.TEAAssets, entry.TEACategory)
	assert.Equal(t, model.GASBCurrentAssets, entry.GASBCategory)
	assert.Equal(t, model.FundGeneral, entry.FundCategory)
	assert.Equal(t, "XX", entry.StatementLine)

	entry = mapping[codes[1]]
	assert.Equal(t, model.GASBProgramExpenses, entry.GASBCategory)
	assert.Equal(t, model.FundSpecialRevenue, entry.FundCategory)
}

func TestDefaultMapping_Idempotent(t *testing.T) {
	codes := []string{
		code("199", "11", "1110"),
		code("599", "71", "2501"),
		code("865", "00", "9999"),
	}
	first := DefaultMapping(codes)
	second := DefaultMapping(codes)
	assert.Equal(t, first, second)
}

func TestDefaultMapping_DuplicateCodesCollapse(t *testing.T) {
	c := code("199", "11", "1110")
	mapping := DefaultMapping([]string{c, c, c})
	assert.Len(t, mapping, 1)
}
