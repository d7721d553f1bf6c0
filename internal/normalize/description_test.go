package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeBase, ParseMode("base"))
	assert.Equal(t, ModeAggressive, ParseMode(" Aggressive "))
	assert.Equal(t, ModeNone, ParseMode("none"))
	assert.Equal(t, ModeNone, ParseMode(""))
	assert.Equal(t, ModeNone, ParseMode("bogus"))
}

func TestDescriptionModeNone(t *testing.T) {
	assert.Equal(t, "Olio EVO SKU:A-12", Description("  Olio EVO SKU:A-12  ", ModeNone))
}

func TestDescriptionModeBase(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "sku token", raw: "Olio EVO SKU:A-12", want: "Olio EVO"},
		{name: "cod token with space", raw: "Passata COD: 778899", want: "Passata"},
		{name: "codice token", raw: "Tonno CODICE:TN-44", want: "Tonno"},
		{name: "trailing parenthetical", raw: "Farina 00 (sacco)", want: "Farina 00"},
		{name: "trailing bracket group", raw: "Olio [bio]", want: "Olio"},
		{name: "trailing hash code", raw: "Pasta #ABC-1", want: "Pasta"},
		{name: "trailing at code", raw: "Pasta @XY.2", want: "Pasta"},
		{name: "trailing caps-digit code", raw: "Tonno ABC123", want: "Tonno"},
		{name: "chained annotations", raw: "Olio SKU:A1 (cartone)", want: "Olio"},
		{name: "trailing separators", raw: "Vino - ", want: "Vino"},
		{name: "clean input unchanged", raw: "Mozzarella di bufala", want: "Mozzarella di bufala"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Description(tc.raw, ModeBase))
		})
	}
}

func TestDescriptionModeAggressive(t *testing.T) {
	assert.Equal(t, "Caffè in grani", Description("Caffè!!! in grani", ModeAggressive))
	assert.Equal(t, "Olio 1/2", Description("Olio «1/2»", ModeAggressive))
}

func TestCleanQuantityAnnotations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "parenthesized count", raw: "Olio (6 pz)", want: "Olio"},
		{name: "parenthesized bare count", raw: "Olio (6)", want: "Olio"},
		{name: "dash count", raw: "Pasta - 10 PZ", want: "Pasta"},
		{name: "x multiplier", raw: "Vino x12", want: "Vino"},
		{name: "x multiplier spaced", raw: "Vino x 12", want: "Vino"},
		{name: "trailing bare number", raw: "Acqua 6", want: "Acqua"},
		{name: "chained annotations", raw: "Olio x2 (6 pz)", want: "Olio"},
		{name: "non-count parenthetical kept", raw: "Salsa (confezione)", want: "Salsa (confezione)"},
		{name: "clean input unchanged", raw: "Mozzarella", want: "Mozzarella"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanQuantityAnnotations(tc.raw))
		})
	}
}

func TestInferUnit(t *testing.T) {
	assert.Equal(t, "KG", InferUnit("kg", ""))
	assert.Equal(t, "PZ", InferUnit(" Pz ", ""))
	assert.Equal(t, "PZ", InferUnit("", "Olio (6 pz)"))
	assert.Equal(t, "PZ", InferUnit("scatole", "Bottiglie 6 PZ"))
	assert.Equal(t, "KG", InferUnit("", "Mozzarella"))
	assert.Equal(t, "KG", InferUnit("", "pzeta"))
}
