package motogp_test

import (
	"testing"

	"github.com/andyle182810/gomotogp/motogp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIDFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "canonical", input: "MotoGP", expected: motogp.CategoryMotoGP, found: true},
		{name: "lower case", input: "motogp", expected: motogp.CategoryMotoGP, found: true},
		{name: "spaced", input: "MOTO GP", expected: motogp.CategoryMotoGP, found: true},
		{name: "trademark sign", input: "MotoGP™", expected: motogp.CategoryMotoGP, found: true},
		{name: "moto2", input: "Moto2", expected: motogp.CategoryMoto2, found: true},
		{name: "moto3 dashed", input: "moto-3", expected: motogp.CategoryMoto3, found: true},
		{name: "motoe", input: "Moto E", expected: motogp.CategoryMotoE, found: true},
		{name: "unknown series", input: "F1", expected: "", found: false},
		{name: "empty", input: "", expected: "", found: false},
		{name: "partial", input: "Moto", expected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := motogp.CategoryIDFor(tt.input)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestCategoryIDFor_VariantsResolveToSameID(t *testing.T) {
	t.Parallel()

	a, okA := motogp.CategoryIDFor("MotoGP")
	b, okB := motogp.CategoryIDFor("motogp")
	c, okC := motogp.CategoryIDFor("MOTO GP")

	require.True(t, okA && okB && okC)
	require.Equal(t, a, b)
	require.Equal(t, b, c)
	require.Equal(t, motogp.CategoryMotoGP, a)
}

func TestFindCategoryByName(t *testing.T) {
	t.Parallel()

	categories := []motogp.Category{
		{ID: "cat-gp", Name: "MotoGP™", Acronym: "GP", LegacyID: 3},
		{ID: "cat-2", Name: "Moto2™", Acronym: "M2", LegacyID: 2},
		{ID: "cat-3", Name: "Moto3™", Acronym: "M3", LegacyID: 1},
		{ID: "cat-e", Name: "MotoE™", Acronym: "ME", LegacyID: 6},
	}

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "name substring", input: "moto2", expected: "cat-2", found: true},
		{name: "acronym", input: "me", expected: "cat-e", found: true},
		{name: "upper case name", input: "MOTO3", expected: "cat-3", found: true},
		{name: "first match wins", input: "moto", expected: "cat-gp", found: true},
		{name: "no match", input: "superbike", expected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			category, ok := motogp.FindCategoryByName(categories, tt.input)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, category.ID)
		})
	}
}

func TestFindCategoryByName_EmptyList(t *testing.T) {
	t.Parallel()

	_, ok := motogp.FindCategoryByName(nil, "MotoGP")

	require.False(t, ok)
}
