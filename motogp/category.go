package motogp

import (
	"strings"

	"github.com/samber/lo"
)

const (
	CategoryMotoGP = "e8c110ad-64aa-4e8e-8a86-f2f152f6a942"
	CategoryMoto2  = "549640b8-fd9c-4245-acfd-60e4bc38b25c"
	CategoryMoto3  = "954f7e65-2ef2-4423-b949-4961cc603e45"
	CategoryMotoE  = "bb7d1afd-fd40-4e0d-8e4e-3e3f0b5db1b6"
)

var categoryCodes = map[string]string{
	"MOTOGP": CategoryMotoGP,
	"MOTO2":  CategoryMoto2,
	"MOTO3":  CategoryMoto3,
	"MOTOE":  CategoryMotoE,
}

// CategoryIDFor resolves a class name such as "MotoGP", "moto 2" or "Moto-E"
// to its fixed identifier. Case, spaces and punctuation are ignored.
func CategoryIDFor(name string) (string, bool) {
	id, ok := categoryCodes[normalizeCategoryCode(name)]

	return id, ok
}

func normalizeCategoryCode(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToUpper(name))
}

// FindCategoryByName returns the first category whose name or acronym
// contains name, ignoring case.
func FindCategoryByName(categories []Category, name string) (Category, bool) {
	needle := strings.ToLower(name)

	return lo.Find(categories, func(category Category) bool {
		return strings.Contains(strings.ToLower(category.Name), needle) ||
			strings.Contains(strings.ToLower(category.Acronym), needle)
	})
}
