package services

import (
	"sort"
	"strings"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/utils"
)

// Relevance tiers, best first.
const (
	tierExact = iota
	tierPrefix
	tierOther
)

func relevanceTier(value, term string) int {
	v := strings.ToLower(value)
	switch {
	case v == term:
		return tierExact
	case strings.HasPrefix(v, term):
		return tierPrefix
	default:
		return tierOther
	}
}

// RankByRelevance sorts products in place: exact matches on the searched
// field first, then prefix matches, then the rest. Ties are broken by name,
// case-insensitively.
func RankByRelevance(products []models.Product, term string, field models.SearchField) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(products) < 2 {
		return
	}

	col := utils.NewCollator()
	sort.SliceStable(products, func(i, j int) bool {
		ti := relevanceTier(products[i].SearchValue(field), term)
		tj := relevanceTier(products[j].SearchValue(field), term)
		if ti != tj {
			return ti < tj
		}
		return col.CompareString(products[i].Name, products[j].Name) < 0
	})
}
