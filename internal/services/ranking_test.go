package services

import (
	"reflect"
	"testing"

	"chemical-leads-api/internal/models"
)

func TestRankByRelevance(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Dimethyl Sulfoxide"},
		{ID: "2", Name: "Methanol-d4"},
		{ID: "3", Name: "Methanol"},
		{ID: "4", Name: "Methyl Acetate"},
		{ID: "5", Name: "Acetyl Methanol"},
	}

	RankByRelevance(products, "METHANOL", models.SearchByName)

	got := names(products)
	want := []string{"Methanol", "Methanol-d4", "Acetyl Methanol", "Dimethyl Sulfoxide", "Methyl Acetate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRankByRelevanceEmptyTerm(t *testing.T) {
	products := []models.Product{{Name: "b"}, {Name: "a"}}
	RankByRelevance(products, "  ", models.SearchByName)
	if products[0].Name != "b" {
		t.Error("empty term must leave order untouched")
	}
}

func TestRelevanceTier(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"1115-70-4", tierExact},
		{"1115-70-45", tierPrefix},
		{"21115-70-4", tierOther},
	}
	for _, tt := range tests {
		if got := relevanceTier(tt.value, "1115-70-4"); got != tt.want {
			t.Errorf("relevanceTier(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
