package models

import (
	"strings"
)

// Category is the closed set of catalog categories. No other value is ever
// stored or accepted; use ParseCategory to build one from untrusted input.
type Category string

const (
	CategoryAPI          Category = "api"
	CategoryImpurity     Category = "impurity"
	CategoryIntermediate Category = "intermediate"
	CategoryChemical     Category = "chemical"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryAPI, CategoryImpurity, CategoryIntermediate, CategoryChemical}

var categoryLabels = map[Category]string{
	CategoryAPI:          "API",
	CategoryImpurity:     "Impurity",
	CategoryIntermediate: "Intermediate",
	CategoryChemical:     "Chemical",
}

// ParseCategory maps a raw value onto the enum. Matching ignores case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryLabels[c]; !ok {
		return "", false
	}
	return c, true
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human readable name used in emails.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// SearchField selects the column free-text search runs against.
type SearchField string

const (
	SearchByName SearchField = "name"
	SearchByCAS  SearchField = "cas"
)

// ParseSearchField falls back to SearchByName for anything unknown.
func ParseSearchField(s string) SearchField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cas", "cas_number", "casnumber":
		return SearchByCAS
	default:
		return SearchByName
	}
}

// Product is a read-only catalog row. Rows are maintained outside this service.
type Product struct {
	ID        string   `gorm:"primaryKey;type:text" json:"id" yaml:"id"`
	Name      string   `gorm:"index;not null" json:"name" yaml:"name"`
	CASNumber string   `gorm:"column:cas_number;index" json:"casNumber" yaml:"cas_number"`
	Category  Category `gorm:"size:32;index" json:"category" yaml:"category"`
}

func (Product) TableName() string {
	return "products"
}

// SearchValue returns the column a search on field matches against.
func (p Product) SearchValue(field SearchField) string {
	if field == SearchByCAS {
		return p.CASNumber
	}
	return p.Name
}

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type SearchParams struct {
	Query      string      `json:"query"`
	Field      SearchField `json:"searchType"`
	Categories []Category  `json:"categories,omitempty"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
}

// Offset is the ordinal of the first row in the requested page window.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type SearchResponse struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	HasMore  bool      `json:"hasMore"`
}

type BatchRequest struct {
	IDs []string `json:"ids"`
}

type BatchResponse struct {
	Products []Product `json:"products"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    int          `json:"code"`
	Field   string       `json:"field,omitempty"`
	Details string       `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
