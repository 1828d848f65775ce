package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"chemical-leads-api/internal/models"
)

// ProductError collects the violations of one RFQ line item.
type ProductError struct {
	Index    int
	Name     string
	Messages []string
}

// String renders "Product <n> (<name>): <msg>, <msg>" with a one-based n.
func (p ProductError) String() string {
	return fmt.Sprintf("Product %d (%s): %s", p.Index+1, p.Name, strings.Join(p.Messages, ", "))
}

// Error is returned for any schema violation.
type Error struct {
	// Fields holds every violation, product fields included, keyed by body path.
	Fields []models.FieldError
	// Products holds per-line summaries, ordered by index.
	Products []ProductError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.TopLevel() {
		parts = append(parts, f.Field+": "+f.Message)
	}
	if s := e.ProductSummary(); s != "" {
		parts = append(parts, s)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TopLevel returns the violations that are not inside a product line.
func (e *Error) TopLevel() []models.FieldError {
	var out []models.FieldError
	for _, f := range e.Fields {
		if !strings.HasPrefix(f.Field, "products[") {
			out = append(out, f)
		}
	}
	return out
}

// ProductSummary joins every product error with "; ".
func (e *Error) ProductSummary() string {
	parts := make([]string, len(e.Products))
	for i, p := range e.Products {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// HasField reports whether field (a body path such as "email") failed.
func (e *Error) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewProductsError builds an *Error from line items checked one by one.
func NewProductsError(products []ProductError) *Error {
	e := &Error{Products: products}
	for _, p := range products {
		for _, m := range p.Messages {
			e.Fields = append(e.Fields, models.FieldError{
				Field:   fmt.Sprintf("products[%d]", p.Index),
				Message: m,
			})
		}
	}
	return e
}

func newError(err error) *Error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Fields: []models.FieldError{{Field: "body", Message: err.Error()}}}
	}
	e := &Error{}
	for _, fe := range verrs {
		e.Fields = append(e.Fields, models.FieldError{Field: path(fe), Message: message(fe)})
	}
	return e
}

func newRFQError(err error, items []models.RFQLineItem) *Error {
	e := newError(err)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return e
	}

	byIndex := map[int]*ProductError{}
	for _, fe := range verrs {
		idx, ok := productIndex(path(fe))
		if !ok || idx >= len(items) {
			continue
		}
		pe, found := byIndex[idx]
		if !found {
			pe = &ProductError{Index: idx, Name: productLabel(items[idx])}
			byIndex[idx] = pe
		}
		pe.Messages = append(pe.Messages, message(fe))
	}

	for _, pe := range byIndex {
		e.Products = append(e.Products, *pe)
	}
	sort.Slice(e.Products, func(i, j int) bool { return e.Products[i].Index < e.Products[j].Index })
	return e
}

// path strips the root struct name: "RFQRequest.products[0].unit" -> "products[0].unit".
func path(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func productIndex(p string) (int, bool) {
	if !strings.HasPrefix(p, "products[") {
		return 0, false
	}
	end := strings.Index(p, "]")
	if end < 0 {
		return 0, false
	}
	idx, err := strconv.Atoi(p[len("products["):end])
	if err != nil {
		return 0, false
	}
	return idx, true
}

var labels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"country":     "Country",
	"company":     "Company",
	"phone":       "Phone",
	"city":        "City",
	"productId":   "Product ID",
	"productName": "Product name",
	"casNumber":   "CAS number",
	"category":    "Category",
	"quantity":    "Quantity",
	"unit":        "Unit",
}

func message(fe validator.FieldError) string {
	if fe.Field() == "products" {
		return "At least one product is required"
	}
	label, ok := labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "leademail":
		return "Invalid email address"
	case "phone":
		return "Invalid phone number"
	case "category":
		return "Category must be one of: api, impurity, intermediate, chemical"
	case "posquantity":
		return "Quantity must be a positive number"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid"
	}
}
