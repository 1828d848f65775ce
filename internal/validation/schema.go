// Package validation holds the rule sets for contact and RFQ submissions.
// Validation is synchronous and side-effect free: callers get back either a
// normalized value or an *Error listing every violated field.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/utils"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional +, up to four digit groups, optional parentheses around the
	// first two, and "-", " " or "." between groups.
	phonePattern = regexp.MustCompile(`^\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}$`)
)

// go-playground/validator/v10 caches struct metadata, so one instance is shared.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names so error paths match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "leademail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	mustRegister(v, "posquantity", func(fl validator.FieldLevel) bool {
		_, ok := utils.ParseQuantity(fl.Field().String())
		return ok
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateContact normalizes and checks a contact inquiry against the full
// contact rule set.
func ValidateContact(in models.ContactInquiry) (models.ContactInquiry, error) {
	out := NormalizeContact(in)
	if err := validate.Struct(out); err != nil {
		return out, newError(err)
	}
	return out, nil
}

// MissingContactField returns the json name of the first required contact
// field that is blank, or "" when all are present.
func MissingContactField(in models.ContactInquiry) string {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"country", in.Country},
		{"company", in.Company},
		{"phone", in.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return r.field
		}
	}
	return ""
}

// ValidateRFQ normalizes and checks a request for quote. Every violation is
// collected: top-level fields and every invalid product line.
func ValidateRFQ(in models.RFQRequest) (models.RFQRequest, error) {
	out := NormalizeRFQ(in)
	if err := validate.Struct(out); err != nil {
		return out, newRFQError(err, out.Products)
	}
	return out, nil
}

// ValidateLineItem checks a single product line. index is zero-based.
func ValidateLineItem(index int, item models.RFQLineItem) *ProductError {
	err := validate.Struct(item)
	if err == nil {
		return nil
	}

	pe := &ProductError{Index: index, Name: productLabel(item)}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		pe.Messages = append(pe.Messages, err.Error())
		return pe
	}
	for _, fe := range verrs {
		pe.Messages = append(pe.Messages, message(fe))
	}
	return pe
}

func NormalizeContact(in models.ContactInquiry) models.ContactInquiry {
	return models.ContactInquiry{
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Country:    strings.TrimSpace(in.Country),
		Company:    strings.TrimSpace(in.Company),
		Phone:      strings.TrimSpace(in.Phone),
		LookingFor: strings.TrimSpace(in.LookingFor),
		Message:    strings.TrimSpace(in.Message),
		Website:    strings.TrimSpace(in.Website),
	}
}

func NormalizeRFQ(in models.RFQRequest) models.RFQRequest {
	out := models.RFQRequest{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Company:     strings.TrimSpace(in.Company),
		Phone:       strings.TrimSpace(in.Phone),
		Country:     strings.TrimSpace(in.Country),
		CountryCode: strings.TrimSpace(in.CountryCode),
		City:        strings.TrimSpace(in.City),
		Message:     strings.TrimSpace(in.Message),
	}
	if in.Products != nil {
		out.Products = make([]models.RFQLineItem, len(in.Products))
		for i, item := range in.Products {
			out.Products[i] = NormalizeLineItem(item)
		}
	}
	return out
}

func NormalizeLineItem(item models.RFQLineItem) models.RFQLineItem {
	category := models.Category(strings.ToLower(strings.TrimSpace(string(item.Category))))
	return models.RFQLineItem{
		ProductID:   strings.TrimSpace(item.ProductID),
		ProductName: strings.TrimSpace(item.ProductName),
		CASNumber:   strings.TrimSpace(item.CASNumber),
		Category:    category,
		Quantity:    strings.TrimSpace(item.Quantity),
		Unit:        models.Unit(strings.ToLower(strings.TrimSpace(string(item.Unit)))),
	}
}

func productLabel(item models.RFQLineItem) string {
	if item.ProductName != "" {
		return item.ProductName
	}
	if item.ProductID != "" {
		return item.ProductID
	}
	return "unnamed"
}
