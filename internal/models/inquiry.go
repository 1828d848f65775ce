package models

// ContactInquiry is a general contact or partnership request. Website is the
// honeypot: the form hides it from people, so any value means a bot filled it.
type ContactInquiry struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,leademail"`
	Country    string `json:"country" validate:"required,min=2"`
	Company    string `json:"company" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,phone"`
	LookingFor string `json:"lookingFor"`
	Message    string `json:"message"`
	Website    string `json:"website"`
}

// Unit is the quantity unit of an RFQ line item.
type Unit string

const (
	UnitMilligram Unit = "mg"
	UnitGram      Unit = "g"
	UnitKilogram  Unit = "kg"
	UnitMetricTon Unit = "mt"
)

// RFQLineItem is one requested product with its quantity.
type RFQLineItem struct {
	ProductID   string   `json:"productId" validate:"required"`
	ProductName string   `json:"productName" validate:"required"`
	CASNumber   string   `json:"casNumber" validate:"required"`
	Category    Category `json:"category" validate:"required,category"`
	Quantity    string   `json:"quantity" validate:"required,posquantity"`
	Unit        Unit     `json:"unit" validate:"required,oneof=mg g kg mt"`
}

// RFQRequest is a request for quote covering one or more catalog products.
type RFQRequest struct {
	Name        string        `json:"name" validate:"required,min=2"`
	Email       string        `json:"email" validate:"required,leademail"`
	Company     string        `json:"company" validate:"required,min=2"`
	Phone       string        `json:"phone" validate:"required,phone"`
	Country     string        `json:"country" validate:"required,min=2"`
	CountryCode string        `json:"countryCode"`
	City        string        `json:"city" validate:"required,min=2"`
	Message     string        `json:"message"`
	Products    []RFQLineItem `json:"products" validate:"required,min=1,dive"`
}

type ContactResponse struct {
	OK bool `json:"ok"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
