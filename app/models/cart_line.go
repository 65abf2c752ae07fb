package models

import "github.com/shopspring/decimal"

// CartLine is one product entry in a visitor's cart, keyed by ProductID.
// The JSON field names are the persisted cart format; changing them breaks
// carts saved by earlier versions.
type CartLine struct {
	ProductID            string          `json:"productId"`
	DisplayName          string          `json:"displayName"`
	CategoryCode         string          `json:"categoryCode"`
	SubcategoryLabel     string          `json:"subcategoryLabel"`
	PrimaryCategoryLabel string          `json:"primaryCategoryLabel"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	ImageRef             string          `json:"imageRef"`
	WarehouseLabel       string          `json:"warehouseLabel,omitempty"`
	Quantity             int             `json:"quantity"`
}

// Label is the name used in order messages: the internal warehouse code
// when present, the display name otherwise.
func (l *CartLine) Label() string {
	if l.WarehouseLabel != "" {
		return l.WarehouseLabel
	}
	return l.DisplayName
}
