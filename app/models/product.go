package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Slug          string    `bson:"slug" json:"slug"`
	Description   string    `bson:"description" json:"description"`
	WarehouseCode string    `bson:"warehouse_code,omitempty" json:"warehouseCode,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	CategoryCode  string    `bson:"category_code" json:"categoryCode"`
	CategoryName  string    `bson:"category_name" json:"categoryName"`
	SectionLabel  string    `bson:"section_label" json:"sectionLabel"`
	ImageURL      string    `bson:"image_url" json:"imageUrl"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

func (p *Product) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

// CartLineFromProduct builds the cart entry for qty units of p.
func CartLineFromProduct(p *Product, qty int) CartLine {
	return CartLine{
		ProductID:            p.ID,
		DisplayName:          p.Name,
		CategoryCode:         p.CategoryCode,
		SubcategoryLabel:     p.SectionLabel,
		PrimaryCategoryLabel: p.CategoryName,
		UnitPrice:            p.PriceDecimal(),
		ImageRef:             p.ImageURL,
		WarehouseLabel:       p.WarehouseCode,
		Quantity:             qty,
	}
}
