package seeders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tokolaju/katalog/app/models"
	"github.com/tokolaju/katalog/app/repositories"
)

// Seed writes a sample catalog so the storefront has something to show on
// a fresh database. Upserts keyed on slug-stable IDs keep reruns harmless.
func Seed(ctx context.Context, db *mongo.Database) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	now := time.Now()

	categories := []models.Category{
		{
			Code: "kaos-polos",
			Name: "Kaos Polos",
			Slug: "kaos-polos",
			Sections: []models.Section{
				{Label: "Lengan Pendek", Slug: "lengan-pendek"},
				{Label: "Lengan Panjang", Slug: "lengan-panjang"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Code: "kaos-sablon",
			Name: "Kaos Sablon",
			Slug: "kaos-sablon",
			Sections: []models.Section{
				{Label: "Sablon Depan", Slug: "sablon-depan"},
				{Label: "Sablon Penuh", Slug: "sablon-penuh"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Code: "aksesoris",
			Name: "Aksesoris",
			Slug: "aksesoris",
			Sections: []models.Section{
				{Label: "Mug", Slug: "mug"},
				{Label: "Topi", Slug: "topi"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for i := range categories {
		if err := categoryRepo.Upsert(ctx, &categories[i]); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", categories[i].Code, err)
		}
	}

	products := []models.Product{
		{
			Name:          "Kaos Polos Hitam",
			Slug:          "kaos-polos-hitam",
			Description:   "Kaos polos katun combed 30s warna hitam.",
			WarehouseCode: "KP-HTM-01",
			Price:         35.00,
			CategoryCode:  "kaos-polos",
			CategoryName:  "Kaos Polos",
			SectionLabel:  "Lengan Pendek",
			ImageURL:      "https://img.tokolaju.id/kaos-polos-hitam.jpg",
		},
		{
			Name:          "Kaos Polos Putih Lengan Panjang",
			Slug:          "kaos-polos-putih-lengan-panjang",
			Description:   "Kaos polos lengan panjang warna putih.",
			WarehouseCode: "KP-PTH-02",
			Price:         35.00,
			CategoryCode:  "kaos-polos",
			CategoryName:  "Kaos Polos",
			SectionLabel:  "Lengan Panjang",
			ImageURL:      "https://img.tokolaju.id/kaos-polos-putih.jpg",
		},
		{
			Name:         "Kaos Sablon Logo",
			Slug:         "kaos-sablon-logo",
			Description:  "Kaos sablon plastisol satu warna.",
			Price:        35.00,
			CategoryCode: "kaos-sablon",
			CategoryName: "Kaos Sablon",
			SectionLabel: "Sablon Depan",
			ImageURL:     "https://img.tokolaju.id/kaos-sablon-logo.jpg",
		},
		{
			Name:         "Mug Keramik",
			Slug:         "mug-keramik",
			Description:  "Mug keramik 300ml.",
			Price:        10.00,
			CategoryCode: "aksesoris",
			CategoryName: "Aksesoris",
			SectionLabel: "Mug",
			ImageURL:     "https://img.tokolaju.id/mug-keramik.jpg",
		},
	}

	for i := range products {
		existing, err := productRepo.GetBySlug(ctx, products[i].Slug)
		if err != nil {
			return fmt.Errorf("failed to check product %s: %w", products[i].Slug, err)
		}
		if existing != nil {
			products[i].ID = existing.ID
			products[i].CreatedAt = existing.CreatedAt
		} else {
			products[i].ID = uuid.New().String()
			products[i].CreatedAt = now
		}
		products[i].UpdatedAt = now

		if err := productRepo.Upsert(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Slug, err)
		}
	}

	return nil
}
