package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/tokolaju/katalog/app/repositories"
)

// ImageArchiver downloads every catalog product image into a local
// directory. Individual fetch failures are logged and skipped so one dead
// URL does not abort the archive run.
type ImageArchiver struct {
	productRepo repositories.ProductRepositoryImpl
	client      *http.Client
	dir         string
}

func NewImageArchiver(productRepo repositories.ProductRepositoryImpl, dir string) *ImageArchiver {
	return &ImageArchiver{
		productRepo: productRepo,
		client:      &http.Client{Timeout: 30 * time.Second},
		dir:         dir,
	}
}

func (a *ImageArchiver) ArchiveAll(ctx context.Context) error {
	products, err := a.productRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products for archiving: %w", err)
	}

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return fmt.Errorf("failed to create image directory %s: %w", a.dir, err)
	}

	saved := 0
	for _, product := range products {
		if product.ImageURL == "" {
			continue
		}
		if err := a.fetchOne(ctx, product.Slug, product.ImageURL); err != nil {
			log.Printf("ImageArchiver: skipping %s: %v", product.Slug, err)
			continue
		}
		saved++
	}

	log.Printf("ImageArchiver: saved %d of %d product images to %s", saved, len(products), a.dir)
	return nil
}

func (a *ImageArchiver) fetchOne(ctx context.Context, slug, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("bad image url %s: %w", imageURL, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s returned status %d", imageURL, resp.StatusCode)
	}

	ext := path.Ext(imageURL)
	if ext == "" {
		ext = ".jpg"
	}

	file, err := os.Create(filepath.Join(a.dir, slug+ext))
	if err != nil {
		return fmt.Errorf("failed to create image file for %s: %w", slug, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("failed to write image for %s: %w", slug, err)
	}
	return nil
}
