package repositories

import (
	"context"

	"etalase/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update replaces every writable field of the stored record.
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
