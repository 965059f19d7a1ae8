package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"etalase/internal/apperrors"
	"etalase/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// validID reports whether id matches the format this repository assigns.
// Runs before any query so malformed client input never reaches the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// GetAll retrieves all products, newest first. An empty store yields an
// empty slice, never nil, so listings serialize as [].
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list products: %v", apperrors.ErrBackend, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if !validID(id) {
		return nil, apperrors.ErrInvalidID
	}

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to get product %s: %v", apperrors.ErrBackend, id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning its ID. GORM fills CreatedAt and
// UpdatedAt with the same timestamp on insert.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("%w: failed to create product: %v", apperrors.ErrBackend, err)
	}
	return nil
}

// Update replaces all writable fields of an existing product. Select("*")
// makes GORM write zero values too, which is what full-replace semantics
// require; id and created_at stay immutable.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	if !validID(product.ID) {
		return apperrors.ErrInvalidID
	}

	res := r.db.WithContext(ctx).
		Model(&models.Product{ID: product.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to update product %s: %v", apperrors.ErrBackend, product.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Updates does not return ErrRecordNotFound when nothing matched, so
		// check RowsAffected.
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperrors.ErrInvalidID
	}

	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to delete product %s: %v", apperrors.ErrBackend, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
