package services

import (
	"context"
	"log"
	"time"

	"etalase/internal/apperrors"
	"etalase/internal/cache"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/storage"
	"etalase/pkg/rabbitmq"
)

const defaultTimeout = 10 * time.Second

// ProductService handles business logic related to products: validation,
// persistence, media lifecycle, caching and event publishing.
type ProductService struct {
	repo    repositories.ProductRepository
	media   storage.Storage
	cache   *cache.ProductCache
	events  *rabbitmq.Client
	timeout time.Duration
}

// NewProductService creates a new ProductService. cache and events may be
// nil; both degrade to no-ops.
func NewProductService(repo repositories.ProductRepository, media storage.Storage, productCache *cache.ProductCache, events *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:    repo,
		media:   media,
		cache:   productCache,
		events:  events,
		timeout: defaultTimeout,
	}
}

// ListProducts retrieves all products, newest first.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if cached := s.cache.GetList(ctx); cached != nil {
		return cached, nil
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, products)
	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if cached := s.cache.GetProduct(ctx, id); cached != nil {
		return cached, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetProduct(ctx, product)
	return product, nil
}

// CreateProduct validates the input and persists a new product. All field
// violations are checked before any write.
func (s *ProductService) CreateProduct(ctx context.Context, input *models.ProductInput) (*models.Product, error) {
	if missing := input.Missing(); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}
	if violations := input.Validate(); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product := &models.Product{}
	input.Apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, product.ID)
	s.publish("product.created", product.ID, product)
	return product, nil
}

// UpdateProduct replaces every writable field of an existing product.
// Optional fields omitted from the input are reset, not preserved.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *models.ProductInput) (*models.Product, error) {
	if missing := input.Missing(); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}
	if violations := input.Validate(); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	// Re-fetch so the returned record carries the refreshed updated_at.
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	s.publish("product.updated", id, updated)
	return updated, nil
}

// DeleteProduct removes a product and reclaims its stored media. Media
// cleanup is best effort: any failure is logged and dropped, and the record
// delete alone decides the outcome. A product must never be undeletable
// because the media host is unreachable.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.cleanupMedia(ctx, product)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.publish("product.deleted", id, nil)
	return nil
}

// cleanupMedia issues one best-effort blob delete per non-empty media field.
// URLs the extractor cannot resolve are skipped silently.
func (s *ProductService) cleanupMedia(ctx context.Context, product *models.Product) {
	if s.media == nil {
		return
	}
	refs := []struct {
		url          string
		resourceType storage.ResourceType
	}{
		{product.ImageURL, storage.ResourceImage},
		{product.VideoURL, storage.ResourceVideo},
	}
	for _, ref := range refs {
		if ref.url == "" {
			continue
		}
		publicID, ok := storage.PublicIDFromURL(ref.url)
		if !ok {
			publicID, ok = storage.LocalPublicID(ref.url)
		}
		if !ok {
			continue
		}
		if err := s.media.Delete(ctx, publicID, ref.resourceType); err != nil {
			log.Printf("Failed to clean up %s %s for product %s: %v", ref.resourceType, publicID, product.ID, err)
		}
	}
}

// publish emits a lifecycle event. Publish failures are logged, never
// surfaced: events are a side channel, not part of the operation's contract.
func (s *ProductService) publish(eventType, productID string, payload interface{}) {
	if err := s.events.PublishProductEvent(eventType, productID, payload); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", eventType, productID, err)
	}
}
