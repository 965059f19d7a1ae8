package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"etalase/internal/apperrors"
	"etalase/internal/models"
	"etalase/internal/repositories"
)

// setupRepo opens a dedicated shared-cache in-memory database per test, so
// pooled connections see the same data and tests stay isolated.
func setupRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return repositories.NewGORMProductRepository(db)
}

func newProduct(name string) *models.Product {
	return &models.Product{
		ProductName: name,
		PriceNew:    9.99,
		Brand:       "Sprint",
		Category:    "shoes",
	}
}

func TestGORMProductRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := newProduct("Runner X")
	require.NoError(t, repo.Create(ctx, p))

	assert.NotEmpty(t, p.ID)

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Runner X", fetched.ProductName)
	assert.False(t, fetched.CreatedAt.IsZero())
	assert.Equal(t, fetched.CreatedAt, fetched.UpdatedAt)
}

func TestGORMProductRepository_GetByIDInvalidFormat(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), "not-a-valid-id")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestGORMProductRepository_GetByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGORMProductRepository_GetAllOrdersNewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := newProduct("first")
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := newProduct("second")
	require.NoError(t, repo.Create(ctx, second))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "second", products[0].ProductName)
	assert.Equal(t, "first", products[1].ProductName)
}

func TestGORMProductRepository_GetAllEmpty(t *testing.T) {
	repo := setupRepo(t)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGORMProductRepository_UpdateReplacesZeroValues(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := newProduct("Runner X")
	p.Description = "limited edition"
	require.NoError(t, repo.Create(ctx, p))
	createdAt := p.CreatedAt

	time.Sleep(5 * time.Millisecond)

	p.Description = ""
	p.PriceNew = 0
	require.NoError(t, repo.Update(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", fetched.Description, "zero values must overwrite")
	assert.Equal(t, 0.0, fetched.PriceNew)
	assert.WithinDuration(t, createdAt, fetched.CreatedAt, time.Second, "created_at is immutable")
	assert.True(t, fetched.UpdatedAt.After(fetched.CreatedAt), "updated_at must be refreshed")
}

func TestGORMProductRepository_UpdateMissing(t *testing.T) {
	repo := setupRepo(t)

	p := newProduct("ghost")
	p.ID = "11111111-2222-3333-4444-555555555555"
	err := repo.Update(context.Background(), p)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGORMProductRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := newProduct("Runner X")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "bogus"), apperrors.ErrInvalidID)
}
