package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etalase/internal/models"
)

// A nil cache is the disabled state: every operation must be a safe no-op so
// the service never branches on whether Redis is configured.
func TestNilCacheIsNoOp(t *testing.T) {
	var c *ProductCache
	ctx := context.Background()

	assert.Nil(t, c.GetProduct(ctx, "some-id"))
	assert.Nil(t, c.GetList(ctx))
	c.SetProduct(ctx, &models.Product{ID: "some-id"})
	c.SetList(ctx, []models.Product{})
	c.Invalidate(ctx, "some-id")
	assert.NoError(t, c.Close())
}

func TestNewProductCacheEmptyAddrDisables(t *testing.T) {
	c, err := NewProductCache("", "", 0)
	require.NoError(t, err)
	assert.Nil(t, c)
}
