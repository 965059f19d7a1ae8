package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *Price {
	p := Price(v)
	return &p
}

func validInput() *ProductInput {
	return &ProductInput{
		ProductName: "Runner X",
		PriceNew:    price(129.90),
		Brand:       "Sprint",
		Category:    "shoes",
	}
}

func TestProductInputMissing(t *testing.T) {
	assert.Empty(t, validInput().Missing())

	in := &ProductInput{Brand: "Sprint", Category: "shoes"}
	missing := in.Missing()
	assert.ElementsMatch(t, []string{"product_name", "price_new"}, missing)

	// Whitespace-only counts as absent.
	in = validInput()
	in.Brand = "   "
	assert.Equal(t, []string{"brand"}, in.Missing())
}

func TestProductInputValidate(t *testing.T) {
	assert.Empty(t, validInput().Validate())

	t.Run("negative price", func(t *testing.T) {
		in := validInput()
		in.PriceNew = price(-5)
		violations := in.Validate()
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "price_new")
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		in := validInput()
		in.PriceNew = price(0)
		assert.Empty(t, in.Validate())
	})

	t.Run("violations aggregate", func(t *testing.T) {
		in := validInput()
		in.ProductName = strings.Repeat("n", 201)
		in.Brand = strings.Repeat("b", 101)
		in.Description = strings.Repeat("d", 1001)
		violations := in.Validate()
		assert.Len(t, violations, 3)
	})

	t.Run("length boundaries", func(t *testing.T) {
		in := validInput()
		in.ProductName = strings.Repeat("n", 200)
		in.Brand = strings.Repeat("b", 100)
		in.Description = strings.Repeat("d", 1000)
		assert.Empty(t, in.Validate())
	})
}

func TestPriceUnmarshal(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var in ProductInput
		require.NoError(t, json.Unmarshal([]byte(`{"price_new": 12.5}`), &in))
		require.NotNil(t, in.PriceNew)
		assert.Equal(t, Price(12.5), *in.PriceNew)
	})

	t.Run("numeric string is coerced", func(t *testing.T) {
		var in ProductInput
		require.NoError(t, json.Unmarshal([]byte(`{"price_new": "12.5"}`), &in))
		require.NotNil(t, in.PriceNew)
		assert.Equal(t, Price(12.5), *in.PriceNew)
	})

	t.Run("non-numeric string fails", func(t *testing.T) {
		var in ProductInput
		err := json.Unmarshal([]byte(`{"price_new": "cheap"}`), &in)
		assert.Error(t, err)
	})

	t.Run("absent stays nil", func(t *testing.T) {
		var in ProductInput
		require.NoError(t, json.Unmarshal([]byte(`{"product_name": "x"}`), &in))
		assert.Nil(t, in.PriceNew)
	})
}

func TestProductInputApplyIsFullReplace(t *testing.T) {
	p := &Product{
		ID:          "keep-me",
		ProductName: "Old name",
		PriceNew:    10,
		Brand:       "Old brand",
		Category:    "old",
		Description: "old description",
		ImageURL:    "https://host/x/upload/old.png",
		VideoURL:    "https://host/x/upload/old.mp4",
	}

	in := validInput() // no description, no media urls
	in.Apply(p)

	assert.Equal(t, "keep-me", p.ID)
	assert.Equal(t, "Runner X", p.ProductName)
	assert.Equal(t, 129.90, p.PriceNew)
	assert.Equal(t, "", p.Description, "omitted description must reset, not be preserved")
	assert.Equal(t, "", p.ImageURL)
	assert.Equal(t, "", p.VideoURL)
}
