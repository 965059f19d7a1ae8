package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Product represents a catalog entry in the store.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductName string    `json:"product_name" gorm:"type:varchar(200);not null"`
	PriceNew    float64   `json:"price_new" gorm:"not null"`
	Brand       string    `json:"brand" gorm:"type:varchar(100);not null"`
	Category    string    `json:"category" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:varchar(1000)"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Price is a float64 that also accepts quoted numeric strings in JSON, so
// clients sending price_new as "12.50" keep working. Non-numeric input fails
// at decode time rather than silently becoming zero.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("price_new must be numeric: %w", err)
	}
	*p = Price(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// ProductInput carries the writable fields of a Product for create and
// update requests. PriceNew is a pointer so an absent field can be told apart
// from an explicit zero.
type ProductInput struct {
	ProductName string `json:"product_name"`
	PriceNew    *Price `json:"price_new"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
}

// Missing returns the names of required fields that are absent or blank.
func (in *ProductInput) Missing() []string {
	var missing []string
	if strings.TrimSpace(in.ProductName) == "" {
		missing = append(missing, "product_name")
	}
	if in.PriceNew == nil {
		missing = append(missing, "price_new")
	}
	if strings.TrimSpace(in.Brand) == "" {
		missing = append(missing, "brand")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	return missing
}

// Validate checks every field rule and returns the full list of violations.
// Call Missing first; Validate assumes the required fields are present.
func (in *ProductInput) Validate() []string {
	var violations []string
	if n := len(strings.TrimSpace(in.ProductName)); n < 1 || n > 200 {
		violations = append(violations, "product_name must be between 1 and 200 characters")
	}
	if in.PriceNew != nil {
		price := float64(*in.PriceNew)
		if math.IsNaN(price) || math.IsInf(price, 0) {
			violations = append(violations, "price_new must be a finite number")
		} else if price < 0 {
			violations = append(violations, "price_new must not be negative")
		}
	}
	if n := len(strings.TrimSpace(in.Brand)); n < 1 || n > 100 {
		violations = append(violations, "brand must be between 1 and 100 characters")
	}
	if n := len(strings.TrimSpace(in.Category)); n < 1 || n > 100 {
		violations = append(violations, "category must be between 1 and 100 characters")
	}
	if len(in.Description) > 1000 {
		violations = append(violations, "description must be at most 1000 characters")
	}
	return violations
}

// Apply copies all writable fields onto the product. Omitted optional fields
// overwrite with their zero values: update is a full replace, not a patch.
func (in *ProductInput) Apply(p *Product) {
	p.ProductName = strings.TrimSpace(in.ProductName)
	if in.PriceNew != nil {
		p.PriceNew = float64(*in.PriceNew)
	}
	p.Brand = strings.TrimSpace(in.Brand)
	p.Category = strings.TrimSpace(in.Category)
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.VideoURL = in.VideoURL
}
