package usecase

import (
	"fmt"
	"strconv"

	"ecoshop-assistant/internal/model"
	"ecoshop-assistant/internal/router"
)

// filterByPrice keeps the products inside the given bounds. A nil or empty
// range passes everything through. A product without a price (zero) is
// excluded whenever a bound is supplied.
func filterByPrice(products []model.Product, priceRange *router.PriceRange) []model.Product {
	if priceRange == nil || (priceRange.Min == nil && priceRange.Max == nil) {
		return products
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Price == 0 {
			continue
		}
		if priceRange.Min != nil && p.Price < float64(*priceRange.Min) {
			continue
		}
		if priceRange.Max != nil && p.Price > float64(*priceRange.Max) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// maxPriceSuffix renders the " under ₹N" message suffix when an upper
// bound was parsed.
func maxPriceSuffix(priceRange *router.PriceRange) string {
	if priceRange == nil || priceRange.Max == nil {
		return ""
	}
	return fmt.Sprintf(" under ₹%d", *priceRange.Max)
}

// formatAmount renders a rupee amount without trailing zeros (200, 199.5).
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func firstN(products []model.Product, n int) []model.Product {
	if len(products) <= n {
		return products
	}
	return products[:n]
}
