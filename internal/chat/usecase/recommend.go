package usecase

import (
	"context"
	"sort"

	"ecoshop-assistant/internal/model"
)

// recommended is the top-rated fallback list: full catalog, rating
// strictly above RecommendRatingFloor, stable descending sort, capped at
// MaxProductsShown. A catalog failure yields an empty list, never an error.
func (uc *implUseCase) recommended(ctx context.Context) []model.Product {
	all, err := uc.products.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: catalog fetch failed: %v", LogPrefixRecommend, err)
		return []model.Product{}
	}

	rated := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Rating > RecommendRatingFloor {
			rated = append(rated, p)
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})

	return firstN(rated, MaxProductsShown)
}
