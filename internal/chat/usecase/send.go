package usecase

import (
	"context"
	"fmt"
	"strings"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/internal/model"
	"ecoshop-assistant/internal/router"
)

// Send processes one user utterance: classify, record the session turn,
// then branch to catalog lookups or the generative delegate. Upstream
// failures are mapped to safe fallbacks here; the returned error is only
// ever ErrEmptyMessage.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.Response{}, chat.ErrEmptyMessage
	}

	analysis := uc.router.Classify(ctx, input.Message)
	priceRange := router.ExtractPriceRange(input.Message)

	uc.sessions.Record(sc.UserID, input.Message, analysis.Intent, analysis.Category)

	uc.l.Infof(ctx, "%s: user=%s intent=%s cart=%d", LogPrefixSend, sc.UserID, analysis.Intent, len(input.Cart))

	switch analysis.Intent {
	case router.IntentSearch, router.IntentCategory:
		return uc.respondProducts(ctx, input.Message, analysis, priceRange), nil
	case router.IntentCart:
		return uc.respondCart(ctx, input.Cart), nil
	case router.IntentRecommend:
		return uc.respondRecommend(ctx), nil
	default: // help, general
		return uc.askAssistant(ctx, input.Message, len(input.Cart)), nil
	}
}

// respondProducts handles the search and category intents: text search
// first, category lookup as fallback, then the price filter. An empty
// filtered result substitutes the recommendation fallback.
func (uc *implUseCase) respondProducts(ctx context.Context, message string, analysis router.Output, priceRange *router.PriceRange) chat.Response {
	searchTerm := router.CleanSearchTerm(message)

	var products []model.Product
	if searchTerm != "" {
		found, err := uc.products.Search(ctx, searchTerm)
		if err != nil {
			uc.l.Errorf(ctx, "%s: product search failed: %v", LogPrefixSend, err)
		} else {
			products = found
		}
	}

	if len(products) == 0 && analysis.Category != "" {
		found, err := uc.products.ByCategory(ctx, analysis.Category)
		if err != nil {
			uc.l.Errorf(ctx, "%s: category lookup failed: %v", LogPrefixSend, err)
		} else {
			products = found
		}
	}

	filtered := filterByPrice(products, priceRange)

	if len(filtered) == 0 {
		recommendations := uc.recommended(ctx)
		return chat.Response{
			Message:      fmt.Sprintf(tmplSearchEmpty, searchTerm, maxPriceSuffix(priceRange)),
			Type:         chat.ResponseTypeProduct,
			Products:     recommendations,
			ShowViewMore: len(recommendations) > MaxProductsShown,
		}
	}

	category := analysis.Category
	if category == "" {
		category = searchTerm
	}

	return chat.Response{
		Message:      fmt.Sprintf(tmplSearchFound, searchTerm, maxPriceSuffix(priceRange)),
		Type:         chat.ResponseTypeProduct,
		Products:     firstN(filtered, MaxProductsShown),
		ShowViewMore: len(filtered) > MaxProductsShown,
		Category:     category,
	}
}

// respondCart summarizes the caller's cart, or recommends products when
// it is empty. The summary is text only, no product list.
func (uc *implUseCase) respondCart(ctx context.Context, cart []model.CartItem) chat.Response {
	if len(cart) == 0 {
		recommendations := uc.recommended(ctx)
		return chat.Response{
			Message:      MsgEmptyCart,
			Type:         chat.ResponseTypeProduct,
			Products:     recommendations,
			ShowViewMore: len(recommendations) > MaxProductsShown,
		}
	}

	var total float64
	for _, item := range cart {
		total += item.Product.Price * float64(item.Quantity)
	}

	return chat.Response{
		Message: fmt.Sprintf(tmplCartSummary, len(cart), formatAmount(total)),
		Type:    chat.ResponseTypeCart,
	}
}

// respondRecommend returns the recommendation fallback regardless of
// cart state.
func (uc *implUseCase) respondRecommend(ctx context.Context) chat.Response {
	recommendations := uc.recommended(ctx)
	return chat.Response{
		Message:      MsgRecommendations,
		Type:         chat.ResponseTypeProduct,
		Products:     recommendations,
		ShowViewMore: len(recommendations) > MaxProductsShown,
	}
}
