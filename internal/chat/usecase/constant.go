package usecase

import "time"

// Log prefixes
const (
	LogPrefixSend      = "internal.chat.usecase.Send"
	LogPrefixRecommend = "internal.chat.usecase.recommended"
	LogPrefixGenerate  = "internal.chat.usecase.askAssistant"
)

const (
	// MaxProductsShown caps any product list handed back to the UI.
	MaxProductsShown = 6

	// RecommendRatingFloor is the exclusive rating threshold for the
	// recommendation fallback.
	RecommendRatingFloor = 4.0

	// DefaultGenerativeTimeout bounds the wait on the generative call.
	DefaultGenerativeTimeout = 10 * time.Second
)

// Fixed user-facing literals. These are part of the contract with the UI
// and with tests; change them only deliberately.
const (
	MsgGenerativeTimeout = "I'm taking a bit longer than usual to respond. Could you please try again?"

	MsgGenerativeEmpty = "I apologize, but I couldn't process that request. How else can I help you?"

	MsgAssistantFallback = "I'm here to help you with shopping on EcoShop! You can ask about our products, features, or how to use the platform. What would you like to know?"

	MsgEmptyCart = "Your cart is empty. Here are some popular products you might like:"

	MsgRecommendations = "Here are some recommended products based on popularity and ratings:"

	MsgCategoriesFallback = "Sorry, I couldn't find what you were looking for. Here are all categories:"
)

// Message templates for the product search branch.
const (
	tmplSearchEmpty = `I couldn't find any products matching %q%s. Here are some recommended products you might like:`
	tmplSearchFound = `Here are the products matching %q%s:`
	tmplCartSummary = `You have %d item(s) in your cart, totaling ₹%s. Would you like to checkout?`
)

// showCategoriesAction is the structured action the generative model may
// embed in its reply to hand control back to category navigation.
const showCategoriesAction = "show_categories"
