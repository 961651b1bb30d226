package gemini

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Generation settings used for assistant replies.
const (
	AssistantTemperature     = 0.7
	AssistantTopP            = 0.95
	AssistantMaxOutputTokens = 1024
)
