package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/internal/model"
	"ecoshop-assistant/pkg/gemini"
)

var actionBlockPattern = regexp.MustCompile(`(?s)\{.*?\}`)

// actionBlock is the structured action the model may embed in a reply.
type actionBlock struct {
	Action string `json:"action"`
}

// askAssistant delegates an open-ended question to the generative API with
// the fixed EcoShop context prompt and a bounded wait. Every failure mode
// maps to a fixed displayable string; nothing propagates to the caller.
func (uc *implUseCase) askAssistant(ctx context.Context, message string, cartItems int) chat.Response {
	genCtx, cancel := context.WithTimeout(ctx, uc.genTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(genCtx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildAssistantPrompt(message, cartItems)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     gemini.AssistantTemperature,
			TopP:            gemini.AssistantTopP,
			MaxOutputTokens: gemini.AssistantMaxOutputTokens,
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			uc.l.Warnf(ctx, "%s: generative call timed out", LogPrefixGenerate)
			return chat.Response{Message: MsgGenerativeTimeout, Type: chat.ResponseTypeText}
		}
		uc.l.Errorf(ctx, "%s: generative call failed: %v", LogPrefixGenerate, err)
		return chat.Response{Message: MsgAssistantFallback, Type: chat.ResponseTypeText}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return chat.Response{Message: MsgGenerativeEmpty, Type: chat.ResponseTypeText}
	}

	// The model may hand control back to category navigation through an
	// embedded action object. Parse it structurally and strip it from the
	// display text.
	if action, remainder, ok := extractActionBlock(text); ok && action.Action == showCategoriesAction {
		msg := remainder
		if msg == "" {
			msg = MsgCategoriesFallback
		}
		return chat.Response{
			Message:    msg,
			Type:       chat.ResponseTypeCategories,
			Categories: model.Categories,
		}
	}

	return chat.Response{Message: text, Type: chat.ResponseTypeText}
}

// extractActionBlock finds the first JSON object embedded in model output,
// parses it as an action, and returns the text with the block removed.
func extractActionBlock(text string) (actionBlock, string, bool) {
	match := actionBlockPattern.FindString(text)
	if match == "" {
		return actionBlock{}, text, false
	}

	var action actionBlock
	if err := json.Unmarshal([]byte(match), &action); err != nil {
		return actionBlock{}, text, false
	}

	remainder := strings.TrimSpace(strings.Replace(text, match, "", 1))
	return action, remainder, true
}
