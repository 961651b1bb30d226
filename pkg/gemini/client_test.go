package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecoshop-assistant/pkg/gemini"
)

func TestBuildAssistantPrompt(t *testing.T) {
	prompt := gemini.BuildAssistantPrompt("how do refunds work?", 3)

	if !strings.Contains(prompt, "You are EcoShop Assistant") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, `"how do refunds work?"`) {
		t.Errorf("prompt missing user question")
	}
	if !strings.Contains(prompt, "Cart items: 3") {
		t.Errorf("prompt missing cart item count")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		switch {
		case text == "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case text == "cause_hang":
			time.Sleep(200 * time.Millisecond)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Context Deadline Flow", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_hang"}}},
			},
		}

		_, err := client.GenerateContent(ctx, req)
		if err == nil {
			t.Fatalf("expected error from expired context")
		}
	})
}

func TestGenerateResponse_Text(t *testing.T) {
	empty := &gemini.GenerateResponse{}
	if empty.Text() != "" {
		t.Errorf("expected empty text for empty response")
	}

	resp := &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: "hi"}}}},
		},
	}
	if resp.Text() != "hi" {
		t.Errorf("unexpected text: %s", resp.Text())
	}
}
