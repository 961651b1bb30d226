package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/internal/model"
	"ecoshop-assistant/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	sendFn func(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error)
}

func (m *mockUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
	return m.sendFn(ctx, sc, input)
}

func performSend(t *testing.T, uc chat.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(&mockLogger{}, uc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SendMessage(c)
	return w
}

func TestSendMessage_OK(t *testing.T) {
	var gotScope model.Scope
	uc := &mockUseCase{
		sendFn: func(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
			gotScope = sc
			return chat.Response{Message: "hello there", Type: chat.ResponseTypeText}, nil
		},
	}

	w := performSend(t, uc, `{"user_id":"u-1","message":"hi"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotScope.UserID != "u-1" {
		t.Errorf("expected scope user u-1, got %q", gotScope.UserID)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	if data["message"] != "hello there" {
		t.Errorf("unexpected message %v", data["message"])
	}
	if data["type"] != string(chat.ResponseTypeText) {
		t.Errorf("unexpected type %v", data["type"])
	}
	if data["id"] == "" {
		t.Errorf("expected generated message id")
	}
}

func TestSendMessage_DefaultsUserID(t *testing.T) {
	var gotScope model.Scope
	uc := &mockUseCase{
		sendFn: func(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
			gotScope = sc
			return chat.Response{Message: "ok", Type: chat.ResponseTypeText}, nil
		},
	}

	w := performSend(t, uc, `{"message":"hi"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotScope.UserID != DefaultUserID {
		t.Errorf("expected default user id, got %q", gotScope.UserID)
	}
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	uc := &mockUseCase{
		sendFn: func(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
			t.Fatal("usecase should not be called for an empty message")
			return chat.Response{}, nil
		},
	}

	w := performSend(t, uc, `{"user_id":"u-1","message":""}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSendMessage_UseCaseFailureIsDisplayable(t *testing.T) {
	uc := &mockUseCase{
		sendFn: func(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.Response, error) {
			return chat.Response{}, errors.New("catalog exploded")
		},
	}

	w := performSend(t, uc, `{"user_id":"u-1","message":"show me shirts"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with displayable error, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	data := resp.Data.(map[string]any)
	if data["message"] != ProcessingErrorMessage {
		t.Errorf("expected processing error message, got %v", data["message"])
	}
	if data["type"] != string(chat.ResponseTypeError) {
		t.Errorf("expected error type, got %v", data["type"])
	}
}
