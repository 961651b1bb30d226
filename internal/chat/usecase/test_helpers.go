package usecase

import (
	"context"

	"ecoshop-assistant/internal/model"
)

// Mock logger for testing
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

// Mock product repository with overridable behaviors
type mockProductRepo struct {
	searchFunc     func(query string) ([]model.Product, error)
	byCategoryFunc func(category string) ([]model.Product, error)
	allFunc        func() ([]model.Product, error)
}

func (m *mockProductRepo) Search(ctx context.Context, query string) ([]model.Product, error) {
	if m.searchFunc != nil {
		return m.searchFunc(query)
	}
	return []model.Product{}, nil
}

func (m *mockProductRepo) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if m.byCategoryFunc != nil {
		return m.byCategoryFunc(category)
	}
	return []model.Product{}, nil
}

func (m *mockProductRepo) All(ctx context.Context) ([]model.Product, error) {
	if m.allFunc != nil {
		return m.allFunc()
	}
	return []model.Product{}, nil
}
