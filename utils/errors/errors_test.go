package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppContextError_Error(t *testing.T) {
	err := NewAppContextError(CodeDatabase, "insert failed", "driver", "hub_db", "CreateFeed",
		errors.New("connection reset"), nil)

	assert.Equal(t, "[driver:hub_db:CreateFeed] DATABASE_ERROR: insert failed (caused by: connection reset)", err.Error())
	assert.NotNil(t, err.Context)
}

func TestAppContextError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeExternalAPI, http.StatusBadGateway},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeDatabase, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppContextError{Code: tt.code}
			assert.Equal(t, tt.want, err.HTTPStatusCode())
		})
	}
}

func TestAppContextError_ToHTTPResponseHidesInternals(t *testing.T) {
	err := NewAppContextError(CodeDatabase, "query failed", "driver", "hub_db", "ListFeeds", errors.New("pq: boom"),
		map[string]any{"sql": "SELECT 1"})

	resp := err.ToHTTPResponse()
	assert.Equal(t, CodeDatabase, resp.Code)
	assert.Nil(t, resp.Context)

	validation := NewAppContextError(CodeValidation, "url is required", "rest", "feeds", "CreateFeed", ErrInvalidInput,
		map[string]any{"field": "url"})
	assert.Equal(t, "url", validation.ToHTTPResponse().Context["field"])
}

func TestEnrichWithContext(t *testing.T) {
	base := NewAppContextError(CodeNotFound, "feed not found", "gateway", "feed_gateway", "GetFeed",
		ErrNotFound, map[string]any{"feed_id": "f1"})

	enriched := EnrichWithContext(base, "rest", "feed_handler", "GetFeed", map[string]any{"request_id": "r1"})

	assert.Equal(t, "rest", enriched.Layer)
	assert.Equal(t, "f1", enriched.Context["feed_id"])
	assert.Equal(t, "r1", enriched.Context["request_id"])
	assert.True(t, IsNotFound(enriched))
	_, stillThere := base.Context["request_id"]
	assert.False(t, stillThere)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"not found", fmt.Errorf("get feed: %w", ErrNotFound), CodeNotFound},
		{"conflict", fmt.Errorf("create project: %w", ErrConflict), CodeConflict},
		{"validation", fmt.Errorf("interval too short: %w", ErrInvalidInput), CodeValidation},
		{"provider output", fmt.Errorf("quiz: %w", ErrProviderOutputInvalid), CodeExternalAPI},
		{"timeout", ErrOperationTimeout, CodeTimeout},
		{"database", fmt.Errorf("ping: %w", ErrDatabaseUnavailable), CodeDatabase},
		{"plain", errors.New("boom"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "rest", "test", "op")
			assert.Equal(t, tt.wantCode, got.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	existing := NewNotFoundContextError("no such feed", "usecase", "x", "y", nil)
	assert.Same(t, existing, Classify(fmt.Errorf("wrapped: %w", existing), "rest", "a", "b"))
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(fmt.Errorf("call: %w", ErrExternalServiceUnavailable)))
	assert.True(t, IsRetryableError(NewExternalAPIContextError("x", "driver", "genai", "Generate", nil, nil)))
	assert.True(t, IsRetryableError(ErrProviderOutputInvalid))
	assert.False(t, IsRetryableError(ErrInvalidInput))
	assert.False(t, IsRetryableError(nil))
}

func TestClassify_ValidationKeepsMessage(t *testing.T) {
	err := Classify(fmt.Errorf("interval_minutes below 5: %w", ErrInvalidInput), "rest", "feeds", "CreateFeed")
	assert.Equal(t, "interval_minutes below 5: invalid input", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode())
}

func TestNewExternalAPIContextError_TagsType(t *testing.T) {
	err := NewExternalAPIContextError("search down", "gateway", "search_gateway", "Search", nil, nil)
	assert.Equal(t, "external_api", err.Context["error_type"])
	assert.True(t, err.IsRetryable())
}
