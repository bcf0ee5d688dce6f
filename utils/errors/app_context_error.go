package errors

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeRateLimit    = "RATE_LIMIT_ERROR"
	CodeExternalAPI  = "EXTERNAL_API_ERROR"
	CodeTimeout      = "TIMEOUT_ERROR"
	CodeDatabase     = "DATABASE_ERROR"
	CodeUnknown      = "UNKNOWN_ERROR"
)

type codeInfo struct {
	status    int
	retryable bool
	// public codes may show their context map to API clients.
	public bool
}

var codes = map[string]codeInfo{
	CodeValidation:   {status: http.StatusBadRequest, public: true},
	CodeNotFound:     {status: http.StatusNotFound, public: true},
	CodeConflict:     {status: http.StatusConflict, public: true},
	CodeUnauthorized: {status: http.StatusUnauthorized},
	CodeForbidden:    {status: http.StatusForbidden},
	CodeRateLimit:    {status: http.StatusTooManyRequests, retryable: true},
	CodeExternalAPI:  {status: http.StatusBadGateway, retryable: true},
	CodeTimeout:      {status: http.StatusGatewayTimeout, retryable: true},
}

func lookup(code string) codeInfo {
	if info, ok := codes[code]; ok {
		return info
	}
	return codeInfo{status: http.StatusInternalServerError}
}

// AppContextError carries a client-facing code and message together with the
// layer, component and operation where the failure was classified.
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	msg := e.Code + ": " + e.Message
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		msg = fmt.Sprintf("[%s:%s:%s] %s", e.Layer, e.Component, e.Operation, msg)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

func (e *AppContextError) HTTPStatusCode() int {
	return lookup(e.Code).status
}

func (e *AppContextError) IsRetryable() bool {
	return lookup(e.Code).retryable
}

// HTTPContextResponse is the JSON error body returned by the REST layer.
type HTTPContextResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// ToHTTPResponse drops layer names, and the context of non-public codes.
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	resp := HTTPContextResponse{Error: "error", Code: e.Code, Message: e.Message}
	if lookup(e.Code).public {
		resp.Context = e.Context
	}
	return resp
}

func NewAppContextError(code, message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	if context == nil {
		context = map[string]any{}
	}
	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext returns a copy of err located at a new layer, with extra
// merged over its context. err itself is not modified.
func EnrichWithContext(err *AppContextError, layer, component, operation string, extra map[string]any) *AppContextError {
	merged := maps.Clone(err.Context)
	if merged == nil {
		merged = map[string]any{}
	}
	maps.Copy(merged, extra)
	return NewAppContextError(err.Code, err.Message, layer, component, operation, err.Cause, merged)
}

var sentinelCodes = []struct {
	target  error
	code    string
	message string
}{
	{ErrNotFound, CodeNotFound, "resource not found"},
	{ErrConflict, CodeConflict, "resource already exists"},
	{ErrInvalidInput, CodeValidation, ""},
	{ErrUnauthorized, CodeUnauthorized, "unauthorized"},
	{ErrForbidden, CodeForbidden, "forbidden"},
	{ErrRateLimitExceeded, CodeRateLimit, "rate limit exceeded"},
	{ErrOperationTimeout, CodeTimeout, "operation timed out"},
	{ErrExternalServiceUnavailable, CodeExternalAPI, "upstream service failed"},
	{ErrProviderOutputInvalid, CodeExternalAPI, "upstream service failed"},
	{ErrDatabaseUnavailable, CodeDatabase, "database unavailable"},
}

// Classify turns any error into an AppContextError. An AppContextError in the
// chain is returned unchanged; otherwise the first matching sentinel picks the
// code. Validation errors keep their own message.
func Classify(err error, layer, component, operation string) *AppContextError {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.target) {
			message := s.message
			if message == "" {
				message = err.Error()
			}
			return NewAppContextError(s.code, message, layer, component, operation, err, nil)
		}
	}
	return NewAppContextError(CodeUnknown, "internal server error", layer, component, operation, err, nil)
}

func NewNotFoundContextError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, ErrNotFound, context)
}

// NewExternalAPIContextError tags context["error_type"] so logs can group upstream failures.
func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	err := NewAppContextError(CodeExternalAPI, message, layer, component, operation, cause, context)
	err.Context["error_type"] = "external_api"
	return err
}
