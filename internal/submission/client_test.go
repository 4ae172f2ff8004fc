package submission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aqueron-credit/internal/common/config"
	"aqueron-credit/internal/common/logger"
	"aqueron-credit/internal/mapping"
	"aqueron-credit/internal/models"

	"github.com/stretchr/testify/assert"
)

func testRequest() *models.CreditApplicationRequest {
	clock := func() time.Time { return time.Date(2025, 7, 16, 10, 30, 0, 0, time.UTC) }
	return mapping.NewMapperWithClock(clock).ToRequest(models.SampleForm())
}

func newTestClient(backendURL string) *Client {
	cfg := config.BackendConfig{
		BaseURL:    backendURL,
		SubmitPath: "/solicitud-credito",
		Timeout:    5,
	}
	return New(cfg, nil, logger.NewNoOpLogger())
}

func TestSubmit_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/solicitud-credito", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "Solicitud radicada", "id_referencia": "REF-001", "timestamp": "2025-07-16T10:30:05Z"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.True(t, result.Success)
	assert.Equal(t, "Solicitud radicada", result.Message)
	assert.Equal(t, "REF-001", result.IDReferencia)
	assert.Equal(t, "2025-07-16T10:30:05Z", result.Timestamp)
}

func TestSubmit_EmptyBodyDefaultsToSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	// absent success flag on a 2xx counts as success
	assert.True(t, result.Success)
	assert.Equal(t, "Solicitud procesada exitosamente", result.Message)
	assert.Empty(t, result.IDReferencia)
}

func TestSubmit_LiteralFalseSuccessFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "solicitud duplicada"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "solicitud duplicada", result.Message)
}

func TestSubmit_ServerErrorWithMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "db error"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "db error", result.Message)
}

func TestSubmit_ServerErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "Error HTTP: 502 - Bad Gateway", result.Message)
}

func TestSubmit_ErrorTimestampPropagated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "ya existe", "timestamp": "2025-07-16T11:00:00Z"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "ya existe", result.Message)
	assert.Equal(t, "2025-07-16T11:00:00Z", result.Timestamp)
}

func TestSubmit_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error de conexión")
}

func TestSubmit_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error de conexión")
}

func TestSubmit_SingleOutboundCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message": "mantenimiento"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Submit(context.Background(), testRequest())

	// a failed submission is not retried; the user must resubmit
	assert.False(t, result.Success)
	assert.Equal(t, 1, calls)
}
