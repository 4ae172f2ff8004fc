// internal/submission/client.go
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"aqueron-credit/internal/common/config"
	apperrors "aqueron-credit/internal/common/errors"
	"aqueron-credit/internal/common/httpclient"
	"aqueron-credit/internal/common/logger"
	"aqueron-credit/internal/common/metrics"
	"aqueron-credit/internal/models"

	"github.com/google/uuid"
)

const (
	outcomeAccepted  = "accepted"
	outcomeRejected  = "rejected"
	outcomeTransport = "transport_error"
)

// Doer is the transport dependency; *http.Client and the shared
// httpclient.Client both satisfy it, and tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits credit applications to the loan-origination backend.
// Construct one explicitly and pass it to callers; the URL is resolved once
// at construction. One Submit call means one outbound POST: no retries, no
// coalescing. Callers must not dispatch a second submission while one is in
// flight.
type Client struct {
	submitURL  string
	httpClient Doer
	logger     logger.Logger
}

func New(cfg config.BackendConfig, doer Doer, log logger.Logger) *Client {
	if doer == nil {
		doer = httpclient.New(cfg.TimeoutDuration())
	}
	return &Client{
		submitURL:  cfg.SubmitURL(),
		httpClient: doer,
		logger:     log.WithFields(map[string]interface{}{"component": "submission"}),
	}
}

// backendResponse is the backend's body shape on any status code; the
// backend returns structured JSON even on failure. Success is a *bool so a
// literal false is distinguishable from an absent flag: absence on a 2xx
// counts as success.
type backendResponse struct {
	Success      *bool           `json:"success"`
	Message      string          `json:"message"`
	Timestamp    string          `json:"timestamp"`
	IDReferencia string          `json:"id_referencia"`
	Data         json.RawMessage `json:"data"`
}

// Submit POSTs the payload and normalizes every outcome into a
// SubmissionResult: application-level rejections carry the server's
// message, transport and parse failures carry a connectivity message.
// The payload must already have passed validation.
func (c *Client) Submit(ctx context.Context, req *models.CreditApplicationRequest) models.SubmissionResult {
	attemptID := uuid.NewString()
	log := c.logger.WithFields(map[string]interface{}{
		"attemptId": attemptID,
		"nit":       req.Nit,
	})

	body, err := json.Marshal(req)
	if err != nil {
		return c.transportFailure(log, fmt.Errorf("failed to marshal payload: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewBuffer(body))
	if err != nil {
		return c.transportFailure(log, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", attemptID)

	log.Info("submitting credit application", map[string]interface{}{
		"url": c.submitURL,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.SubmissionDuration.WithLabelValues(outcomeTransport).Observe(time.Since(start).Seconds())
		return c.transportFailure(log, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SubmissionDuration.WithLabelValues(outcomeTransport).Observe(time.Since(start).Seconds())
		return c.transportFailure(log, fmt.Errorf("failed to read response body: %w", err))
	}

	// The backend returns structured JSON on every status code, so the body
	// is parsed before the status is judged.
	var backendResp backendResponse
	if err := json.Unmarshal(respBody, &backendResp); err != nil {
		metrics.SubmissionDuration.WithLabelValues(outcomeTransport).Observe(time.Since(start).Seconds())
		return c.transportFailure(log, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := backendResp.Message
		if message == "" {
			message = fmt.Sprintf("Error HTTP: %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		rejection := apperrors.NewBackendRejectedError(resp.StatusCode, message)
		log.Warn("backend rejected the application", map[string]interface{}{
			"code":    string(rejection.Code),
			"status":  resp.StatusCode,
			"message": message,
		})
		metrics.SubmissionsTotal.WithLabelValues(outcomeRejected).Inc()
		metrics.SubmissionDuration.WithLabelValues(outcomeRejected).Observe(time.Since(start).Seconds())
		return models.SubmissionResult{
			Success:   false,
			Message:   message,
			Timestamp: backendResp.Timestamp,
		}
	}

	// An absent success flag on a 2xx counts as success; only a literal
	// false from the server demotes the result.
	if backendResp.Success != nil && !*backendResp.Success {
		message := backendResp.Message
		if message == "" {
			message = "La solicitud fue rechazada por el backend"
		}
		log.Warn("backend reported failure on success status", map[string]interface{}{
			"status":  resp.StatusCode,
			"message": message,
		})
		metrics.SubmissionsTotal.WithLabelValues(outcomeRejected).Inc()
		metrics.SubmissionDuration.WithLabelValues(outcomeRejected).Observe(time.Since(start).Seconds())
		return models.SubmissionResult{
			Success:      false,
			Message:      message,
			Timestamp:    backendResp.Timestamp,
			IDReferencia: backendResp.IDReferencia,
		}
	}

	message := backendResp.Message
	if message == "" {
		message = "Solicitud procesada exitosamente"
	}
	log.Info("credit application accepted", map[string]interface{}{
		"idReferencia": backendResp.IDReferencia,
	})
	metrics.SubmissionsTotal.WithLabelValues(outcomeAccepted).Inc()
	metrics.SubmissionDuration.WithLabelValues(outcomeAccepted).Observe(time.Since(start).Seconds())

	return models.SubmissionResult{
		Success:      true,
		Message:      message,
		Timestamp:    backendResp.Timestamp,
		IDReferencia: backendResp.IDReferencia,
		Data:         backendResp.Data,
	}
}

func (c *Client) transportFailure(log logger.Logger, err error) models.SubmissionResult {
	failure := apperrors.NewTransportError(err)
	log.WithError(failure).Error("submission transport failure", map[string]interface{}{
		"details": failure.Details,
	})
	metrics.SubmissionsTotal.WithLabelValues(outcomeTransport).Inc()
	return models.SubmissionResult{
		Success: false,
		Message: fmt.Sprintf("Error de conexión: %v", err),
	}
}
