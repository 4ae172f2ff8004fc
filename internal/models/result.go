// internal/models/result.go
package models

import "encoding/json"

// SubmissionResult is the uniform outcome of one submission attempt.
// Constructed once per attempt and discarded after being shown to the user;
// every failure class (validation, backend rejection, transport) funnels
// into this same shape.
type SubmissionResult struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Timestamp    string          `json:"timestamp,omitempty"`
	IDReferencia string          `json:"id_referencia,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
}
