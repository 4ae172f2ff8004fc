// internal/validation/validate.go
package validation

import (
	"strings"

	"aqueron-credit/internal/common/metrics"
	"aqueron-credit/internal/models"
)

// FieldError describes one violated business rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the outcome of validating a wire payload before transmission.
// Errors preserves rule order; it is consumed immediately, never persisted.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// Validate checks the business rules a payload must satisfy before it may
// be submitted. Every rule is evaluated independently (no short-circuit)
// and every violation is reported, in rule order.
func Validate(req *models.CreditApplicationRequest) *Result {
	errors := []FieldError{}

	if req.Nit <= 0 {
		errors = append(errors, FieldError{
			Field:   "nit",
			Code:    "REQUIRED_POSITIVE",
			Message: "NIT es requerido y debe ser mayor a 0",
		})
	}

	if req.ValorSolicitado <= 0 {
		errors = append(errors, FieldError{
			Field:   "valor_solicitado",
			Code:    "REQUIRED_POSITIVE",
			Message: "Valor solicitado es requerido y debe ser mayor a 0",
		})
	}

	if req.Plazo <= 0 {
		errors = append(errors, FieldError{
			Field:   "plazo",
			Code:    "REQUIRED_POSITIVE",
			Message: "Plazo es requerido y debe ser mayor a 0",
		})
	}

	if req.Tasa <= 0 {
		errors = append(errors, FieldError{
			Field:   "tasa",
			Code:    "REQUIRED_POSITIVE",
			Message: "Tasa es requerida y debe ser mayor a 0",
		})
	}

	if strings.TrimSpace(req.Usuario) == "" {
		errors = append(errors, FieldError{
			Field:   "usuario",
			Code:    "REQUIRED",
			Message: "Usuario es requerido",
		})
	}

	if strings.TrimSpace(req.Terminal) == "" {
		errors = append(errors, FieldError{
			Field:   "terminal",
			Code:    "REQUIRED",
			Message: "Terminal es requerido",
		})
	}

	for _, fe := range errors {
		metrics.ValidationFailures.WithLabelValues(fe.Field).Inc()
	}

	return &Result{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// Messages returns the human-readable violation list in rule order.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}
