// internal/mapping/mapper.go
package mapping

import (
	"strconv"
	"strings"
	"time"

	"aqueron-credit/internal/finance"
	"aqueron-credit/internal/models"
)

// WireTimeLayout is the backend's datetime format: ISO 8601 truncated to
// whole seconds, no offset, no fractional part.
const WireTimeLayout = "2006-01-02T15:04:05"

const formDateLayout = "2006-01-02"

// Backend fixed-width column limits.
const (
	maxLinea       = 3
	maxDetalle     = 254
	maxUsuario     = 10
	maxTerminal    = 15
	maxDescripcion = 254
	maxEncargado   = 20
	maxModalidad   = 20
	maxPoliza      = 50
)

// newApplicationFlag marks completo/aprobado/impreso on every new
// application. This is a fixed business rule, not user input: the backend
// sets these later in the credit lifecycle.
const newApplicationFlag = "N"

// Mapper converts a UI-shaped FormState snapshot into the backend wire
// record. The conversion is pure and total: it never fails, substituting
// documented defaults for anything it cannot parse. The clock is injected
// so tests can pin the two time-dependent fields.
type Mapper struct {
	now func() time.Time
}

func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// NewMapperWithClock builds a mapper with a fixed clock; used by tests to
// assert byte-identical payloads.
func NewMapperWithClock(now func() time.Time) *Mapper {
	return &Mapper{now: now}
}

// ToRequest produces a new, independent wire record from a read-only form
// snapshot. Calling it twice on the same snapshot under the same clock
// yields identical payloads.
func (m *Mapper) ToRequest(form *models.FormState) *models.CreditApplicationRequest {
	nowWire := m.now().Format(WireTimeLayout)

	requested := parseAmount(form.RequestedAmount)
	rate := parseAmount(form.Rate)
	term := parseCount(form.TermMonths, 0)

	// The derived installment never comes from user input. A missing term
	// still produces a finite installment (term falls back to 1).
	installmentTerm := term
	if installmentTerm <= 0 {
		installmentTerm = 1
	}

	return &models.CreditApplicationRequest{
		Nit:             parseID(form.ApplicantID),
		ValorSolicitado: requested,
		Plazo:           term,
		Tasa:            rate,
		Linea:           truncate(defaultString(form.CreditLine, "001"), maxLinea),
		ValorCobros:     parseAmount(form.CollectionCharges),
		Pagaduria:       parseCount(form.PayrollEntity, 1),

		Codeudor1: parseID(form.CoSigners.First.Identification),
		Codeudor2: parseID(form.CoSigners.Second.Identification),

		ValorCuota: finance.MonthlyPayment(requested, rate, installmentTerm),

		Completo:  newApplicationFlag,
		Aprobado:  newApplicationFlag,
		Detalle:   truncate(defaultString(form.Detail, "Solicitud en evaluación"), maxDetalle),
		Devengado: 0,
		Deducido:  0,

		Fecha:           nowWire,
		Impreso:         newApplicationFlag,
		FechaPrimerPago: m.mapDate(form.FirstPaymentDate),

		FormaPago:  PaymentMethodCode(form.PaymentMethod),
		Frecuencia: FrequencyCode(form.Frequency),

		Usuario:  truncate(defaultString(form.User, "admin"), maxUsuario),
		Terminal: truncate(defaultString(form.Terminal, "TERM001"), maxTerminal),

		CodClaseGarantia:         GuaranteeClassCode(form.Collateral.GuaranteeClass),
		Valor:                    parseAmount(form.Collateral.Value),
		DescripcionGarantia:      truncate(form.Collateral.Description, maxDescripcion),
		EncargadoEvaluarGarantia: truncate(defaultString(form.Collateral.Appraiser, "evaluador1"), maxEncargado),

		TipoSistemaAmortizacion: AmortizationSystemCode(form.AmortizationSystem),
		CodDestinoCredito:       parseCount(form.CreditDestination, 101),
		ModalidadCuota:          truncate(InstallmentModeFlag(form.InstallmentMode), maxModalidad),
		NumeroPoliza:            truncate(form.Collateral.PolicyNumber, maxPoliza),
		TasaSeguro:              parseAmount(form.InsuranceRate),
		CuotaAdministracion:     parseAmount(form.AdministrationFee),
	}
}

// mapDate converts a form date ("2006-01-02") to the wire datetime at
// midnight; an absent or unparseable date becomes the mapper's "now".
func (m *Mapper) mapDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return m.now().Format(WireTimeLayout)
	}
	if parsed, err := time.Parse(formDateLayout, value); err == nil {
		return parsed.Format(WireTimeLayout)
	}
	if parsed, err := time.Parse(WireTimeLayout, value); err == nil {
		return parsed.Format(WireTimeLayout)
	}
	return m.now().Format(WireTimeLayout)
}

func parseAmount(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseCount(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseID(value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
