// internal/mapping/codes.go
package mapping

// Enumeration lookups between the form vocabulary and the backend's integer
// codes. Each is a total function: unknown or absent input falls back to the
// named default rather than failing, because the backend rejects unknown
// codes but tolerates the default.

// DefaultPaymentMethodCode is payroll deduction (Nomina).
const DefaultPaymentMethodCode = 1

// PaymentMethodCode maps the payment method to the backend code.
func PaymentMethodCode(method string) int {
	switch method {
	case "Nomina":
		return 1
	case "Caja":
		return 2
	case "Transferencia":
		return 3
	default:
		return DefaultPaymentMethodCode
	}
}

// DefaultFrequencyCode is monthly (Mensual).
const DefaultFrequencyCode = 1

// FrequencyCode maps the payment frequency to the backend code.
func FrequencyCode(frequency string) int {
	switch frequency {
	case "Mensual":
		return 1
	case "Quincenal":
		return 2
	case "Semanal":
		return 3
	default:
		return DefaultFrequencyCode
	}
}

// DefaultGuaranteeClassCode is mortgage (Hipotecaria).
const DefaultGuaranteeClassCode = 1

// GuaranteeClassCode maps the collateral class to the backend code.
// "001" is a legacy alias for the mortgage class still present in old forms.
func GuaranteeClassCode(class string) int {
	switch class {
	case "HIP", "001":
		return 1
	case "PRE":
		return 2
	case "FID":
		return 3
	case "PER":
		return 4
	default:
		return DefaultGuaranteeClassCode
	}
}

// DefaultAmortizationSystemCode is the French system.
const DefaultAmortizationSystemCode = 1

// AmortizationSystemCode maps the amortization schedule to the backend code.
// "FRA" is a legacy alias for the French system.
func AmortizationSystemCode(system string) int {
	switch system {
	case "FRANCES", "FRA":
		return 1
	case "ALEMAN":
		return 2
	case "AMERICANO":
		return 3
	default:
		return DefaultAmortizationSystemCode
	}
}

// DefaultInstallmentModeFlag marks installments due at period end (Vencida).
const DefaultInstallmentModeFlag = "F"

// InstallmentModeFlag maps the installment modality to the backend's
// single-character flag.
func InstallmentModeFlag(mode string) string {
	switch mode {
	case "Vencida":
		return "F"
	case "Anticipada":
		return "A"
	default:
		return DefaultInstallmentModeFlag
	}
}
