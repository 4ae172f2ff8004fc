package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodCode(t *testing.T) {
	assert.Equal(t, 1, PaymentMethodCode("Nomina"))
	assert.Equal(t, 2, PaymentMethodCode("Caja"))
	assert.Equal(t, 3, PaymentMethodCode("Transferencia"))
	assert.Equal(t, DefaultPaymentMethodCode, PaymentMethodCode(""))
	assert.Equal(t, DefaultPaymentMethodCode, PaymentMethodCode("Cheque"))
}

func TestFrequencyCode(t *testing.T) {
	assert.Equal(t, 1, FrequencyCode("Mensual"))
	assert.Equal(t, 2, FrequencyCode("Quincenal"))
	assert.Equal(t, 3, FrequencyCode("Semanal"))
	assert.Equal(t, DefaultFrequencyCode, FrequencyCode(""))
	assert.Equal(t, DefaultFrequencyCode, FrequencyCode("Diaria"))
}

func TestGuaranteeClassCode(t *testing.T) {
	assert.Equal(t, 1, GuaranteeClassCode("HIP"))
	assert.Equal(t, 2, GuaranteeClassCode("PRE"))
	assert.Equal(t, 3, GuaranteeClassCode("FID"))
	assert.Equal(t, 4, GuaranteeClassCode("PER"))

	// legacy alias
	assert.Equal(t, 1, GuaranteeClassCode("001"))

	// unknown input maps to the default code, never panics
	assert.Equal(t, DefaultGuaranteeClassCode, GuaranteeClassCode("XYZ"))
	assert.Equal(t, DefaultGuaranteeClassCode, GuaranteeClassCode(""))
}

func TestAmortizationSystemCode(t *testing.T) {
	assert.Equal(t, 1, AmortizationSystemCode("FRANCES"))
	assert.Equal(t, 2, AmortizationSystemCode("ALEMAN"))
	assert.Equal(t, 3, AmortizationSystemCode("AMERICANO"))
	assert.Equal(t, 1, AmortizationSystemCode("FRA"))
	assert.Equal(t, DefaultAmortizationSystemCode, AmortizationSystemCode("INGLES"))
}

func TestInstallmentModeFlag(t *testing.T) {
	assert.Equal(t, "F", InstallmentModeFlag("Vencida"))
	assert.Equal(t, "A", InstallmentModeFlag("Anticipada"))
	assert.Equal(t, DefaultInstallmentModeFlag, InstallmentModeFlag(""))
	assert.Equal(t, DefaultInstallmentModeFlag, InstallmentModeFlag("Mixta"))
}
