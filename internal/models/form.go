// internal/models/form.go
package models

// FormState is the UI-shaped credit application record. Every user-editable
// attribute is carried as a string until mapping time; absence of a value is
// an empty string, never a missing key.
type FormState struct {
	// Applicant
	ApplicantID       string `json:"identificacion"`
	ApplicantName     string `json:"nombre"`
	ApplicationNumber string `json:"numeroSolicitud"`
	CreditType        string `json:"tipoCredito"`

	// Credit terms
	RequestedAmount   string `json:"valorSolicitado"`
	LineLimit         string `json:"cupoLinea"`
	TermMonths        string `json:"plazo"`
	Rate              string `json:"tasa"`
	InsuranceRate     string `json:"tasaSeguro"`
	PaymentMethod     string `json:"formaPago"`
	Frequency         string `json:"frecuencia"`
	FirstPaymentDate  string `json:"fechaPrimerPago"`
	InstallmentMode   string `json:"modalidadCuota"`
	CreditLine        string `json:"linea"`
	CollectionCharges string `json:"valorCobros"`
	PayrollEntity     string `json:"pagaduria"`

	// Risk analysis blocks
	Cifin          RiskBlock      `json:"cifin"`
	DataCredito    RiskBlock      `json:"datacredito"`
	EntityBehavior EntityBehavior `json:"comportamientoEntidad"`

	// Co-signers
	CoSigners CoSigners `json:"codeudores"`

	// Collateral
	Collateral Collateral `json:"garantias"`

	// Amortization configuration
	AmortizationSystem string `json:"tipoSistemaAmortizacion"`
	CreditDestination  string `json:"codDestinoCredito"`
	AdministrationFee  string `json:"cuotaAdministracion"`

	// Audit fields required by the backend
	Detail   string `json:"detalle"`
	User     string `json:"usuario"`
	Terminal string `json:"terminal"`
}

// RiskBlock holds one bureau's risk-scoring snapshot.
type RiskBlock struct {
	LastUpdate             string `json:"fechaActualizacion"`
	Score                  string `json:"scoring"`
	HighDefaultProbability bool   `json:"probabilidadMora"`
}

// EntityBehavior is the in-house behavior block; unlike the bureau blocks it
// also tracks open legal proceedings.
type EntityBehavior struct {
	LastUpdate             string `json:"fechaActualizacion"`
	LegalProceedings       int    `json:"procesosJuridicos"`
	Score                  string `json:"scoring"`
	HighDefaultProbability bool   `json:"probabilidadMora"`
}

type CoSigners struct {
	First  CoSigner `json:"codeudor1"`
	Second CoSigner `json:"codeudor2"`
}

// CoSigner is a secondary obligor; only its identification reaches the wire
// payload, the rest is kept for the analyst's review.
type CoSigner struct {
	Identification string `json:"identificacion"`
	Name           string `json:"nombre"`
	Phone          string `json:"telefono"`
	Email          string `json:"email"`
	Income         string `json:"ingresos"`
	NetWorth       string `json:"patrimonio"`
}

type Collateral struct {
	GuaranteeClass string `json:"codClaseGarantia"`
	Value          string `json:"valor"`
	Description    string `json:"descripcionGarantia"`
	PolicyNumber   string `json:"numeroPoliza"`
	Appraiser      string `json:"encargadoEvaluarGarantia"`
}

// SampleForm returns a fully populated form snapshot. Every attribute has a
// default value at creation; callers overlay their own data on top of it.
func SampleForm() *FormState {
	return &FormState{
		ApplicantID:       "60337388",
		ApplicantName:     "CONTRERAS GELVES PATRICIA",
		ApplicationNumber: "SOL-2025-001",
		CreditType:        "C08 ORDINARIO CON LIBRANZA",

		RequestedAmount:   "1000000",
		LineLimit:         "40000000",
		TermMonths:        "12",
		Rate:              "14.4",
		InsuranceRate:     "0.5",
		PaymentMethod:     "Nomina",
		Frequency:         "Mensual",
		FirstPaymentDate:  "2025-09-01",
		InstallmentMode:   "Vencida",
		CreditLine:        "001",
		CollectionCharges: "0",
		PayrollEntity:     "ENTIDAD_PUBLICA",

		Cifin: RiskBlock{
			LastUpdate:             "2025-07-16",
			Score:                  "908",
			HighDefaultProbability: false,
		},
		DataCredito: RiskBlock{
			LastUpdate:             "2025-07-16",
			Score:                  "850",
			HighDefaultProbability: false,
		},
		EntityBehavior: EntityBehavior{
			LastUpdate:             "2025-07-16",
			LegalProceedings:       0,
			Score:                  "920",
			HighDefaultProbability: false,
		},

		CoSigners: CoSigners{
			First: CoSigner{
				Identification: "12345678",
				Name:           "GARCÍA LÓPEZ MARÍA JOSÉ",
				Phone:          "3001234567",
				Email:          "maria.garcia@email.com",
				Income:         "2500000",
				NetWorth:       "15000000",
			},
			Second: CoSigner{
				Identification: "87654321",
				Name:           "RODRÍGUEZ PÉREZ CARLOS ANDRÉS",
				Phone:          "3109876543",
				Email:          "carlos.rodriguez@email.com",
				Income:         "3200000",
				NetWorth:       "25000000",
			},
		},

		Collateral: Collateral{
			GuaranteeClass: "HIP",
			Value:          "50000000",
			Description:    "Vivienda ubicada en Bogotá, Zona Norte",
			PolicyNumber:   "POL-2025-123456",
			Appraiser:      "ANALISTA SENIOR",
		},

		AmortizationSystem: "FRANCES",
		CreditDestination:  "001",
		AdministrationFee:  "15000",

		Detail:   "Solicitud de crédito ordinario con libranza para compra de vivienda",
		User:     "SISTEMA",
		Terminal: "WEB001",
	}
}
