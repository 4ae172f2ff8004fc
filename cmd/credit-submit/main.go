// cmd/credit-submit/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"aqueron-credit/internal/common/config"
	apperrors "aqueron-credit/internal/common/errors"
	"aqueron-credit/internal/common/logger"
	"aqueron-credit/internal/finance"
	"aqueron-credit/internal/mapping"
	"aqueron-credit/internal/models"
	"aqueron-credit/internal/submission"
	"aqueron-credit/internal/validation"
)

func main() {
	formPath := flag.String("form", "", "path to a form snapshot JSON file (default: built-in sample)")
	dryRun := flag.Bool("dry-run", false, "map and validate but do not contact the backend")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", apperrors.NewInvalidConfigError(err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	form, err := loadForm(*formPath)
	if err != nil {
		log.Error("failed to load form snapshot", zap.Error(err))
		os.Exit(1)
	}

	mapper := mapping.NewMapper()
	req := mapper.ToRequest(form)

	fmt.Printf("Solicitante: %s (%s)\n", form.ApplicantName, form.ApplicantID)
	fmt.Printf("Valor solicitado: %s a %d meses\n", finance.FormatCurrencyString(form.RequestedAmount), req.Plazo)
	fmt.Printf("Cuota estimada: %s\n", finance.FormatCurrency(req.ValorCuota))

	result := validation.Validate(req)
	if !result.Valid {
		log.Error("validation failed",
			zap.Error(apperrors.NewValidationFailedError(fmt.Sprintf("%d rule violations", len(result.Errors)))))
		fmt.Fprintln(os.Stderr, "Errores de validación:")
		for _, msg := range result.Messages() {
			fmt.Fprintf(os.Stderr, "  - %s\n", msg)
		}
		os.Exit(1)
	}

	if err := validation.CheckWireSchema(req); err != nil {
		log.Warn("payload failed wire-schema check", zap.Error(err))
	}

	if *dryRun {
		fmt.Println("Validación exitosa (dry run, no se envió la solicitud)")
		return
	}

	client := submission.New(cfg.Backend, nil, logger.NewZapAdapter(log))

	// Single-shot process: the one-outstanding-submission rule holds by
	// construction, the process exits before a second dispatch is possible.
	outcome := client.Submit(context.Background(), req)

	if outcome.Success {
		fmt.Printf("¡Solicitud enviada exitosamente! %s\n", outcome.Message)
		if outcome.IDReferencia != "" {
			fmt.Printf("ID de referencia: %s\n", outcome.IDReferencia)
		}
		if outcome.Timestamp != "" {
			fmt.Printf("Fecha: %s\n", outcome.Timestamp)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "Error al enviar la solicitud: %s\n", outcome.Message)
	os.Exit(1)
}

// loadForm reads a form snapshot; fields missing from the file keep the
// sample defaults, matching the rule that absence is an empty value, never
// a missing key.
func loadForm(path string) (*models.FormState, error) {
	form := models.SampleForm()
	if path == "" {
		return form, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	if err := json.Unmarshal(data, form); err != nil {
		return nil, fmt.Errorf("failed to parse form file: %w", err)
	}
	return form, nil
}
