package clabe

import (
	"io"
	"log/slog"

	"github.com/olgasafonova/clabe-mcp-server/metrics"
)

// Service wraps the CLABE functions with logging and metrics for the MCP layer.
type Service struct {
	logger *slog.Logger
}

// Option configures the Service
type Option func(*Service)

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a new CLABE service
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate validates candidate and records the outcome.
func (s *Service) Validate(candidate any) (ValidationResult, error) {
	res, err := ValidateValue(candidate)
	if err != nil {
		metrics.ArgumentTypeErrors.Inc()
		s.logger.Warn("Validate called with non-string argument", "error", err)
		return ValidationResult{}, err
	}
	metrics.RecordValidation(string(res.Kind))
	s.logger.Debug("Validated CLABE",
		"ok", res.OK,
		"error_kind", res.Kind,
		"bank_code", res.BankCode,
		"city_code", res.CityCode,
	)
	return res, nil
}

// Calculate builds a CLABE and records the outcome.
func (s *Service) Calculate(bankCode, cityCode int, account string) (string, error) {
	number, err := Calculate(bankCode, cityCode, account)
	metrics.RecordCalculation(err == nil)
	if err != nil {
		s.logger.Debug("Calculate rejected input", "error", err)
		return "", err
	}
	return number, nil
}
