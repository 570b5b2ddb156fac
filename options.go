package vietqr

import "github.com/sirupsen/logrus"

// EncoderOption represents a functional option for encoder configuration
type EncoderOption func(*Encoder)

// WithRoutingTable sets the bank code table used to resolve BINs
func WithRoutingTable(rt *RoutingTable) EncoderOption {
	return func(e *Encoder) {
		if rt != nil {
			e.routing = rt
		}
	}
}

// WithLogger sets the logger for fallback and truncation events
func WithLogger(log logrus.FieldLogger) EncoderOption {
	return func(e *Encoder) {
		if log != nil {
			e.log = log
		}
	}
}

// Validation-related options
func WithValidationLevel(level ValidationLevel) EncoderOption {
	return func(e *Encoder) {
		e.validationLevel = level
	}
}

func WithStrictValidation() EncoderOption {
	return WithValidationLevel(ValidationStrict)
}

// WithCustomValidation adds rules on top of the strict set and enables
// strict validation.
func WithCustomValidation(rules ...ValidationRule) EncoderOption {
	return func(e *Encoder) {
		e.validationLevel = ValidationStrict
		v := StrictValidator()
		for _, rule := range rules {
			v.AddRule(rule)
		}
		e.validator = v
	}
}

// ProcessorOption defines a function signature for configuring a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of concurrent goroutines for the processor.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler sets a custom error handler for errors encountered during
// batch or stream processing.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}
