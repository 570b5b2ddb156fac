package vietqr

import (
	"fmt"
	"sync"
)

// ValidationRule defines the interface for a single validation rule.
type ValidationRule interface {
	Validate(field Field) error
	Name() string // Returns the name of the rule (e.g., "length")
}

// Validator runs a fixed set of rules over fields. It is safe for
// concurrent use.
type Validator struct {
	rules []ValidationRule
	mu    sync.RWMutex
}

// basicValidator enforces the TLV framing invariants only.
var basicValidator = NewValidator(TagRule{}, &LengthRule{MaxLength: MaxValueLen})

// NewValidator creates a validator with the given rules.
func NewValidator(rules ...ValidationRule) *Validator {
	v := &Validator{rules: make([]ValidationRule, 0, len(rules))}
	v.rules = append(v.rules, rules...)
	return v
}

// StrictValidator enforces framing plus single-byte content, so that the
// declared length always equals the character count seen by scanners.
func StrictValidator() *Validator {
	return NewValidator(TagRule{}, &LengthRule{MaxLength: MaxValueLen}, ASCIIRule{})
}

// AddRule appends a rule.
func (v *Validator) AddRule(rule ValidationRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = append(v.rules, rule)
}

// ValidateField validates a single field against all rules.
func (v *Validator) ValidateField(field Field) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, rule := range v.rules {
		if err := rule.Validate(field); err != nil {
			return &FieldError{
				Tag:  field.Tag,
				Rule: rule.Name(),
				Err:  err,
			}
		}
	}
	return nil
}

// Validate validates fields in order and returns the first error found.
func (v *Validator) Validate(fields ...Field) error {
	for _, f := range fields {
		if err := v.ValidateField(f); err != nil {
			return err
		}
	}
	return nil
}

// --- Validation Rule Implementations ---

// TagRule requires a tag of exactly two ASCII digits.
type TagRule struct{}

// Name returns the rule name.
func (TagRule) Name() string {
	return "tag"
}

// Validate checks the tag format.
func (TagRule) Validate(field Field) error {
	if len(field.Tag) != TagLen || !isASCIIDigits(field.Tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, field.Tag)
	}
	return nil
}

// LengthRule validates the value's byte length.
type LengthRule struct {
	MinLength int
	MaxLength int
}

// Name returns the rule name.
func (r *LengthRule) Name() string {
	return "length"
}

// Validate checks the value's length constraints.
func (r *LengthRule) Validate(field Field) error {
	length := len(field.Value)

	if r.MinLength > 0 && length < r.MinLength {
		return fmt.Errorf("length %d below minimum %d", length, r.MinLength)
	}

	if r.MaxLength > 0 && length > r.MaxLength {
		return fmt.Errorf("%w: %d bytes exceeds maximum %d", ErrValueTooLong, length, r.MaxLength)
	}

	return nil
}

// ASCIIRule rejects values containing bytes outside 7-bit ASCII.
type ASCIIRule struct{}

// Name returns the rule name.
func (ASCIIRule) Name() string {
	return "ascii"
}

// Validate checks for multi-byte content.
func (ASCIIRule) Validate(field Field) error {
	for i := 0; i < len(field.Value); i++ {
		if field.Value[i] >= 0x80 {
			return fmt.Errorf("%w: byte 0x%02X at position %d", ErrNonASCII, field.Value[i], i)
		}
	}
	return nil
}
