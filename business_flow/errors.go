// Package businessflow contains the core business logic and use cases for configuration workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Catalog lookup errors
	ErrTemplateNotFound     = errors.New("fixture template not found")
	ErrTemplateInactive     = errors.New("fixture template is inactive")
	ErrTapeOfferingNotFound = errors.New("tape offering not found")
	ErrTapeOfferingInactive = errors.New("tape offering is inactive")
	ErrTapeNotAllowed       = errors.New("tape offering is not allowed for template")
	ErrOptionNotAllowed     = errors.New("option is not allowed for template")
	ErrOptionNotFound       = errors.New("option attribute not found")
	ErrPricingClassNotFound = errors.New("pricing class not found")

	// Engine errors
	ErrLengthBelowMinimum = errors.New("requested length is below the minimum manufacturable length")
	ErrNoEligibleDriver   = errors.New("no eligible driver can serve the configuration")
	ErrMissingItemMapping = errors.New("no item mapping exists for selection")
	ErrQtyInvalid         = errors.New("quantity must be at least 1")
	ErrTapeSpecInvalid    = errors.New("tape spec carries data the engine cannot compute on")

	// Configuration errors
	ErrConfigurationNotFound     = errors.New("configuration not found")
	ErrArtifactsAlreadyGenerated = errors.New("manufacturing artifacts already generated")

	ErrCacheNotAvailable = errors.New("cache not available")
)

// LengthBelowMinimumError carries the smallest requested length that would
// yield at least one full cut increment of tape.
type LengthBelowMinimumError struct {
	RequestedMM float64
	MinimumMM   float64
}

func (e *LengthBelowMinimumError) Error() string {
	return fmt.Sprintf("requested length %.1fmm is below minimum %.1fmm", e.RequestedMM, e.MinimumMM)
}

func (e *LengthBelowMinimumError) Unwrap() error {
	return ErrLengthBelowMinimum
}

// MissingMappingError identifies which mapping table has no row for the
// selection. The engine treats this as a hard failure, never a silent skip.
type MissingMappingError struct {
	MapName string
	Keys    map[string]string
}

func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("missing %s mapping for %v", e.MapName, e.Keys)
}

func (e *MissingMappingError) Unwrap() error {
	return ErrMissingItemMapping
}

// InvalidTapeSpecError flags catalog data that would poison the electrical
// math, like a non-positive watts-per-foot rating.
type InvalidTapeSpecError struct {
	SpecCode   string
	WattsPerFt float64
}

func (e *InvalidTapeSpecError) Error() string {
	return fmt.Sprintf("tape spec %q has non-positive watts per foot %.2f", e.SpecCode, e.WattsPerFt)
}

func (e *InvalidTapeSpecError) Unwrap() error {
	return ErrTapeSpecInvalid
}

// NoEligibleDriverError reports the electrical requirements no driver satisfied.
type NoEligibleDriverError struct {
	OutputVoltage   float64
	DimmingProtocol string
	TotalWatts      float64
}

func (e *NoEligibleDriverError) Error() string {
	return fmt.Sprintf("no eligible driver for %.0fV %s load %.2fW", e.OutputVoltage, e.DimmingProtocol, e.TotalWatts)
}

func (e *NoEligibleDriverError) Unwrap() error {
	return ErrNoEligibleDriver
}

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}

func IsTemplateInactive(err error) bool {
	return errors.Is(err, ErrTemplateInactive)
}

func IsTapeOfferingNotFound(err error) bool {
	return errors.Is(err, ErrTapeOfferingNotFound)
}

func IsTapeNotAllowed(err error) bool {
	return errors.Is(err, ErrTapeNotAllowed)
}

func IsOptionNotAllowed(err error) bool {
	return errors.Is(err, ErrOptionNotAllowed)
}

func IsLengthBelowMinimum(err error) bool {
	return errors.Is(err, ErrLengthBelowMinimum)
}

func IsNoEligibleDriver(err error) bool {
	return errors.Is(err, ErrNoEligibleDriver)
}

func IsMissingItemMapping(err error) bool {
	return errors.Is(err, ErrMissingItemMapping)
}

func IsConfigurationNotFound(err error) bool {
	return errors.Is(err, ErrConfigurationNotFound)
}

func IsArtifactsAlreadyGenerated(err error) bool {
	return errors.Is(err, ErrArtifactsAlreadyGenerated)
}

func IsQtyInvalid(err error) bool {
	return errors.Is(err, ErrQtyInvalid)
}

func IsTapeSpecInvalid(err error) bool {
	return errors.Is(err, ErrTapeSpecInvalid)
}
