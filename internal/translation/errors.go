package translation

import (
	"errors"
	"fmt"
)

const (
	// OpDetect marks a failure during language detection.
	OpDetect = "detect"
	// OpTranslate marks a failure during translation.
	OpTranslate = "translate"
)

// ProviderError reports a failure at the external provider boundary. It is
// the only error kind the resolver returns for detect/translate faults, so
// callers can degrade it to a message or a per-row marker instead of
// aborting.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return "provider error"
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsProviderError reports whether err carries a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
