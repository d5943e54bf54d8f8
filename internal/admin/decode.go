package admin

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jellydator/validation"
)

// DecodeAndValidate reads one JSON document into object, rejecting unknown
// fields, and validates it when it implements validation.Validatable.
func DecodeAndValidate(r io.Reader, object any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("%w: decoding json payload: %w", ErrInvalidRequest, err)
	}

	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: validating payload: %w", ErrInvalidRequest, err)
	}
	return nil
}
