package treasury

import (
	"github.com/jellydator/validation"
)

// EscrowLimits bounds a single mint or burn. They come from the environment and are never persisted.
type EscrowLimits struct {
	MaxMint int64
	MaxBurn int64
}

func (l EscrowLimits) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.MaxMint, validation.Required, validation.Min(int64(1))),
		validation.Field(&l.MaxBurn, validation.Required, validation.Min(int64(1))),
	)
}
