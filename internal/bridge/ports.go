package bridge

import (
	"context"

	"coinledger/internal/ethereum"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	Confirm(ctx context.Context, chain, hash string) (ethereum.Confirmation, error)
}
