package bridge

import (
	"errors"

	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEvent   = errors.New("invalid bridge event")
	ErrAlreadySettled = errors.New("bridge transaction already settled")
)

type Outcome string

const (
	OutcomeNone         Outcome = ""
	OutcomeSettled      Outcome = "settled"
	OutcomeDeadLettered Outcome = "dead_lettered"
	OutcomeDuplicate    Outcome = "duplicate"
)

// Event is a mint or burn observed on an external chain. NumUnits is the
// ledger amount; Amount is the chain-denominated value.
type Event struct {
	AccountID       string               `json:"accountId"`
	TransactionHash string               `json:"transactionHash"`
	Chain           string               `json:"chain"`
	Direction       deadletter.Direction `json:"direction"`
	NumUnits        int64                `json:"numUnits"`
	Amount          decimal.Decimal      `json:"amount"`
	Attempts        int                  `json:"attempts,omitempty"`
	Error           string               `json:"error,omitempty"`
	Meta            map[string]any       `json:"meta,omitempty"`
}

func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.AccountID, validation.Required),
		validation.Field(&e.TransactionHash, validation.Required),
		validation.Field(&e.Chain, validation.Required),
		validation.Field(&e.Direction, validation.Required,
			validation.In(deadletter.DirectionMint, deadletter.DirectionBurn)),
		validation.Field(&e.NumUnits, validation.Required, validation.Min(int64(1))),
		validation.Field(&e.Attempts, validation.Min(0)),
	)
}

func (e Event) reference() string {
	return e.Chain + ":" + e.TransactionHash
}

func (e Event) meta() ledger.Meta {
	return ledger.Meta{Bridge: &ledger.BridgeMeta{
		Chain:           e.Chain,
		TransactionHash: e.TransactionHash,
		Direction:       string(e.Direction),
		ChainAmount:     e.Amount.String(),
	}}
}

func (e Event) failure(attempts int, err error) deadletter.Failure {
	return deadletter.Failure{
		AccountID:       e.AccountID,
		TransactionHash: e.TransactionHash,
		Chain:           e.Chain,
		Direction:       e.Direction,
		NumUnits:        e.NumUnits,
		Amount:          e.Amount,
		Attempts:        attempts,
		Error:           err.Error(),
		Meta:            e.Meta,
	}
}

func eventFromDeadLetter(t deadletter.Transaction) Event {
	return Event{
		AccountID:       t.AccountID,
		TransactionHash: t.TransactionHash,
		Chain:           t.Chain,
		Direction:       t.Direction,
		NumUnits:        t.NumUnits,
		Amount:          t.Amount,
		Meta:            t.OriginalMeta,
	}
}
