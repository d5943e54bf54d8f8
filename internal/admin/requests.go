package admin

import (
	"errors"
	"regexp"
	"time"

	"coinledger/internal/ledger"

	"github.com/jellydator/validation"
)

const maxPageSize = 500

var hashPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

type ReviewRequest struct {
	TransactionHash string `json:"transactionHash"`
	Notes           string `json:"notes"`
}

func (r ReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionHash, validation.Required, validation.Match(hashPattern)),
		validation.Field(&r.Notes, validation.Required, validation.Length(1, 2000)),
	)
}

type ResolveRequest struct {
	TransactionHash string `json:"transactionHash"`
	Honor           bool   `json:"honor"`
}

func (r ResolveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionHash, validation.Required, validation.Match(hashPattern)),
	)
}

type HistoryRequest struct {
	AccountID string             `json:"accountId"`
	Types     []ledger.EntryType `json:"types"`
	From      time.Time          `json:"from"`
	To        time.Time          `json:"to"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

func (r HistoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Types, validation.Each(validation.By(knownEntryType))),
		validation.Field(&r.To, validation.When(!r.From.IsZero() && !r.To.IsZero(),
			validation.Min(r.From).Error("must not be before from"))),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(maxPageSize)),
		validation.Field(&r.Offset, validation.Min(0)),
	)
}

func knownEntryType(value interface{}) error {
	t, ok := value.(ledger.EntryType)
	if !ok || !t.Valid() {
		return errors.New("unknown entry type")
	}
	return nil
}

func (r HistoryRequest) filter() ledger.HistoryFilter {
	return ledger.HistoryFilter{
		AccountID: r.AccountID,
		Types:     r.Types,
		From:      r.From,
		To:        r.To,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}
