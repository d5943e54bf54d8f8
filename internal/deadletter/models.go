package deadletter

import (
	"time"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionMint Direction = "mint"
	DirectionBurn Direction = "burn"
)

// Transaction is a bridge mint or burn parked for manual review. It moves from
// created to reviewed to resolved and never leaves the resolved state.
type Transaction struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement"`
	AccountID         string          `gorm:"size:64;not null;index"`
	TransactionHash   string          `gorm:"size:128;not null;uniqueIndex"`
	Chain             string          `gorm:"size:32;not null"`
	Direction         Direction       `gorm:"size:8;not null"`
	NumUnits          int64           `gorm:"not null"`
	Amount            decimal.Decimal `gorm:"type:varchar(80);not null"`
	OriginalAttempts  int             `gorm:"not null"`
	LastError         string          `gorm:"type:text"`
	FailedAt          time.Time       `gorm:"not null"`
	NeedsManualReview bool            `gorm:"not null;index:idx_dead_letter_status,priority:2"`
	ReviewedBy        string          `gorm:"size:64"`
	ReviewedAt        *time.Time
	ReviewNotes       string `gorm:"type:text"`
	IsResolved        bool   `gorm:"not null;index:idx_dead_letter_status,priority:1"`
	ResolvedAt        *time.Time
	ResolvedBy        string         `gorm:"size:64"`
	Honored           bool           `gorm:"not null;default:false"`
	OriginalMeta      map[string]any `gorm:"type:text;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Transaction) TableName() string {
	return "dead_letter_transactions"
}

// Failure is one report of a bridge transaction that exhausted its retries.
type Failure struct {
	AccountID       string
	TransactionHash string
	Chain           string
	Direction       Direction
	NumUnits        int64
	Amount          decimal.Decimal
	Attempts        int
	Error           string
	Meta            map[string]any
}

func (f Failure) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.AccountID, validation.Required),
		validation.Field(&f.TransactionHash, validation.Required),
		validation.Field(&f.Chain, validation.Required),
		validation.Field(&f.Direction, validation.Required, validation.In(DirectionMint, DirectionBurn)),
		validation.Field(&f.NumUnits, validation.Required, validation.Min(int64(1))),
		validation.Field(&f.Attempts, validation.Min(0)),
		validation.Field(&f.Error, validation.Required),
	)
}

type Review struct {
	By    string
	Notes string
}

func (r Review) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.By, validation.Required),
	)
}
