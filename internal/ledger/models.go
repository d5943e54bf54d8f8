package ledger

import "time"

type EntryType string

const (
	EntryMint           EntryType = "mint"
	EntryBurn           EntryType = "burn"
	EntryReward         EntryType = "reward"
	EntryAdminTransfer  EntryType = "adminTransfer"
	EntryUserTransfer   EntryType = "userTransfer"
	EntryNestCoin       EntryType = "nestCoin"
	EntryGiveawayGlobal EntryType = "giveawayGlobal"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryMint, EntryBurn, EntryReward, EntryAdminTransfer,
		EntryUserTransfer, EntryNestCoin, EntryGiveawayGlobal:
		return true
	}
	return false
}

// Account balances are a cache of the ledger. They are only ever changed by ApplyEntry.
type Account struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Balance   int64     `gorm:"not null;default:0"`
	IsSystem  bool      `gorm:"not null;default:false"`
	Version   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Entry is one immutable row of the append-only ledger. A nil account side is
// the outside world: mints have no debit, burns have no credit.
type Entry struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	DebitAccountID  *string   `gorm:"size:64;index:idx_ledger_debit_created,priority:1"`
	CreditAccountID *string   `gorm:"size:64;index:idx_ledger_credit_created,priority:1"`
	Amount          int64     `gorm:"not null;check:chk_ledger_amount_positive,amount > 0"`
	Type            EntryType `gorm:"size:32;not null;index"`
	Subtype         string    `gorm:"size:32;index"`
	Reference       string    `gorm:"size:191;index"`
	ParentRef       string    `gorm:"size:191;index"`
	Meta            Meta      `gorm:"type:text;serializer:json"`
	CreatedAt       time.Time `gorm:"not null;index:idx_ledger_debit_created,priority:2;index:idx_ledger_credit_created,priority:2"`
}

func (Entry) TableName() string {
	return "ledger_entries"
}

// EntryRequest describes one value movement. An empty account id stands for the external side.
type EntryRequest struct {
	DebitAccountID  string
	CreditAccountID string
	Amount          int64
	Type            EntryType
	Meta            Meta
}

type HistoryFilter struct {
	AccountID string
	Types     []EntryType
	From      time.Time
	To        time.Time
	Limit     int
	Offset    int
}

// ReferenceQuery selects entries credited to one account for cap derivation.
type ReferenceQuery struct {
	Type            EntryType
	CreditAccountID string
	Subtype         string
	ParentRef       string
	From            time.Time
	To              time.Time
}

// Discrepancy is an account whose cached balance disagrees with its ledger history.
type Discrepancy struct {
	AccountID string
	Balance   int64
	Derived   int64
}

func optional(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
