package reward

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"coinledger/internal/db"
	"coinledger/internal/ledger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var ErrEmptyPatch = errors.New("settings patch changes nothing")

// SettingsStore keeps the reward settings document and its revision history.
// Writes go through the coordinator so readers never see a half-applied patch.
type SettingsStore struct {
	logs        *zap.SugaredLogger
	db          *db.Database
	coordinator *db.Coordinator
	now         func() time.Time
}

func NewSettingsStore(logger *zap.SugaredLogger, coordinator *db.Coordinator) *SettingsStore {
	return &SettingsStore{
		logs:        logger,
		db:          coordinator.Database(),
		coordinator: coordinator,
		now:         time.Now,
	}
}

// Current returns a point-in-time snapshot of the settings.
func (s *SettingsStore) Current(ctx context.Context, sess *db.Session) (Settings, error) {
	var settings Settings
	err := s.db.Conn(ctx, sess).Where("id = ?", settingsRowID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Settings{}, fmt.Errorf("reward settings: %w", ledger.ErrRecordNotFound)
		}
		return Settings{}, fmt.Errorf("get reward settings: %w", err)
	}
	return settings, nil
}

// Seed stores the initial document unless one already exists, and returns the stored document.
func (s *SettingsStore) Seed(ctx context.Context, initial Settings, by string) (Settings, error) {
	if err := initial.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate seed settings: %w", err)
	}

	return db.RunInTransaction(ctx, s.coordinator, nil, func(tx *db.Session) (Settings, error) {
		current, err := s.Current(ctx, tx)
		if err == nil {
			return current, nil
		}
		if !errors.Is(err, ledger.ErrRecordNotFound) {
			return Settings{}, err
		}

		initial.ID = settingsRowID
		initial.Version = 1
		initial.UpdatedBy = by
		initial.UpdatedAt = s.now().UTC()
		if err := tx.DB(ctx).Create(&initial).Error; err != nil {
			return Settings{}, fmt.Errorf("create reward settings: %w", err)
		}
		if err := s.appendRevision(ctx, tx, initial, by, initial); err != nil {
			return Settings{}, err
		}

		s.logs.Infow("seeded reward settings", "by", by)
		return initial, nil
	})
}

// Patch applies p on top of the current document, bumps the version and
// records the change in the revision history, all in one unit of work.
func (s *SettingsStore) Patch(ctx context.Context, by string, p SettingsPatch) (Settings, error) {
	if p.Empty() {
		return Settings{}, ErrEmptyPatch
	}
	if err := p.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate settings patch: %w", err)
	}

	return db.RunInTransaction(ctx, s.coordinator, nil, func(tx *db.Session) (Settings, error) {
		current, err := s.Current(ctx, tx)
		if err != nil {
			return Settings{}, err
		}

		next := p.Apply(current)
		if err := next.Validate(); err != nil {
			return Settings{}, fmt.Errorf("validate patched settings: %w", err)
		}
		next.Version = current.Version + 1
		next.UpdatedBy = by
		next.UpdatedAt = s.now().UTC()

		res := tx.DB(ctx).Model(&Settings{}).
			Where("id = ? AND version = ?", settingsRowID, current.Version).
			Select("*").
			Updates(&next)
		if res.Error != nil {
			return Settings{}, fmt.Errorf("update reward settings: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return Settings{}, fmt.Errorf("reward settings version %d: %w", current.Version, db.ErrWriteConflict)
		}

		if err := s.appendRevision(ctx, tx, next, by, p); err != nil {
			return Settings{}, err
		}

		s.logs.Infow("patched reward settings", "by", by, "version", next.Version)
		return next, nil
	})
}

// Revisions lists the audit trail, newest first.
func (s *SettingsStore) Revisions(ctx context.Context, limit int) ([]SettingsRevision, error) {
	revisions := []SettingsRevision{}
	err := s.db.Conn(ctx, nil).Order("version DESC").Limit(limit).Find(&revisions).Error
	if err != nil {
		return nil, fmt.Errorf("list settings revisions: %w", err)
	}
	return revisions, nil
}

func (s *SettingsStore) appendRevision(ctx context.Context, tx *db.Session, settings Settings, by string, change any) error {
	raw, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode settings change: %w", err)
	}

	revision := SettingsRevision{
		ID:        uuid.NewString(),
		Version:   settings.Version,
		ChangedBy: by,
		Patch:     string(raw),
		CreatedAt: settings.UpdatedAt,
	}
	if err := tx.DB(ctx).Create(&revision).Error; err != nil {
		return fmt.Errorf("append settings revision: %w", err)
	}
	return nil
}

// LoadSeedFile reads a settings document from a YAML file.
func LoadSeedFile(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings seed: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings seed: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate settings seed: %w", err)
	}
	return settings, nil
}
