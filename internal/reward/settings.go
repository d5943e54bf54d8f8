package reward

import (
	"strings"
	"time"

	"github.com/jellydator/validation"
)

const settingsRowID = 1

type TagReward struct {
	Tag    string `json:"tag" yaml:"tag"`
	Reward int64  `json:"reward" yaml:"reward"`
}

// TagTable is keyed by distinct tag. Lookups ignore case and the leading sigil.
type TagTable []TagReward

func (t TagTable) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, row := range t {
		err := validation.ValidateStruct(&t[i],
			validation.Field(&t[i].Tag, validation.Required, validation.By(nonBlankTag)),
			validation.Field(&t[i].Reward, validation.Min(int64(0))),
		)
		if err != nil {
			return err
		}
		key := normalizeTag(row.Tag)
		if _, ok := seen[key]; ok {
			return validation.NewError("validation_duplicate_tag", "tag "+key+" is listed twice")
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Settings is the single reward configuration document. Every change bumps Version.
type Settings struct {
	ID      uint  `gorm:"primaryKey" json:"-" yaml:"-"`
	Version int64 `gorm:"not null" json:"version" yaml:"-"`

	Like         int64 `gorm:"not null;default:0" json:"like" yaml:"like"`
	Bookmark     int64 `gorm:"not null;default:0" json:"bookmark" yaml:"bookmark"`
	Quote        int64 `gorm:"not null;default:0" json:"quote" yaml:"quote"`
	Repost       int64 `gorm:"not null;default:0" json:"repost" yaml:"repost"`
	Reply        int64 `gorm:"not null;default:0" json:"reply" yaml:"reply"`
	Follow       int64 `gorm:"not null;default:0" json:"follow" yaml:"follow"`
	Notification int64 `gorm:"not null;default:0" json:"notification" yaml:"notification"`

	Mentions TagTable `gorm:"type:text;serializer:json" json:"mentions" yaml:"mentions"`
	Hashtags TagTable `gorm:"type:text;serializer:json" json:"hashtags" yaml:"hashtags"`
	Cashtags TagTable `gorm:"type:text;serializer:json" json:"cashtags" yaml:"cashtags"`

	DailyLimit   int64 `gorm:"not null;default:0" json:"dailyLimit" yaml:"dailyLimit"`
	ReplyLimit   int64 `gorm:"not null;default:0" json:"replyLimit" yaml:"replyLimit"`
	MaxThreads   int64 `gorm:"not null;default:0" json:"maxThreads" yaml:"maxThreads"`
	MaxMainPosts int64 `gorm:"not null;default:0" json:"maxMainPosts" yaml:"maxMainPosts"`

	RewardStartDate     *time.Time `json:"rewardStartDate,omitempty" yaml:"rewardStartDate"`
	WhitelistedTweetIDs []string   `gorm:"type:text;serializer:json" json:"whitelistedTweetIds" yaml:"whitelistedTweetIds"`

	UpdatedBy string    `gorm:"size:64" json:"updatedBy" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

func (Settings) TableName() string {
	return "reward_settings"
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Like, validation.Min(int64(0))),
		validation.Field(&s.Bookmark, validation.Min(int64(0))),
		validation.Field(&s.Quote, validation.Min(int64(0))),
		validation.Field(&s.Repost, validation.Min(int64(0))),
		validation.Field(&s.Reply, validation.Min(int64(0))),
		validation.Field(&s.Follow, validation.Min(int64(0))),
		validation.Field(&s.Notification, validation.Min(int64(0))),
		validation.Field(&s.Mentions),
		validation.Field(&s.Hashtags),
		validation.Field(&s.Cashtags),
		validation.Field(&s.DailyLimit, validation.Min(int64(0))),
		validation.Field(&s.ReplyLimit, validation.Min(int64(0))),
		validation.Field(&s.MaxThreads, validation.Min(int64(0))),
		validation.Field(&s.MaxMainPosts, validation.Min(int64(0))),
		validation.Field(&s.WhitelistedTweetIDs, validation.Each(validation.Required)),
	)
}

func (s Settings) whitelisted(contentID string) bool {
	for _, id := range s.WhitelistedTweetIDs {
		if id == contentID {
			return true
		}
	}
	return false
}

func (s Settings) table(kind TagKind) TagTable {
	switch kind {
	case TagMention:
		return s.Mentions
	case TagHashtag:
		return s.Hashtags
	case TagCashtag:
		return s.Cashtags
	}
	return nil
}

func (s Settings) fixedAmount(action Action) int64 {
	switch action {
	case ActionLike:
		return s.Like
	case ActionBookmark:
		return s.Bookmark
	case ActionQuote:
		return s.Quote
	case ActionRepost:
		return s.Repost
	case ActionReply:
		return s.Reply
	case ActionFollow:
		return s.Follow
	case ActionNotification:
		return s.Notification
	}
	return 0
}

// SettingsPatch changes only the fields that are set. ClearRewardStartDate removes the cutoff.
type SettingsPatch struct {
	Like         *int64 `json:"like,omitempty"`
	Bookmark     *int64 `json:"bookmark,omitempty"`
	Quote        *int64 `json:"quote,omitempty"`
	Repost       *int64 `json:"repost,omitempty"`
	Reply        *int64 `json:"reply,omitempty"`
	Follow       *int64 `json:"follow,omitempty"`
	Notification *int64 `json:"notification,omitempty"`

	Mentions *TagTable `json:"mentions,omitempty"`
	Hashtags *TagTable `json:"hashtags,omitempty"`
	Cashtags *TagTable `json:"cashtags,omitempty"`

	DailyLimit   *int64 `json:"dailyLimit,omitempty"`
	ReplyLimit   *int64 `json:"replyLimit,omitempty"`
	MaxThreads   *int64 `json:"maxThreads,omitempty"`
	MaxMainPosts *int64 `json:"maxMainPosts,omitempty"`

	RewardStartDate      *time.Time `json:"rewardStartDate,omitempty"`
	ClearRewardStartDate bool       `json:"clearRewardStartDate,omitempty"`
	WhitelistedTweetIDs  *[]string  `json:"whitelistedTweetIds,omitempty"`
}

func (p SettingsPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.RewardStartDate, validation.When(p.ClearRewardStartDate,
			validation.Nil.Error("cannot set and clear the start date together"))),
	)
}

func (p SettingsPatch) Empty() bool {
	return p == SettingsPatch{}
}

// Apply returns s with the patch applied. s is not modified.
func (p SettingsPatch) Apply(s Settings) Settings {
	set := func(dst *int64, v *int64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.Like, p.Like)
	set(&s.Bookmark, p.Bookmark)
	set(&s.Quote, p.Quote)
	set(&s.Repost, p.Repost)
	set(&s.Reply, p.Reply)
	set(&s.Follow, p.Follow)
	set(&s.Notification, p.Notification)
	set(&s.DailyLimit, p.DailyLimit)
	set(&s.ReplyLimit, p.ReplyLimit)
	set(&s.MaxThreads, p.MaxThreads)
	set(&s.MaxMainPosts, p.MaxMainPosts)

	if p.Mentions != nil {
		s.Mentions = append(TagTable(nil), *p.Mentions...)
	}
	if p.Hashtags != nil {
		s.Hashtags = append(TagTable(nil), *p.Hashtags...)
	}
	if p.Cashtags != nil {
		s.Cashtags = append(TagTable(nil), *p.Cashtags...)
	}
	if p.WhitelistedTweetIDs != nil {
		s.WhitelistedTweetIDs = append([]string(nil), *p.WhitelistedTweetIDs...)
	}

	switch {
	case p.ClearRewardStartDate:
		s.RewardStartDate = nil
	case p.RewardStartDate != nil:
		start := p.RewardStartDate.UTC()
		s.RewardStartDate = &start
	}

	return s
}

// SettingsRevision is the audit trail of settings changes.
type SettingsRevision struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Version   int64     `gorm:"not null;uniqueIndex"`
	ChangedBy string    `gorm:"size:64;not null"`
	Patch     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SettingsRevision) TableName() string {
	return "reward_settings_revisions"
}

func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimLeft(tag, "@#$")
	return strings.ToLower(tag)
}

func nonBlankTag(value any) error {
	tag, _ := value.(string)
	if normalizeTag(tag) == "" {
		return validation.NewError("validation_blank_tag", "tag must not be only a sigil")
	}
	return nil
}
