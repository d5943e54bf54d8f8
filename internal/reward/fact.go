package reward

import (
	"errors"
	"time"

	"github.com/jellydator/validation"
)

var ErrInvalidFact = errors.New("invalid activity fact")

type Action string

const (
	ActionLike         Action = "like"
	ActionBookmark     Action = "bookmark"
	ActionQuote        Action = "quote"
	ActionRepost       Action = "repost"
	ActionReply        Action = "reply"
	ActionFollow       Action = "follow"
	ActionNotification Action = "notification"
	ActionMention      Action = "mention"
	ActionHashtag      Action = "hashtag"
	ActionCashtag      Action = "cashtag"
	// ActionPost is an original post; ActionThread continues a thread.
	ActionPost   Action = "post"
	ActionThread Action = "thread"
)

type TagKind string

const (
	TagMention TagKind = "mention"
	TagHashtag TagKind = "hashtag"
	TagCashtag TagKind = "cashtag"
)

// tagActions maps the tag-based actions to the only table they look at.
var tagActions = map[Action]TagKind{
	ActionMention: TagMention,
	ActionHashtag: TagHashtag,
	ActionCashtag: TagCashtag,
}

func (a Action) fixed() bool {
	switch a {
	case ActionLike, ActionBookmark, ActionQuote, ActionRepost,
		ActionReply, ActionFollow, ActionNotification:
		return true
	}
	return false
}

func (a Action) known() bool {
	_, tagged := tagActions[a]
	return a.fixed() || tagged || a == ActionPost || a == ActionThread
}

type Tag struct {
	Kind  TagKind `json:"kind"`
	Value string  `json:"value"`
}

// Fact is one validated social activity reported by the ingestion layer.
type Fact struct {
	ActorAccountID string    `json:"actorAccountId"`
	Action         Action    `json:"action"`
	Tags           []Tag     `json:"tags,omitempty"`
	ContentID      string    `json:"contentId"`
	ThreadID       string    `json:"threadId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func (f Fact) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ActorAccountID, validation.Required),
		validation.Field(&f.Action, validation.Required, validation.By(func(any) error {
			if !f.Action.known() {
				return validation.NewError("validation_unknown_action", "unknown action")
			}
			return nil
		})),
		validation.Field(&f.ContentID, validation.Required),
		validation.Field(&f.ThreadID, validation.When(f.Action == ActionReply || f.Action == ActionThread, validation.Required)),
		validation.Field(&f.OccurredAt, validation.Required),
		validation.Field(&f.Tags, validation.Each(validation.By(func(v any) error {
			tag, _ := v.(Tag)
			switch tag.Kind {
			case TagMention, TagHashtag, TagCashtag:
			default:
				return validation.NewError("validation_unknown_tag_kind", "unknown tag kind")
			}
			return validation.Validate(tag.Value, validation.Required)
		}))),
	)
}

// Key identifies the underlying external event for deduplication.
func (f Fact) Key() string {
	return f.ActorAccountID + ":" + string(f.Action) + ":" + f.ContentID
}
