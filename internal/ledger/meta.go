package ledger

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

type MetaKind string

const (
	MetaNone     MetaKind = ""
	MetaReward   MetaKind = "reward"
	MetaBridge   MetaKind = "bridge"
	MetaTransfer MetaKind = "transfer"
	MetaTreasury MetaKind = "treasury"
)

type RewardMeta struct {
	Action    string `json:"action"`
	TagKind   string `json:"tagKind,omitempty"`
	Tag       string `json:"tag,omitempty"`
	ContentID string `json:"contentId"`
	ThreadID  string `json:"threadId,omitempty"`
}

type BridgeMeta struct {
	Chain           string `json:"chain"`
	TransactionHash string `json:"transactionHash"`
	Direction       string `json:"direction"`
	ChainAmount     string `json:"chainAmount,omitempty"`
}

type TransferMeta struct {
	Reference   string `json:"reference,omitempty"`
	Note        string `json:"note,omitempty"`
	InitiatedBy string `json:"initiatedBy,omitempty"`
}

type TreasuryMeta struct {
	Reason string `json:"reason,omitempty"`
}

// Meta annotates an entry. At most one variant is set; keys that no variant
// knows about survive a round trip through Extra.
type Meta struct {
	Reward   *RewardMeta
	Bridge   *BridgeMeta
	Transfer *TransferMeta
	Treasury *TreasuryMeta
	Extra    map[string]any
}

func (m Meta) Kind() MetaKind {
	switch {
	case m.Reward != nil:
		return MetaReward
	case m.Bridge != nil:
		return MetaBridge
	case m.Transfer != nil:
		return MetaTransfer
	case m.Treasury != nil:
		return MetaTreasury
	}
	return MetaNone
}

func (m Meta) variant() any {
	switch m.Kind() {
	case MetaReward:
		return m.Reward
	case MetaBridge:
		return m.Bridge
	case MetaTransfer:
		return m.Transfer
	case MetaTreasury:
		return m.Treasury
	}
	return nil
}

// index projects the meta onto the indexed entry columns.
func (m Meta) index() (subtype, reference, parent string) {
	switch m.Kind() {
	case MetaReward:
		return m.Reward.Action, m.Reward.Action + ":" + m.Reward.ContentID, m.Reward.ThreadID
	case MetaBridge:
		return m.Bridge.Direction, m.Bridge.Chain + ":" + m.Bridge.TransactionHash, ""
	case MetaTransfer:
		return "transfer", m.Transfer.Reference, ""
	case MetaTreasury:
		return m.Treasury.Reason, "", ""
	}
	return "", "", ""
}

func (m Meta) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+8)
	for k, v := range m.Extra {
		out[k] = v
	}

	kind := m.Kind()
	if _, ok := out["kind"]; !ok || kind != MetaNone {
		out["kind"] = string(kind)
	}
	if v := m.variant(); v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %s meta: %w", kind, err)
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("flatten %s meta: %w", kind, err)
		}
		for k, v := range fields {
			out[k] = v
		}
	}

	return json.Marshal(out)
}

func (m *Meta) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode meta: %w", err)
	}

	var kind MetaKind
	if raw, ok := fields["kind"]; ok {
		if err := json.Unmarshal(raw, &kind); err != nil {
			return fmt.Errorf("decode meta kind: %w", err)
		}
	}
	delete(fields, "kind")

	*m = Meta{}
	var target any
	switch kind {
	case MetaReward:
		m.Reward = &RewardMeta{}
		target = m.Reward
	case MetaBridge:
		m.Bridge = &BridgeMeta{}
		target = m.Bridge
	case MetaTransfer:
		m.Transfer = &TransferMeta{}
		target = m.Transfer
	case MetaTreasury:
		m.Treasury = &TreasuryMeta{}
		target = m.Treasury
	case MetaNone:
	default:
		// unknown kinds keep their marker so the entry can be re-encoded unchanged
		fields["kind"], _ = json.Marshal(kind)
	}

	if target != nil {
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("decode %s meta: %w", kind, err)
		}
		for _, key := range jsonKeys(target) {
			delete(fields, key)
		}
	}

	if len(fields) > 0 {
		m.Extra = make(map[string]any, len(fields))
		for k, raw := range fields {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("decode meta field %q: %w", k, err)
			}
			m.Extra[k] = v
		}
	}

	return nil
}

func jsonKeys(v any) []string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}
