package models

import (
	"encoding/json"
	"fmt"
)

// EntryData is the payload attached to a history entry. Each page declares
// its payload type explicitly; pages without one carry nil.
type EntryData interface {
	entryData()
}

// ResetPasswordParams is the payload of the resetPassword page, taken from
// a password-reset deep link.
type ResetPasswordParams struct {
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

func (ResetPasswordParams) entryData() {}

// ListingRef is the payload of the listingDetail page: a reference to the
// selected property.
type ListingRef struct {
	PropertyID string `json:"propertyId"`
}

func (ListingRef) entryData() {}

// HistoryEntry is one visited (page, data) state. Entries are immutable;
// navigation always produces a new entry.
type HistoryEntry struct {
	Page Page
	Data EntryData
}

type historyEntryJSON struct {
	Page Page            `json:"page"`
	Data json.RawMessage `json:"data"`
}

func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	if e.Data != nil {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		raw = data
	} else {
		raw = json.RawMessage("null")
	}
	return json.Marshal(historyEntryJSON{Page: e.Page, Data: raw})
}

// UnmarshalJSON decodes the tagged union: the page identifier selects the
// payload type. Unknown pages or a payload on a payload-less page are errors,
// so corrupt persisted history fails loudly and gets discarded wholesale.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var env historyEntryJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.Page.Valid() {
		return fmt.Errorf("unknown page %q", env.Page)
	}

	e.Page = env.Page
	e.Data = nil

	hasPayload := len(env.Data) > 0 && string(env.Data) != "null"

	switch env.Page {
	case PageResetPassword:
		if !hasPayload {
			return fmt.Errorf("page %q requires a payload", env.Page)
		}
		var p ResetPasswordParams
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return fmt.Errorf("decoding %q payload: %w", env.Page, err)
		}
		e.Data = p
	case PageListingDetail:
		if hasPayload {
			var p ListingRef
			if err := json.Unmarshal(env.Data, &p); err != nil {
				return fmt.Errorf("decoding %q payload: %w", env.Page, err)
			}
			e.Data = p
		}
	default:
		if hasPayload {
			return fmt.Errorf("page %q does not carry a payload", env.Page)
		}
	}
	return nil
}
