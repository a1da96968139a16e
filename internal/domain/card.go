package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Card is a single playable card as exchanged between server and client.
// Cards are passed by value so every holder owns its copy.
type Card struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCard creates a card with the given identity and text
func NewCard(id int, name, description string) Card {
	return Card{
		ID:          id,
		Name:        name,
		Description: description,
	}
}

// PlaceholderCard returns the card shown while a card is still being fetched
func PlaceholderCard() Card {
	return Card{
		ID:          PlaceholderCardID,
		Name:        PlaceholderCardName,
		Description: PlaceholderCardDescription,
	}
}

// IsPlaceholder reports whether c is the loading sentinel. A real card that
// happens to use the sentinel id is not a placeholder.
func (c Card) IsPlaceholder() bool {
	return c == PlaceholderCard()
}

// ParseCardID parses a path segment as a card id. Only base-10 integers
// that fit in 32 bits are accepted.
func ParseCardID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardID, raw)
	}
	return int(id), nil
}

// cardJSON tracks which fields a decoded card actually carried
type cardJSON struct {
	ID          *int    `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// UnmarshalJSON accepts only objects with exactly the id, name and
// description fields.
func (c *Card) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw cardJSON
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCard, err)
	}
	if err := checkFields(ErrMalformedCard, raw); err != nil {
		return err
	}

	*c = Card{ID: *raw.ID, Name: *raw.Name, Description: *raw.Description}
	return nil
}
