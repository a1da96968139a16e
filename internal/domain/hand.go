package domain

// Hand is an ordered set of cards. Order is the left-to-right display order.
type Hand struct {
	Cards []Card `json:"cards" validate:"required"`
}

// NewHand builds a hand from cards. The slice is copied so later changes
// to the argument do not leak into the hand.
func NewHand(cards ...Card) Hand {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return Hand{Cards: owned}
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.Cards)
}

// IsEmpty reports whether the hand holds no cards
func (h Hand) IsEmpty() bool {
	return len(h.Cards) == 0
}

// Validate reports a hand decoded without its cards array
func (h Hand) Validate() error {
	return checkFields(ErrMalformedHand, h)
}
