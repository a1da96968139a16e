package domain

// Loading placeholder card values
const (
	PlaceholderCardID          = -1
	PlaceholderCardName        = "Loading..."
	PlaceholderCardDescription = "This is a template for a loading card"
)
