// Package catalog is the mock card data source behind the API.
// Every call builds fresh values; nothing is cached or shared between requests.
package catalog

import (
	"fmt"

	"github.com/osse101/cardtable/internal/domain"
)

// Cards returns the mock hand: HandSize cards with ids 1..HandSize.
// The first card carries the long description.
func Cards() domain.Hand {
	cards := make([]domain.Card, 0, HandSize)
	for id := 1; id <= HandSize; id++ {
		description := fmt.Sprintf(CardDescriptionFormat, id)
		if id == 1 {
			description = LoremIpsum
		}
		cards = append(cards, domain.NewCard(id, cardName(id), description))
	}
	return domain.Hand{Cards: cards}
}

// Card synthesizes the card with the given id
func Card(id int) domain.Card {
	return domain.NewCard(id, cardName(id), LoremIpsum)
}

func cardName(id int) string {
	return fmt.Sprintf(CardNameFormat, id)
}
