package view

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/osse101/cardtable/internal/domain"
)

// NoResponseText is shown while a page waits for its first response
const NoResponseText = "No server response"

// Card renders a fixed-size card. Placeholder cards carry the loading class.
func Card(c domain.Card) Node {
	classes := ClassCard
	if c.IsPlaceholder() {
		classes += " " + ClassCardLoading
	}

	return El("div",
		[]html.Attribute{
			attr("class", classes),
			attr("style", "width: "+em(CardWidthEm)+"; height: "+em(CardHeightEm)+";"),
			attr("data-card-id", strconv.Itoa(c.ID)),
		},
		El("div", class(ClassCardName), Text(c.Name)),
		El("div", []html.Attribute{
			attr("class", ClassCardDescription),
			attr("style", "overflow-y: scroll;"),
		}, Text(c.Description)),
		El("div", class(ClassCardFooter), Text("#"+strconv.Itoa(c.ID))),
	)
}

// Hand renders the cards as a centered row, shifted left by half a card
func Hand(h domain.Hand) Node {
	slots := make([]Node, 0, len(h.Cards))
	for _, c := range h.Cards {
		slots = append(slots, El("li", class(ClassHandSlot), Card(c)))
	}

	return El("div", class(ClassHand),
		El("ul", []html.Attribute{
			attr("class", ClassHandRow),
			attr("style", "transform: translateX(-"+em(handOffsetEm)+");"),
		}, slots...),
	)
}

// Message renders plain status text
func Message(text string) Node {
	return El("div", class(ClassMessage), Text(text))
}

// Error renders a failure message
func Error(err error) Node {
	return El("div", class(ClassError), Text(err.Error()))
}

func Heading(text string) Node {
	return El("h1", nil, Text(text))
}

func Link(href, text string) Node {
	return El("a", []html.Attribute{attr("href", href)}, Text(text))
}

// Page wraps the content of one route
func Page(children ...Node) Node {
	return El("div", class(ClassPage), children...)
}
