package view

import (
	"fmt"
	"strconv"
)

// CardWidthEm is the card width. Every other layout length is derived from it.
const CardWidthEm = 10.0

// Derived layout lengths in em
const (
	CardHeightEm     = CardWidthEm * 7 / 5
	handOffsetEm     = CardWidthEm / 2
	handMaxWidthEm   = CardWidthEm * 5
	handHoverWidthEm = CardWidthEm * 4
	handLiftEm       = CardWidthEm / 5
	cardRaiseEm      = CardHeightEm + 1
)

// Class names shared by the components and the stylesheet
const (
	ClassPage            = "page"
	ClassMessage         = "message"
	ClassError           = "error"
	ClassCard            = "card"
	ClassCardLoading     = "loading"
	ClassCardName        = "card-name"
	ClassCardDescription = "card-description"
	ClassCardFooter      = "card-footer"
	ClassHand            = "hand"
	ClassHandRow         = "hand-row"
	ClassHandSlot        = "hand-slot"
)

const cardColor = "#BF4342"

func em(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "em"
}

// Stylesheet returns the CSS for every class the components emit
func Stylesheet() string {
	return fmt.Sprintf(`.%[1]s {
  display: inline-block;
  width: %[2]s;
  height: %[3]s;
  border: 1px solid #666;
  border-radius: .3em;
  padding: .25em;
  margin: 0 .5em .5em 0;
  font-size: 1.2em;
  font-family: Arial, sans-serif;
  position: relative;
  box-shadow: .2em .2em .5em #333;
  user-select: none;
  background-color: #E7D7C1;
}
.%[1]s:hover { box-shadow: .2em .2em .5em #000; }
.%[1]s.%[4]s { opacity: .6; }
.%[5]s {
  border-bottom: 1px solid #ccc;
  margin-bottom: .5rem;
  color: %[13]s;
  font-weight: 700;
}
.%[6]s {
  position: absolute;
  height: 9em;
  bottom: 1.2em;
  font-size: .8em;
  color: %[13]s;
  overflow: hidden;
  overflow-y: scroll;
}
.%[7]s {
  position: absolute;
  bottom: 0;
  left: 5px;
  color: %[13]s;
  font-weight: 700;
  font-size: .7em;
}
.%[8]s {
  position: fixed;
  bottom: -%[3]s;
  width: 100%%;
}
.%[9]s {
  display: flex;
  flex-direction: row;
  align-items: center;
  justify-content: center;
  list-style: none;
  width: 100%%;
  max-width: %[10]s;
  box-sizing: border-box;
  margin: 0 auto;
  transform: translateX(-%[11]s);
  transition: all .5s ease;
}
.%[9]s:hover {
  transform: translateX(-%[11]s) translateY(%[12]s);
  max-width: %[14]s;
}
.%[15]s {
  overflow: visible;
  width: 1px;
  flex-grow: 1;
  transition: transform .5s ease;
  margin: 1em 0;
  z-index: 1;
}
.%[15]s:hover { transform: translateY(-%[16]s); }
.%[17]s { color: %[13]s; }
`,
		ClassCard,            // 1
		em(CardWidthEm),      // 2
		em(CardHeightEm),     // 3
		ClassCardLoading,     // 4
		ClassCardName,        // 5
		ClassCardDescription, // 6
		ClassCardFooter,      // 7
		ClassHand,            // 8
		ClassHandRow,         // 9
		em(handMaxWidthEm),   // 10
		em(handOffsetEm),     // 11
		em(handLiftEm),       // 12
		cardColor,            // 13
		em(handHoverWidthEm), // 14
		ClassHandSlot,        // 15
		em(cardRaiseEm),      // 16
		ClassError,           // 17
	)
}
