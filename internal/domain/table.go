package domain

// Equipment slot names, in display order
const (
	SlotHead      = "head"
	SlotTorso     = "torso"
	SlotLegs      = "legs"
	SlotNecklace  = "necklace"
	SlotLeftHand  = "left_hand"
	SlotRightHand = "right_hand"
)

// EquipmentSlots holds at most one card per slot. A nil slot is empty.
type EquipmentSlots struct {
	Head      *Card `json:"head"`
	Torso     *Card `json:"torso"`
	Legs      *Card `json:"legs"`
	Necklace  *Card `json:"necklace"`
	LeftHand  *Card `json:"left_hand"`
	RightHand *Card `json:"right_hand"`
}

// EquipmentSlot pairs a slot name with its (possibly empty) card
type EquipmentSlot struct {
	Name string
	Card *Card
}

// Slots lists every slot in display order
func (e EquipmentSlots) Slots() []EquipmentSlot {
	return []EquipmentSlot{
		{Name: SlotHead, Card: e.Head},
		{Name: SlotTorso, Card: e.Torso},
		{Name: SlotLegs, Card: e.Legs},
		{Name: SlotNecklace, Card: e.Necklace},
		{Name: SlotLeftHand, Card: e.LeftHand},
		{Name: SlotRightHand, Card: e.RightHand},
	}
}

// Equipped counts the filled slots
func (e EquipmentSlots) Equipped() int {
	n := 0
	for _, slot := range e.Slots() {
		if slot.Card != nil {
			n++
		}
	}
	return n
}

// PlayerSummary is what the table shows about an opponent
type PlayerSummary struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	CardCount int            `json:"nb_cards"`
	Equipment EquipmentSlots `json:"equipment"`
}

// Table is the local player's hand plus summaries of everyone else
type Table struct {
	YourHand Hand            `json:"your_hand"`
	Players  []PlayerSummary `json:"players"`
}
