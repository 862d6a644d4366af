package blueprint

import "github.com/dspbp/dspbp/errs"

// IconKind classifies an icon's encoded u32 value.
type IconKind int

const (
	IconEmpty IconKind = iota
	IconSignal
	IconItem
	IconRecipe
)

const (
	iconItemFloor   = 1000
	iconRecipeFloor = 20000
)

// ClassifyIcon returns the IconKind of a raw icon value.
func ClassifyIcon(value uint32) IconKind {
	switch {
	case value == 0:
		return IconEmpty
	case value < iconItemFloor:
		return IconSignal
	case value < iconRecipeFloor:
		return IconItem
	default:
		return IconRecipe
	}
}

// IconSlot names a single icon slot and the value to set there.
type IconSlot struct {
	Slot  int
	Value uint32
}

// SetIcons writes each slot's value into b.Icons, rejecting any slot
// index outside [0,5). On error, no slot is modified.
func (b *Blueprint) SetIcons(slots ...IconSlot) error {
	for _, s := range slots {
		if s.Slot < 0 || s.Slot >= len(b.Icons) {
			return errs.ErrIconSlotOutOfRange
		}
	}

	for _, s := range slots {
		b.Icons[s.Slot] = s.Value
	}

	return nil
}
