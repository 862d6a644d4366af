// Package model defines the building/item/recipe identifier space used to
// dispatch payload variants and drive the edit engine's category checks
// and default lookups.
//
// The full Dyson Sphere Program item table is game content, not codec
// logic, so this package carries only the identifiers the codec itself
// needs to branch on: the belt tiers and the two logistics-station
// variants, plus enough of a lookup table to exercise
// replaceBuilding/replaceBoth's default-model and default-recipe rules.
package model

// Item is a building's item_id.
type Item uint16

// Belt tiers. IDs follow the game's published item table ordering for
// the three conveyor-belt tiers.
const (
	ConveyorBeltMKI   Item = 2001
	ConveyorBeltMKII  Item = 2002
	ConveyorBeltMKIII Item = 2003
)

// Logistics stations.
const (
	PlanetaryLogisticsStation   Item = 2103
	InterstellarLogisticsStation Item = 2104
)

// Category classifies an Item for payload dispatch and edit-engine
// compatibility checks.
type Category int

const (
	CategoryOther Category = iota
	CategoryBelt
	CategoryStation
)

func (c Category) String() string {
	switch c {
	case CategoryBelt:
		return "belt"
	case CategoryStation:
		return "station"
	default:
		return "other"
	}
}

// IsBelt reports whether item is a conveyor belt of any tier.
func (item Item) IsBelt() bool {
	switch item {
	case ConveyorBeltMKI, ConveyorBeltMKII, ConveyorBeltMKIII:
		return true
	default:
		return false
	}
}

// IsStation reports whether item is a logistic station, planetary or
// interstellar.
func (item Item) IsStation() bool {
	switch item {
	case PlanetaryLogisticsStation, InterstellarLogisticsStation:
		return true
	default:
		return false
	}
}

// IsInterstellarStation reports whether item is specifically the
// interstellar station variant. Implies IsStation.
func (item Item) IsInterstellarStation() bool {
	return item == InterstellarLogisticsStation
}

// CategoryOf classifies item for payload dispatch. Station takes
// priority over Belt when both would match, falling through to Other.
func CategoryOf(item Item) Category {
	switch {
	case item.IsStation():
		return CategoryStation
	case item.IsBelt():
		return CategoryBelt
	default:
		return CategoryOther
	}
}
