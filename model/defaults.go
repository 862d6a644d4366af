package model

// defaultModel maps an item to the model_index a freshly placed building
// of that item uses. replaceBuilding looks up this table when a
// replacement crosses tiers within the same category.
var defaultModel = map[Item]uint16{
	ConveyorBeltMKI:              1,
	ConveyorBeltMKII:             2,
	ConveyorBeltMKIII:            3,
	PlanetaryLogisticsStation:    1,
	InterstellarLogisticsStation: 1,
}

// DefaultModelFor returns the default model_index for item, if known.
func DefaultModelFor(item Item) (uint16, bool) {
	v, ok := defaultModel[item]
	return v, ok
}

// defaultRecipe maps an item to the recipe it's conventionally paired
// with, used by replaceBoth to derive a recipe-substitution map from an
// item-substitution map.
//
// Belts and stations have no recipe (they carry model/storage
// configuration instead), so this table is intentionally sparse; it
// exists to be extended as production-building items are added.
var defaultRecipe = map[Item]Recipe{}

// DefaultRecipeFor returns the conventional recipe for item, if known.
func DefaultRecipeFor(item Item) (Recipe, bool) {
	v, ok := defaultRecipe[item]
	return v, ok
}
