package model

import "github.com/dspbp/dspbp/internal/identifiers"

// ItemNames resolves user-typed item identifier strings to Item values,
// backed by the xxhash registry in internal/identifiers.
var ItemNames = identifiers.NewRegistry(map[string]Item{
	"conveyor-belt-mk-i":            ConveyorBeltMKI,
	"conveyor-belt-mk-ii":           ConveyorBeltMKII,
	"conveyor-belt-mk-iii":          ConveyorBeltMKIII,
	"planetary-logistics-station":   PlanetaryLogisticsStation,
	"interstellar-logistics-station": InterstellarLogisticsStation,
})

// RecipeNames resolves user-typed recipe identifier strings to Recipe
// values. Empty for now: the codec carries no production-recipe table
// (see defaultRecipe); populated the same way as ItemNames as recipes
// are added.
var RecipeNames = identifiers.NewRegistry(map[string]Recipe{})
