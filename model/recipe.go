package model

// Recipe is a building's recipe_id.
type Recipe uint16

// NoRecipe is the sentinel recipe_id meaning "no recipe selected", as
// carried verbatim by buildings that don't produce (e.g. belts, stations).
const NoRecipe Recipe = 0
