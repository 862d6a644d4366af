// Package dspbp is a thin façade over the blueprint, record, and edit
// packages, exposing a single programmatic surface: Parse, Emit, Edit,
// Stats.
package dspbp

import (
	"github.com/dspbp/dspbp/blueprint"
	"github.com/dspbp/dspbp/edit"
	"github.com/dspbp/dspbp/model"
)

// Blueprint re-exports blueprint.Blueprint for callers that only import
// the root package.
type Blueprint = blueprint.Blueprint

// ParseOption re-exports blueprint.ParseOption.
type ParseOption = blueprint.ParseOption

// EmitOption re-exports blueprint.EmitOption.
type EmitOption = blueprint.EmitOption

// WithStrict re-exports blueprint.WithStrict.
func WithStrict(strict bool) ParseOption { return blueprint.WithStrict(strict) }

// WithCompressionLevel re-exports blueprint.WithCompressionLevel.
func WithCompressionLevel(level int) EmitOption { return blueprint.WithCompressionLevel(level) }

// Parse decodes a BP string into a Blueprint.
func Parse(s string, opts ...ParseOption) (*Blueprint, error) {
	return blueprint.Parse(s, opts...)
}

// ParseRaw decodes s like Parse, additionally returning the decompressed
// binary payload alongside the parsed Blueprint.
func ParseRaw(s string, opts ...ParseOption) (*Blueprint, []byte, error) {
	return blueprint.ParseRaw(s, opts...)
}

// Emit serializes a Blueprint back into a BP string.
func Emit(b *Blueprint, opts ...EmitOption) (string, error) {
	return blueprint.Emit(b, opts...)
}

// EditParams bundles the substitution maps for a single Edit call. Each
// non-empty map is applied in the order listed here.
type EditParams struct {
	Items     edit.ItemMap
	Recipes   edit.RecipeMap
	Buildings edit.ItemMap
	Both      edit.ItemMap
}

// Edit applies params to b's building list in place via a fresh
// edit.Engine.
func Edit(b *Blueprint, params EditParams) error {
	eng := edit.New(&b.Data)

	eng.ReplaceItem(params.Items)
	eng.ReplaceRecipe(params.Recipes)

	if err := eng.ReplaceBuilding(params.Buildings); err != nil {
		return err
	}

	eng.ReplaceBoth(params.Both)

	return nil
}

// Stats returns the multiset of buildings by item.
func Stats(b *Blueprint) map[model.Item]int {
	return b.Stats()
}
