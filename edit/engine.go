// Package edit implements the traversal/edit layer: a visitor over a
// parsed building list that performs consistent bulk substitution of
// item, recipe, and building identifiers.
package edit

import (
	"github.com/dspbp/dspbp/errs"
	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/payload"
	"github.com/dspbp/dspbp/record"
)

// ItemMap substitutes one Item for another.
type ItemMap map[model.Item]model.Item

// RecipeMap substitutes one Recipe for another.
type RecipeMap map[model.Recipe]model.Recipe

// Engine is a visitor over a BlueprintData's building list, walking a
// small closed set of node kinds (building, station) in a single pass
// per operation.
type Engine struct {
	Data *record.BlueprintData
}

// New returns an Engine over data.
func New(data *record.BlueprintData) *Engine {
	return &Engine{Data: data}
}

// ReplaceItem rewrites item_id and filter_id on every building, and
// item_id on every station storage slot, for keys present in m. Missing
// keys leave fields untouched.
func (e *Engine) ReplaceItem(m ItemMap) {
	if len(m) == 0 {
		return
	}

	for i := range e.Data.Buildings {
		b := &e.Data.Buildings[i]

		if to, ok := m[model.Item(b.Header.ItemID)]; ok {
			b.Header.ItemID = uint16(to)
		}
		if to, ok := m[model.Item(b.Header.FilterID)]; ok {
			b.Header.FilterID = uint16(to)
		}

		if st, ok := b.Param.(*payload.Station); ok {
			visitStationStorage(st, m)
		}
	}
}

func visitStationStorage(st *payload.Station, m ItemMap) {
	for i := range st.Storage {
		from := model.Item(st.Storage[i].ItemID) //nolint:gosec // storage ids are item_ids on the wire
		if to, ok := m[from]; ok {
			st.Storage[i].ItemID = int32(to)
		}
	}
}

// ReplaceRecipe rewrites recipe_id on every building, for keys present
// in m.
func (e *Engine) ReplaceRecipe(m RecipeMap) {
	if len(m) == 0 {
		return
	}

	for i := range e.Data.Buildings {
		b := &e.Data.Buildings[i]
		if to, ok := m[model.Recipe(b.Header.RecipeID)]; ok {
			b.Header.RecipeID = uint16(to)
		}
	}
}

// ReplaceBuilding rewrites item_id on every building whose current item
// is a key of m. When the replacement item has a known default
// model_index, model_index is updated to match. If any replacement
// would cross building categories (station, belt, other), no building
// is modified and IncompatibleReplacementError is returned.
//
// Validation reads the pre-traversal snapshot: every candidate
// substitution is checked before any is applied.
func (e *Engine) ReplaceBuilding(m ItemMap) error {
	if len(m) == 0 {
		return nil
	}

	type change struct {
		idx int
		to  model.Item
	}

	changes := make([]change, 0, len(e.Data.Buildings))

	for i := range e.Data.Buildings {
		from := model.Item(e.Data.Buildings[i].Header.ItemID)

		to, ok := m[from]
		if !ok {
			continue
		}

		if model.CategoryOf(from) != model.CategoryOf(to) {
			return &errs.IncompatibleReplacementError{From: uint16(from), To: uint16(to)}
		}

		changes = append(changes, change{idx: i, to: to})
	}

	for _, c := range changes {
		b := &e.Data.Buildings[c.idx]
		b.Header.ItemID = uint16(c.to)

		if modelIdx, ok := model.DefaultModelFor(c.to); ok {
			b.Header.ModelIndex = modelIdx
		}
	}

	return nil
}

// ReplaceBoth computes a derived recipe map by pairing each (from, to)
// with (defaultRecipeFor(from), defaultRecipeFor(to)) when both are
// defined, then runs ReplaceItem(m) followed by ReplaceRecipe(derived).
func (e *Engine) ReplaceBoth(m ItemMap) {
	derived := make(RecipeMap, len(m))

	for from, to := range m {
		rf, okFrom := model.DefaultRecipeFor(from)
		rt, okTo := model.DefaultRecipeFor(to)

		if okFrom && okTo {
			derived[rf] = rt
		}
	}

	e.ReplaceItem(m)
	e.ReplaceRecipe(derived)
}
