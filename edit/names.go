package edit

import (
	"github.com/dspbp/dspbp/errs"
	"github.com/dspbp/dspbp/model"
)

// ResolveItemMap converts a map of user-typed item identifier strings
// into an ItemMap, failing with UnknownUserIdentifierError on the first
// name that doesn't resolve.
func ResolveItemMap(named map[string]string) (ItemMap, error) {
	m := make(ItemMap, len(named))

	for fromName, toName := range named {
		from, ok := model.ItemNames.Resolve(fromName)
		if !ok {
			return nil, &errs.UnknownUserIdentifierError{Text: fromName}
		}

		to, ok := model.ItemNames.Resolve(toName)
		if !ok {
			return nil, &errs.UnknownUserIdentifierError{Text: toName}
		}

		m[from] = to
	}

	return m, nil
}

// ResolveRecipeMap is ResolveItemMap's counterpart for recipe names.
func ResolveRecipeMap(named map[string]string) (RecipeMap, error) {
	m := make(RecipeMap, len(named))

	for fromName, toName := range named {
		from, ok := model.RecipeNames.Resolve(fromName)
		if !ok {
			return nil, &errs.UnknownUserIdentifierError{Text: fromName}
		}

		to, ok := model.RecipeNames.Resolve(toName)
		if !ok {
			return nil, &errs.UnknownUserIdentifierError{Text: toName}
		}

		m[from] = to
	}

	return m, nil
}
