package variations

import (
	"github.com/stagepass/inventory/models"
)

// Registry indexes an item's variation records by canonical combination
// key, so the combinator can attach them to generated combinations.
//
// A variation is indexed only if the set of properties referenced by its
// values equals exactly the item's current property set. Variations left
// behind after a property was added to or removed from the item no longer
// describe a point in the combination space; they are skipped from lookup
// and reported via Stale instead of being matched or raised.
type Registry struct {
	byKey map[string]*models.ItemVariation
	stale []*models.ItemVariation
}

// NewRegistry builds a registry over the item's variations against its
// current property set.
func NewRegistry(item *models.Item) *Registry {
	propIDs := make(map[uint]bool, len(item.Properties))
	for _, p := range item.Properties {
		propIDs[p.ID] = true
	}

	r := &Registry{
		byKey: make(map[string]*models.ItemVariation, len(item.Variations)),
	}
	for i := range item.Variations {
		variation := &item.Variations[i]
		if !coversExactly(variation.Values, propIDs) {
			r.stale = append(r.stale, variation)
			continue
		}
		r.byKey[KeyOf(variation.Values).String()] = variation
	}
	return r
}

// Lookup returns the variation record for a combination key, if one exists.
func (r *Registry) Lookup(key Key) (*models.ItemVariation, bool) {
	variation, ok := r.byKey[key.String()]
	return variation, ok
}

// Stale returns the variations that were skipped because their value set
// does not cover the item's current properties. Sale paths ignore these;
// the accessor exists so data-cleanup tooling can find them.
func (r *Registry) Stale() []*models.ItemVariation {
	return r.stale
}

// coversExactly reports whether values reference each property in propIDs
// exactly once and no other property.
func coversExactly(values []models.PropertyValue, propIDs map[uint]bool) bool {
	seen := make(map[uint]bool, len(values))
	for _, v := range values {
		if !propIDs[v.PropertyID] || seen[v.PropertyID] {
			return false
		}
		seen[v.PropertyID] = true
	}
	return len(seen) == len(propIDs)
}
