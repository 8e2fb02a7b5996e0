package variations

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stagepass/inventory/models"
)

// Combination is one point in an item's combination space: one value per
// property, plus the variation record for that point if one exists.
//
// Price is the effective sale price: the variation's override when set,
// the item's default otherwise. Available is false for combinations of a
// property-bearing item with no variation record (such combinations can
// never be attached to a quota and so can never be sold) and for
// combinations whose variation is inactive.
type Combination struct {
	Key       Key
	Values    map[uint]models.PropertyValue
	Variation *models.ItemVariation
	Available bool
	Price     decimal.Decimal
}

// AllCombinations expands an item's properties into the full cartesian
// product of value combinations, each annotated with its variation record
// when one exists.
//
// An item with no properties yields exactly one empty combination, which
// represents the item itself and is always available. An item where some
// property has no values yields nothing. The result order is deterministic
// for a fixed input (properties in load order, values by position) but not
// otherwise guaranteed.
func AllCombinations(item *models.Item) []Combination {
	if len(item.Properties) == 0 {
		return []Combination{{
			Key:       Key{},
			Values:    map[uint]models.PropertyValue{},
			Available: true,
			Price:     item.DefaultPrice,
		}}
	}

	valueLists := make([][]models.PropertyValue, len(item.Properties))
	total := 1
	for i, prop := range item.Properties {
		values := make([]models.PropertyValue, len(prop.Values))
		copy(values, prop.Values)
		sort.Slice(values, func(a, b int) bool {
			return values[a].Less(&values[b])
		})
		if len(values) == 0 {
			return nil
		}
		valueLists[i] = values
		total *= len(values)
	}

	registry := NewRegistry(item)
	result := make([]Combination, 0, total)
	indexes := make([]int, len(valueLists))
	for {
		current := make([]models.PropertyValue, len(valueLists))
		for i, j := range indexes {
			current[i] = valueLists[i][j]
		}
		result = append(result, newCombination(item, registry, current))

		// Odometer increment, last property fastest.
		i := len(indexes) - 1
		for ; i >= 0; i-- {
			indexes[i]++
			if indexes[i] < len(valueLists[i]) {
				break
			}
			indexes[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return result
}

// AvailableCombinations returns the combinations that are actually
// sellable: those with a matching, active variation record, plus the empty
// combination of a property-less item, which needs no record.
func AvailableCombinations(item *models.Item) []Combination {
	all := AllCombinations(item)
	available := make([]Combination, 0, len(all))
	for _, c := range all {
		if c.Available {
			available = append(available, c)
		}
	}
	return available
}

func newCombination(item *models.Item, registry *Registry, values []models.PropertyValue) Combination {
	byProperty := make(map[uint]models.PropertyValue, len(values))
	for _, v := range values {
		byProperty[v.PropertyID] = v
	}
	c := Combination{
		Key:    KeyOf(values),
		Values: byProperty,
		Price:  item.DefaultPrice,
	}
	if variation, ok := registry.Lookup(c.Key); ok {
		c.Variation = variation
		c.Available = variation.Active
		if variation.DefaultPrice.Valid {
			c.Price = variation.DefaultPrice.Decimal
		}
	}
	return c
}
