package variations

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/stagepass/inventory/models"
)

// ErrDuplicateProperty is returned when a key carries two values for the
// same property.
var ErrDuplicateProperty = errors.New("duplicate property in combination key")

// ValueRef points at one property value within a combination.
type ValueRef struct {
	PropertyID uint
	ValueID    uint
}

// Key is the canonical identifier of one point in an item's combination
// space: its value refs sorted by property then value. Two combinations
// are the same variation iff their keys are equal.
type Key []ValueRef

// KeyOf builds the canonical key for a set of property values.
func KeyOf(values []models.PropertyValue) Key {
	key := make(Key, len(values))
	for i, v := range values {
		key[i] = ValueRef{PropertyID: v.PropertyID, ValueID: v.ID}
	}
	sort.Slice(key, func(i, j int) bool {
		if key[i].PropertyID != key[j].PropertyID {
			return key[i].PropertyID < key[j].PropertyID
		}
		return key[i].ValueID < key[j].ValueID
	})
	return key
}

// String serializes the key as "propertyID:valueID,propertyID:valueID".
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, ref := range k {
		parts[i] = fmt.Sprintf("%d:%d", ref.PropertyID, ref.ValueID)
	}
	return strings.Join(parts, ",")
}

// ParseKey parses the serialized "propertyID:valueID,..." form back into a
// canonical key. The input order does not matter.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, nil
	}
	seen := make(map[uint]bool)
	key := make(Key, 0)
	for _, pair := range strings.Split(s, ",") {
		prop, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		propID, err := strconv.ParseUint(prop, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed property id %q: %w", prop, err)
		}
		valueID, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed value id %q: %w", value, err)
		}
		if seen[uint(propID)] {
			return nil, ErrDuplicateProperty
		}
		seen[uint(propID)] = true
		key = append(key, ValueRef{PropertyID: uint(propID), ValueID: uint(valueID)})
	}
	sort.Slice(key, func(i, j int) bool {
		if key[i].PropertyID != key[j].PropertyID {
			return key[i].PropertyID < key[j].PropertyID
		}
		return key[i].ValueID < key[j].ValueID
	})
	return key, nil
}
