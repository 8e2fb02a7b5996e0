package variations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagepass/inventory/models"
)

func TestKeyOf(t *testing.T) {
	values := []models.PropertyValue{
		{ID: 9, PropertyID: 2, Value: "Red"},
		{ID: 5, PropertyID: 1, Value: "M"},
	}

	key := KeyOf(values)

	assert.Equal(t, Key{{PropertyID: 1, ValueID: 5}, {PropertyID: 2, ValueID: 9}}, key)
	assert.Equal(t, "1:5,2:9", key.String())

	// Input order must not matter.
	reversed := KeyOf([]models.PropertyValue{values[1], values[0]})
	assert.Equal(t, key, reversed)
}

func TestKeyOfEmpty(t *testing.T) {
	assert.Equal(t, "", KeyOf(nil).String())
}

func TestParseKey(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Key
		expectedErr string
	}{
		{
			name:     "canonical form",
			input:    "1:5,2:9",
			expected: Key{{PropertyID: 1, ValueID: 5}, {PropertyID: 2, ValueID: 9}},
		},
		{
			name:     "unsorted input is canonicalized",
			input:    "2:9,1:5",
			expected: Key{{PropertyID: 1, ValueID: 5}, {PropertyID: 2, ValueID: 9}},
		},
		{
			name:     "empty string is the empty combination",
			input:    "",
			expected: Key{},
		},
		{
			name:        "missing separator",
			input:       "15",
			expectedErr: "malformed pair",
		},
		{
			name:        "non-numeric property",
			input:       "size:5",
			expectedErr: "malformed property id",
		},
		{
			name:        "non-numeric value",
			input:       "1:m",
			expectedErr: "malformed value id",
		},
		{
			name:        "two values for one property",
			input:       "1:5,1:6",
			expectedErr: ErrDuplicateProperty.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ParseKey(tc.input)
			if tc.expectedErr != "" {
				assert.ErrorContains(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	original := Key{{PropertyID: 3, ValueID: 1}, {PropertyID: 7, ValueID: 12}}
	parsed, err := ParseKey(original.String())
	assert.NoError(t, err)
	assert.Equal(t, original, parsed)
}
