package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"dining", `"Dining"`, CategoryDining, false},
		{"grocery", `"Grocery"`, CategoryGrocery, false},
		{"travel", `"Travel"`, CategoryTravel, false},
		{"merchandise", `"Merchandise"`, CategoryMerchandise, false},
		{"entertainment", `"Entertainment"`, CategoryEntertainment, false},
		{"other", `"Other"`, CategoryOther, false},
		{"unknown tag", `"Fuel"`, "", true},
		{"case sensitive", `"dining"`, "", true},
		{"not a string", `42`, "", true},
		{"null", `null`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Category
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCategory_UnmarshalJSON_UnknownCategoryError(t *testing.T) {
	var c Category
	err := json.Unmarshal([]byte(`"Fuel"`), &c)
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_MarshalJSON(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"`+c.String()+`"`, string(got))
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory(Category("Fuel")))
	assert.False(t, IsValidCategory(Category("")))
}
