package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/mealtrack/internal/domain"
)

func TestSelectMealType(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		includeSnack bool
		want         domain.MealType
	}{
		{"breakfast", "1\n", true, domain.MealTypeBreakfast},
		{"lunch", "2\n", true, domain.MealTypeLunch},
		{"dinner", "3\n", true, domain.MealTypeDinner},
		{"snack", "4\n", true, domain.MealTypeSnack},
		{"snack not offered falls back to lunch", "4\n", false, domain.MealTypeLunch},
		{"garbage falls back to lunch", "banana\n", true, domain.MealTypeLunch},
		{"empty falls back to lunch", "\n", true, domain.MealTypeLunch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
			got, err := p.SelectMealType(tc.includeSnack)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadListSplitsAndTrims(t *testing.T) {
	p := NewPrompter(strings.NewReader("ご飯, 味噌汁 ,焼き魚\n"), &bytes.Buffer{})

	got, err := p.ReadList("Menu: ")
	require.NoError(t, err)
	assert.Equal(t, []string{"ご飯", "味噌汁", "焼き魚"}, got)
}

func TestReadListEmptyLineYieldsNil(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.ReadList("Tags: ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadOptionalInt(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  *int
	}{
		{"number", "650\n", intPtr(650)},
		{"blank skips", "\n", nil},
		{"non-numeric skips", "many\n", nil},
		{"negative skips", "-5\n", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
			got, err := p.ReadOptionalInt("Calories: ")
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
