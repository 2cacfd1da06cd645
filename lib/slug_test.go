package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"two words", "Sheep Meat", "sheep_meat"},
		{"already slug", "beef", "beef"},
		{"surrounding whitespace", "  Camel Meat  ", "camel_meat"},
		{"run of spaces", "Fresh   Chicken", "fresh_chicken"},
		{"tabs and newlines", "Goat\tMeat\n", "goat_meat"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
		{"arabic preserved", "لحم غنم", "لحم_غنم"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}
