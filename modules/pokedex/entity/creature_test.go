package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatureDisplay(t *testing.T) {
	c := Creature{
		Id:        1,
		Name:      "bulbasaur",
		Types:     []string{"grass", "poison"},
		Abilities: []string{"overgrow"},
		Stats: []Stat{
			{StatHP, 45}, {StatAttack, 49}, {StatDefense, 49},
			{StatSpecialAttack, 65}, {StatSpecialDefense, 65}, {StatSpeed, 45},
		},
	}

	assert.Equal(t, "Bulbasaur", c.DisplayName())
	assert.Equal(t, "Grass/Poison", c.DisplayType())
	assert.Equal(t, []string{"Overgrow"}, c.DisplayAbilities())

	v, ok := c.Stat(StatSpecialAttack)
	assert.True(t, ok)
	assert.Equal(t, 65, v)

	_, ok = c.Stat("accuracy")
	assert.False(t, ok)
}
