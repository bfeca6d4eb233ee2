package entity

import (
	"strings"

	"github.com/samber/lo"
)

// Canonical stat names, in the order the catalog serves them and the contract stores them.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// StatNames is the fixed attribute order of every Creature.
var StatNames = [...]string{StatHP, StatAttack, StatDefense, StatSpecialAttack, StatSpecialDefense, StatSpeed}

type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Creature is the normalized catalog record of one creature. It is immutable once built by the fetcher.
type Creature struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	ImageURL    string   `json:"image"`
	Description string   `json:"description"`
	Stats       []Stat   `json:"stats"`
	Abilities   []string `json:"abilities"`
}

// Stat returns the value of the named stat.
func (c Creature) Stat(name string) (int, bool) {
	stat, ok := lo.Find(c.Stats, func(s Stat) bool { return s.Name == name })
	return stat.Value, ok
}

// DisplayName is the capitalized name, e.g. "Pikachu".
func (c Creature) DisplayName() string {
	return capitalize(c.Name)
}

// DisplayType joins the capitalized types with "/", e.g. "Grass/Poison".
func (c Creature) DisplayType() string {
	return strings.Join(lo.Map(c.Types, func(t string, _ int) string { return capitalize(t) }), "/")
}

// DisplayAbilities returns the capitalized abilities.
func (c Creature) DisplayAbilities() []string {
	return lo.Map(c.Abilities, func(a string, _ int) string { return capitalize(a) })
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CreaturePage is one page of the catalog listing.
type CreaturePage struct {
	Items   []Creature   `json:"items"`
	Failed  []BatchError `json:"failed,omitempty"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
	HasMore bool         `json:"hasMore"`
}

// BatchResult is the settled outcome of fetching one id of a batch. Exactly one of Creature or Err is set.
type BatchResult struct {
	Id       int64
	Creature *Creature
	Err      error
}

type BatchError struct {
	Id    int64  `json:"id"`
	Error string `json:"error"`
}
