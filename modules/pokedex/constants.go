package pokedex

const (
	Version = "v0.1.0"
)
