package pokeapi

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	Id        int64            `json:"id"`
	Name      string           `json:"name"`
	Species   *namedResource   `json:"species"`
	Types     []pokemonType    `json:"types"`
	Stats     []pokemonStat    `json:"stats"`
	Abilities []pokemonAbility `json:"abilities"`
	Sprites   struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

type pokemonType struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type pokemonAbility struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
}

type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}
