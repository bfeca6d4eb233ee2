package pokeapi

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/samber/lo"
)

const (
	DefaultDescription = "No description available."
	MaxAbilities       = 4
)

var descriptionReplacer = strings.NewReplacer("\f", " ", "\n", " ", "\r", " ")

func mapCreature(p pokemonResponse, s speciesResponse) (entity.Creature, error) {
	if p.Id <= 0 || p.Name == "" {
		return entity.Creature{}, errors.Wrap(errs.MalformedResponse, "pokemon record lacks id or name")
	}
	if len(p.Types) == 0 {
		return entity.Creature{}, errors.Wrapf(errs.MalformedResponse, "pokemon #%d has no types", p.Id)
	}
	stats, err := mapStats(p)
	if err != nil {
		return entity.Creature{}, errors.WithStack(err)
	}

	abilities := lo.FilterMap(p.Abilities, func(a pokemonAbility, _ int) (string, bool) {
		return a.Ability.Name, !a.IsHidden && a.Ability.Name != ""
	})
	if len(abilities) > MaxAbilities {
		abilities = abilities[:MaxAbilities]
	}

	return entity.Creature{
		Id:          p.Id,
		Name:        p.Name,
		Types:       lo.Map(p.Types, func(t pokemonType, _ int) string { return t.Type.Name }),
		ImageURL:    imageURL(p),
		Description: description(s),
		Stats:       stats,
		Abilities:   abilities,
	}, nil
}

// mapStats orders the served stats canonically. Every canonical stat must be present exactly once.
func mapStats(p pokemonResponse) ([]entity.Stat, error) {
	served := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		served[s.Stat.Name] = s.BaseStat
	}
	stats := make([]entity.Stat, 0, len(entity.StatNames))
	for _, name := range entity.StatNames {
		value, ok := served[name]
		if !ok {
			return nil, errors.Wrapf(errs.MalformedResponse, "pokemon #%d lacks stat %q", p.Id, name)
		}
		stats = append(stats, entity.Stat{Name: name, Value: value})
	}
	return stats, nil
}

func imageURL(p pokemonResponse) string {
	if u := p.Sprites.Other.OfficialArtwork.FrontDefault; u != nil && *u != "" {
		return *u
	}
	if u := p.Sprites.FrontDefault; u != nil {
		return *u
	}
	return ""
}

// description returns the first english flavor text, on one line.
func description(s speciesResponse) string {
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name != "en" {
			continue
		}
		if text := strings.Join(strings.Fields(descriptionReplacer.Replace(entry.FlavorText)), " "); text != "" {
			return text
		}
	}
	return DefaultDescription
}

// idFromURL extracts the trailing numeric segment of a resource url such as ".../pokemon/25/".
func idFromURL(u string) (int64, error) {
	segments := strings.Split(strings.TrimRight(u, "/"), "/")
	id, err := strconv.ParseInt(segments[len(segments)-1], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(errs.MalformedResponse, "can't parse resource id from %q", u)
	}
	return id, nil
}
