package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"species": {"name": "pikachu", "url": "%s/api/v2/pokemon-species/25/"},
	"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
	"stats": [
		{"base_stat": 35, "stat": {"name": "hp"}},
		{"base_stat": 55, "stat": {"name": "attack"}},
		{"base_stat": 40, "stat": {"name": "defense"}},
		{"base_stat": 50, "stat": {"name": "special-attack"}},
		{"base_stat": 50, "stat": {"name": "special-defense"}},
		{"base_stat": 90, "stat": {"name": "speed"}}
	],
	"abilities": [
		{"ability": {"name": "static"}, "is_hidden": false},
		{"ability": {"name": "lightning-rod"}, "is_hidden": true}
	],
	"sprites": {
		"front_default": "https://img/sprite/25.png",
		"other": {"official-artwork": {"front_default": "https://img/artwork/25.png"}}
	}
}`

const pikachuSpeciesJSON = `{
	"flavor_text_entries": [
		{"flavor_text": "ピカチュウ", "language": {"name": "ja"}},
		{"flavor_text": "When several of\nthese POKéMON gather,\ftheir electricity could\nbuild and cause lightning storms.", "language": {"name": "en"}}
	]
}`

type fakeCatalog struct {
	*httptest.Server
	mu       sync.Mutex
	hits     map[string]int
	pokemons map[string]string
	species  map[string]string
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	f := &fakeCatalog{
		hits:     map[string]int{},
		pokemons: map[string]string{},
		species:  map[string]string{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	f.setPokemon("25", fmt.Sprintf(pikachuJSON, f.URL), pikachuSpeciesJSON)
	return f
}

func (f *fakeCatalog) setPokemon(id, pokemon, species string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pokemons[id] = pokemon
	if species != "" {
		f.species[id] = species
	}
}

func (f *fakeCatalog) hitCount(path string) (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return f.hits[path], total
}

func (f *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[r.URL.Path]++

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v2/"), "/")
	var body string
	var ok bool
	switch {
	case strings.HasPrefix(path, "pokemon-species/"):
		body, ok = f.species[strings.TrimPrefix(path, "pokemon-species/")]
	case path == "pokemon":
		if r.URL.Query().Get("offset") != "1" || r.URL.Query().Get("limit") != "2" {
			http.Error(w, "unexpected query", http.StatusBadRequest)
			return
		}
		body, ok = fmt.Sprintf(`{"count": 3, "results": [
			{"name": "pikachu", "url": "%[1]s/api/v2/pokemon/25/"},
			{"name": "missingno", "url": "%[1]s/api/v2/pokemon/0404/"}
		]}`, f.URL), true
	case strings.HasPrefix(path, "pokemon/"):
		body, ok = f.pokemons[strings.TrimPrefix(path, "pokemon/")]
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (f *fakeCatalog) client(t *testing.T) *Client {
	t.Helper()
	client, err := New(Config{BaseURL: f.URL + "/api/v2/", Timeout: 2 * time.Second, BatchConcurrency: 2})
	require.NoError(t, err)
	return client
}

func TestFetchCreature(t *testing.T) {
	catalog := newFakeCatalog(t)
	creature, err := catalog.client(t).FetchCreature(context.Background(), 25)
	require.NoError(t, err)

	assert.Equal(t, int64(25), creature.Id)
	assert.Equal(t, "pikachu", creature.Name)
	assert.Equal(t, []string{"electric"}, creature.Types)
	assert.Equal(t, "https://img/artwork/25.png", creature.ImageURL)
	assert.Equal(t, "When several of these POKéMON gather, their electricity could build and cause lightning storms.", creature.Description)
	assert.Equal(t, []string{"static"}, creature.Abilities)
	require.Len(t, creature.Stats, 6)
	assert.Equal(t, []entity.Stat{
		{Name: "hp", Value: 35},
		{Name: "attack", Value: 55},
		{Name: "defense", Value: 40},
		{Name: "special-attack", Value: 50},
		{Name: "special-defense", Value: 50},
		{Name: "speed", Value: 90},
	}, creature.Stats)
}

func TestFetchCreatureNotFoundIsNotRetried(t *testing.T) {
	catalog := newFakeCatalog(t)

	_, err := catalog.client(t).FetchCreature(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NotFound))

	hits, total := catalog.hitCount("/api/v2/pokemon/99999")
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, total, "species lookup must not happen")
}

func TestFetchCreatureErrors(t *testing.T) {
	catalog := newFakeCatalog(t)
	client := catalog.client(t)
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, err := client.FetchCreature(ctx, 0)
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})
	t.Run("missing stat", func(t *testing.T) {
		catalog.setPokemon("7", `{"id": 7, "name": "squirtle", "species": null,
			"types": [{"slot": 1, "type": {"name": "water"}}],
			"stats": [{"base_stat": 44, "stat": {"name": "hp"}}]}`, `{"flavor_text_entries": []}`)
		_, err := client.FetchCreature(ctx, 7)
		assert.True(t, errors.Is(err, errs.MalformedResponse))
	})
	t.Run("malformed body", func(t *testing.T) {
		catalog.setPokemon("8", `{"id": "eight"`, "")
		_, err := client.FetchCreature(ctx, 8)
		assert.True(t, errors.Is(err, errs.MalformedResponse))
	})
	t.Run("species not served", func(t *testing.T) {
		catalog.setPokemon("150", `{"id": 150, "name": "mewtwo", "species": null,
			"types": [{"slot": 1, "type": {"name": "psychic"}}],
			"stats": [
				{"base_stat": 106, "stat": {"name": "hp"}},
				{"base_stat": 110, "stat": {"name": "attack"}},
				{"base_stat": 90, "stat": {"name": "defense"}},
				{"base_stat": 154, "stat": {"name": "special-attack"}},
				{"base_stat": 90, "stat": {"name": "special-defense"}},
				{"base_stat": 130, "stat": {"name": "speed"}}
			]}`, "")
		_, err := client.FetchCreature(ctx, 150)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.MalformedResponse))
		assert.False(t, errors.Is(err, errs.NotFound))
		assert.Contains(t, err.Error(), "species of pokemon #150")
	})
	t.Run("server down", func(t *testing.T) {
		down := httptest.NewServer(http.NotFoundHandler())
		down.Close()
		client, err := New(Config{BaseURL: down.URL, Timeout: time.Second})
		require.NoError(t, err)
		_, err = client.FetchCreature(ctx, 1)
		assert.True(t, errors.Is(err, errs.Network))
	})
}

func TestFetchCreatureDefaults(t *testing.T) {
	catalog := newFakeCatalog(t)
	// species url missing: falls back to pokemon-species/{id}; no english text; no artwork
	catalog.setPokemon("132", `{"id": 132, "name": "ditto",
		"types": [{"slot": 1, "type": {"name": "normal"}}],
		"stats": [
			{"base_stat": 48, "stat": {"name": "speed"}},
			{"base_stat": 48, "stat": {"name": "hp"}},
			{"base_stat": 48, "stat": {"name": "attack"}},
			{"base_stat": 48, "stat": {"name": "defense"}},
			{"base_stat": 48, "stat": {"name": "special-attack"}},
			{"base_stat": 48, "stat": {"name": "special-defense"}}
		],
		"abilities": [
			{"ability": {"name": "limber"}, "is_hidden": false},
			{"ability": {"name": "imposter"}, "is_hidden": true}
		],
		"sprites": {"front_default": "https://img/sprite/132.png", "other": {"official-artwork": {"front_default": null}}}}`,
		`{"flavor_text_entries": [{"flavor_text": "メタモン", "language": {"name": "ja"}}]}`)

	creature, err := catalog.client(t).FetchCreature(context.Background(), 132)
	require.NoError(t, err)
	assert.Equal(t, DefaultDescription, creature.Description)
	assert.Equal(t, "https://img/sprite/132.png", creature.ImageURL)
	assert.Equal(t, entity.StatHP, creature.Stats[0].Name)
	assert.Equal(t, entity.StatSpeed, creature.Stats[5].Name)
}

func TestFetchCreatureBatchKeepsOrder(t *testing.T) {
	catalog := newFakeCatalog(t)
	ids := []int64{404, 25, -1, 25}

	results := catalog.client(t).FetchCreatureBatch(context.Background(), ids)
	require.Len(t, results, len(ids))
	for i, r := range results {
		assert.Equal(t, ids[i], r.Id)
	}
	assert.True(t, errors.Is(results[0].Err, errs.NotFound))
	assert.Nil(t, results[0].Creature)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "pikachu", results[1].Creature.Name)
	assert.True(t, errors.Is(results[2].Err, errs.InvalidArgument))
	require.NoError(t, results[3].Err)
}

func TestListCreatureIds(t *testing.T) {
	catalog := newFakeCatalog(t)
	client := catalog.client(t)

	ids, total, err := client.ListCreatureIds(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{25, 404}, ids)
	assert.Equal(t, 3, total)

	_, _, err = client.ListCreatureIds(context.Background(), 0, 0)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	_, _, err = client.ListCreatureIds(context.Background(), 10, -1)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestIdFromURL(t *testing.T) {
	id, err := idFromURL("https://pokeapi.co/api/v2/pokemon/151/")
	require.NoError(t, err)
	assert.Equal(t, int64(151), id)

	_, err = idFromURL("https://pokeapi.co/api/v2/pokemon/mew/")
	assert.True(t, errors.Is(err, errs.MalformedResponse))
}
