package migrate

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/internal/postgres"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	pokedexMigrationSource = "modules/pokedex/database/postgresql/migrations"
	pokedexMigrationTable  = "pokedex_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

// parseDatabaseURL validates rawURL and points its migration bookkeeping at the pokedex table.
// An empty rawURL falls back to the configured postgres connection.
func parseDatabaseURL(rawURL string, conf postgres.Config) (string, error) {
	if rawURL == "" {
		if !conf.Enabled() {
			return "", errors.New("--database or postgres configuration is required")
		}
		rawURL = conf.MigrateURL()
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return "", errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}
	return cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {pokedexMigrationTable}}).String(), nil
}

func newMigrate(sourcePath string, databaseURL string) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+sourcePath, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &migrateLogger{}
	return m, nil
}
