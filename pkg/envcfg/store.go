package envcfg

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
)

var (
	//go:embed data/production.yaml
	defaultsData []byte

	defaultsOnce   sync.Once
	cachedDefaults *Table
	cachedErr      error
)

// loadDefaults loads and caches the embedded defaults table.
// Because the data is embedded at build time, it is safe (and simpler) to
// parse it once and reuse the in-memory representation for the lifetime of
// the process.
func loadDefaults() (*Table, error) {
	defaultsOnce.Do(func() {
		var table Table
		if err := yaml.Unmarshal(defaultsData, &table); err != nil {
			cachedErr = err
			return
		}
		cachedDefaults = &table
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedDefaults == nil {
		return nil, enverrors.New(enverrors.ErrCodeInternal, "defaults table not initialized")
	}
	return cachedDefaults, nil
}

// Defaults returns a copy of the embedded defaults table. Callers own the
// copy and may mutate it freely.
func Defaults() (*Table, error) {
	table, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return table.Clone(), nil
}

// KnownKeys returns the fixed key set in write order.
func KnownKeys() ([]string, error) {
	table, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	return table.Keys(), nil
}
