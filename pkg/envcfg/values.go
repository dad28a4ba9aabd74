package envcfg

import (
	"fmt"
	"os"
	"sort"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/solution-accelerators/envprov/pkg/defaults"
	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
)

// suggestionMaxDistance bounds how far an unknown key may be from a known
// key before we stop offering it as a "did you mean" hint.
const suggestionMaxDistance = 5

// Load builds the effective table: embedded defaults overlaid with values
// from valuesPath. An empty valuesPath falls back to discovering
// envprov.local.yaml in the working directory; if neither exists the
// defaults are returned as-is.
func Load(valuesPath string) (*Table, error) {
	table, err := Defaults()
	if err != nil {
		return nil, enverrors.Wrap(enverrors.ErrCodeInternal, "loading embedded defaults", err)
	}

	explicit := valuesPath != ""
	if !explicit {
		valuesPath = defaults.LocalValuesFile
	}

	values, err := readValuesFile(valuesPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			// Discovery is best effort; defaults alone may be complete.
			return table, nil
		}
		return nil, enverrors.Wrap(enverrors.ErrCodeConfig, fmt.Sprintf("reading values file %s", valuesPath), err)
	}

	if err := applyValues(table, values); err != nil {
		return nil, err
	}
	return table, nil
}

// readValuesFile parses a flat key/value YAML mapping.
func readValuesFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("not a flat key/value mapping: %w", err)
	}
	return values, nil
}

// applyValues overlays values onto the table. Unknown keys are rejected
// with a nearest-known-key suggestion.
func applyValues(table *Table, values map[string]string) error {
	// Deterministic application and error order.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if table.Set(key, values[key]) {
			continue
		}
		msg := fmt.Sprintf("unknown configuration key %q", key)
		if suggestion := nearestKey(key, table.Keys()); suggestion != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
		}
		return enverrors.New(enverrors.ErrCodeConfig, msg)
	}
	return nil
}

// nearestKey returns the known key closest to key by edit distance, or ""
// when nothing is plausibly close.
func nearestKey(key string, known []string) string {
	best := ""
	bestDistance := suggestionMaxDistance + 1
	for _, candidate := range known {
		if d := levenshtein.ComputeDistance(key, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
