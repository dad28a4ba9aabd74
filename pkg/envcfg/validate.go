package envcfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/distribution/reference"
	"github.com/google/uuid"

	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
)

// resourceIDPrefix is the leading path segment of a fully-qualified Azure
// resource identifier.
const resourceIDPrefix = "/subscriptions/"

// Validate checks the table's structural invariants before any external
// invocation happens. It does not validate value semantics: region names,
// model availability, and capacity quotas are the deployment's concern.
func (t *Table) Validate() error {
	if t.Environment == "" {
		return enverrors.New(enverrors.ErrCodeConfig, "environment name is empty")
	}

	for _, e := range t.Entries {
		if e.Value == "" {
			return enverrors.Newf(enverrors.ErrCodeConfig,
				"%s is not set; supply it via a values file (see --values or %s)", e.Key, localValuesHint(e.Key))
		}
	}

	if v, ok := t.Lookup(KeySubscriptionID); ok {
		if _, err := uuid.Parse(v); err != nil {
			return enverrors.Wrap(enverrors.ErrCodeConfig,
				fmt.Sprintf("%s is not a valid subscription identifier", KeySubscriptionID), err)
		}
	}

	if v, ok := t.Lookup(KeyImageTag); ok {
		if !reference.TagRegexp.MatchString(v) {
			return enverrors.Newf(enverrors.ErrCodeConfig,
				"%s: %q is not a valid image tag", KeyImageTag, v)
		}
	}

	for _, key := range []string{KeyEnableTelemetry, KeyWAFAligned} {
		if v, ok := t.Lookup(key); ok {
			if _, err := strconv.ParseBool(v); err != nil {
				return enverrors.Newf(enverrors.ErrCodeConfig,
					"%s: %q is not a boolean", key, v)
			}
		}
	}

	if v, ok := t.Lookup(KeyModelCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return enverrors.Newf(enverrors.ErrCodeConfig,
				"%s: %q is not a positive integer", KeyModelCapacity, v)
		}
	}

	if v, ok := t.Lookup(KeyAIProjectResource); ok {
		if !strings.HasPrefix(v, resourceIDPrefix) {
			return enverrors.Newf(enverrors.ErrCodeConfig,
				"%s must be a fully-qualified resource identifier starting with %s", KeyAIProjectResource, resourceIDPrefix)
		}
	}

	return nil
}

// localValuesHint names the file a missing sensitive value should live in.
func localValuesHint(key string) string {
	switch key {
	case KeySubscriptionID, KeyAIProjectResource:
		return "envprov.local.yaml, kept out of version control"
	default:
		return "envprov.local.yaml"
	}
}
