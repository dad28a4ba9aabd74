package envcfg

// Configuration keys written into the azd environment. The set is fixed;
// adding a key means adding a row to data/production.yaml and a constant
// here.
const (
	KeyLocation            = "AZURE_LOCATION"
	KeyResourceGroup       = "AZURE_RESOURCE_GROUP"
	KeySubscriptionID      = "AZURE_SUBSCRIPTION_ID"
	KeyOpenAILocation      = "AZURE_ENV_OPENAI_LOCATION"
	KeyModelName           = "AZURE_ENV_MODEL_NAME"
	KeyModelVersion        = "AZURE_ENV_MODEL_VERSION"
	KeyModelDeploymentType = "AZURE_ENV_MODEL_DEPLOYMENT_TYPE"
	KeyModelCapacity       = "AZURE_ENV_MODEL_CAPACITY"
	KeyImageTag            = "AZURE_ENV_IMAGETAG"
	KeyEnableTelemetry     = "ENABLE_TELEMETRY"
	KeyWAFAligned          = "AZURE_ENV_USE_WAF_ALIGNED_ARCHITECTURE"
	KeyAIProjectResource   = "AZURE_AI_PROJECT_RESOURCE_ID"
)

// Entry is one key/value configuration record.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Table is the ordered environment configuration record. Order is the
// order in which entries are written to the azd environment.
type Table struct {
	// Environment is the azd environment name the table targets.
	Environment string `json:"environment" yaml:"environment"`

	// Entries are the key/value records in write order.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Lookup returns the value for key and whether the key exists.
func (t *Table) Lookup(key string) (string, bool) {
	for _, e := range t.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns the table's keys in write order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Set replaces the value for an existing key. It reports whether the key
// was found; unknown keys are never added here, the key set is fixed.
func (t *Table) Set(key, value string) bool {
	for i := range t.Entries {
		if t.Entries[i].Key == key {
			t.Entries[i].Value = value
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Environment: t.Environment,
		Entries:     make([]Entry, len(t.Entries)),
	}
	copy(out.Entries, t.Entries)
	return out
}
