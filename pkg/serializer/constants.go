package serializer

// Output destination constants.
const (
	// StdoutURI is the special output path indicating output should be
	// written to stdout.
	StdoutURI = "-"
)
