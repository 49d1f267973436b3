package service

// SchemaValidator validates request payloads against their declared schema (struct tags).
// It never touches storage.
type SchemaValidator interface {
	// Validate returns nil when v is valid, otherwise a map from field path
	// (for example "items[0].quantity") to a human-readable message.
	Validate(v any) map[string]string
}
