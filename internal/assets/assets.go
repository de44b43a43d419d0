package assets

// DefaultStyle is the embedded stylesheet used when none is configured.
const DefaultStyle = "note"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
