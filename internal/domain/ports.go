package domain

// CatalogLoader loads the option catalog. An empty path selects the built-in
// catalog.
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
}

// ConfigLoader loads application settings from a directory.
type ConfigLoader interface {
	Load(dir string) (AppConfig, error)
}

// FrameSink receives rendered animation frames in order.
type FrameSink interface {
	WriteFrame(index int, angle float64, svg []byte) error
}

// GitInfo reports version-control metadata for a working directory.
type GitInfo interface {
	CommitHash(dir string) (string, error)
}
