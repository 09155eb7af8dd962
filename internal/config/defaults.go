package config

const (
	defaultCatalogPath    = "~/.local/share/substation/catalog.db"
	defaultOutputEncoding = "utf-8-sig"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

func defaultExtensions() []string {
	return []string{".ass", ".ssa"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Catalog: Catalog{
			Path:       defaultCatalogPath,
			Extensions: defaultExtensions(),
		},
		Output: Output{
			Encoding: defaultOutputEncoding,
		},
	}
}
