package config

// Environment and config file conventions
const (
	// EnvPrefix prefixes every environment variable, e.g. SPRESS_SRC.
	EnvPrefix = "SPRESS"

	// ConfigName is the config file looked up in the working directory (spress-import.yaml).
	ConfigName = "spress-import"
)

// Import defaults
const (
	DefaultSrcPath      = "./src"
	DefaultResourcePath = "assets"
	DefaultUserAgent    = "Mozilla/5.0 spress-import"
)
