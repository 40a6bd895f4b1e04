package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Site
		Import
		Fetch
		Log
	}

	Site struct {
		SrcPath    string // Site root holding the "content" directory
		PostLayout string
		PageLayout string
	}
	Import struct {
		DryRun         bool
		FetchResources bool
		ResourcePath   string // Directory below "content" for fetched resources
		NotReplaceURLs bool
	}
	Fetch struct {
		Timeout      time.Duration
		UserAgent    string
		MaxRetries   int
		MaxBodyBytes int64
	}
	Log struct {
		Verbose bool
	}
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("src", DefaultSrcPath)
	v.SetDefault("post_layout", "")
	v.SetDefault("page_layout", "")

	v.SetDefault("dry_run", false)
	v.SetDefault("fetch_resources", false)
	v.SetDefault("resource_path", DefaultResourcePath)
	v.SetDefault("not_replace_urls", false)

	v.SetDefault("fetch_timeout", "30s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("fetch_max_retries", 2)
	v.SetDefault("fetch_max_body_bytes", 64<<20) // 64 MiB

	v.SetDefault("verbose", false)

	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Site: Site{
			SrcPath:    v.GetString("src"),
			PostLayout: v.GetString("post_layout"),
			PageLayout: v.GetString("page_layout"),
		},
		Import: Import{
			DryRun:         v.GetBool("dry_run"),
			FetchResources: v.GetBool("fetch_resources"),
			ResourcePath:   v.GetString("resource_path"),
			NotReplaceURLs: v.GetBool("not_replace_urls"),
		},
		Fetch: Fetch{
			Timeout:      v.GetDuration("fetch_timeout"),
			UserAgent:    v.GetString("user_agent"),
			MaxRetries:   v.GetInt("fetch_max_retries"),
			MaxBodyBytes: v.GetInt64("fetch_max_body_bytes"),
		},
		Log: Log{
			Verbose: v.GetBool("verbose"),
		},
	}
}

// Load builds the configuration from, in increasing precedence, defaults,
// the config file, environment variables and the changed flags of flags.
// Flag names map to keys by replacing dashes with underscores.
//
// When configFile is empty an optional spress-import.yaml in the working
// directory is used. An explicit configFile must exist.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}
