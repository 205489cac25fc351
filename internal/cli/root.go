package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/capsule/internal/model"
)

// Version is set at build time
var Version = "v0.3.0"

var (
	cfgFile  string
	verbose  bool
	logLevel string
	noCache  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "capsule",
	Short: "Capsule - what things were like at a place and point in time",
	Long: `Capsule resolves historical facts (minimum wage, population, prices,
office holders, chart toppers) for a US location and date.

Each answer cites the source tier that produced it. When no source has
data the answer is "data unavailable"; values are never estimated.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "capsule %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.capsule/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable source caches (force fresh fetch)")

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, the config file and ENV variables
func initConfig() {
	// .env is optional; it usually only carries API keys
	_ = godotenv.Load()

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		return
	}
	if verbose && viper.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// envKeys are the settings that may be overridden with CAPSULE_* variables
var envKeys = []string{
	"log.level",
	"log.format",
	"cache.enabled",
	"cache.dir",
	"http.timeout",
	"http.user_agent",
	"http.http_proxy",
	"http.https_proxy",
	"http.respect_robots",
	"concurrency.workers",
	"server.addr",
	"sources.governors_csv",
	"sources.billboard_csv",
	"sources.gas_prices_csv",
	"sources.census_base_url",
	"sources.metals_base_url",
}

// readConfig points v at the config file and environment. A missing default
// config file is not an error; a missing explicit one is.
func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".capsule"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	// CAPSULE_CACHE_DIR -> cache.dir
	v.SetEnvPrefix("CAPSULE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	// API keys also accept their conventional unprefixed names
	if err := v.BindEnv("sources.census_api_key", "CAPSULE_CENSUS_API_KEY", "CENSUS_API_KEY"); err != nil {
		return fmt.Errorf("bind census key: %w", err)
	}
	if err := v.BindEnv("sources.metals_api_key", "CAPSULE_METALS_API_KEY", "METALS_API_KEY"); err != nil {
		return fmt.Errorf("bind metals key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// decodeConfig overlays file and environment settings on the defaults
func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Viper splits keys on dots, so domain_map keys (host names) come back as
	// nested maps. Decode everything else through viper and read the map from
	// the file directly.
	settings := v.AllSettings()
	if authority, ok := settings["authority"].(map[string]any); ok {
		delete(authority, "domain_map")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if file := v.ConfigFileUsed(); file != "" {
		domains, err := readDomainMap(file)
		if err != nil {
			return nil, err
		}
		if domains != nil {
			cfg.Authority.DomainMap = domains
		}
	}

	if cfg.Concurrency.Workers < 1 {
		cfg.Concurrency.Workers = 1
	}
	return cfg, nil
}

func readDomainMap(file string) (map[string]string, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var doc struct {
		Authority struct {
			DomainMap map[string]string `yaml:"domain_map"`
		} `yaml:"authority"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return doc.Authority.DomainMap, nil
}

// loadConfig returns the effective configuration with CLI flags applied
func loadConfig() (*model.Config, error) {
	cfg, err := decodeConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	} else if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
