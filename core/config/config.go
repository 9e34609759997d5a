package config

import (
	"fmt"
	"reflect"
	"strings"

	"inventree-sync/core/database"
	"inventree-sync/core/inventree"
	"inventree-sync/core/logger"
	"inventree-sync/core/reconcile"
	"inventree-sync/core/storage"
	"inventree-sync/feature/capacitors"
	"inventree-sync/feature/connectors"
	"inventree-sync/feature/drills"
	"inventree-sync/feature/eshop"
	"inventree-sync/feature/kicad"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Inventree holds the API connection settings.
	Inventree inventree.Config `mapstructure:"inventree"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the import journal.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the image archive.
	Storage storage.Config `mapstructure:"storage"`

	Capacitors capacitors.Config `mapstructure:"capacitors"`
	Connectors connectors.Config `mapstructure:"connectors"`
	Drills     drills.Config     `mapstructure:"drills"`
	Kicad      kicad.Config      `mapstructure:"kicad"`
	Eshop      eshop.Config      `mapstructure:"eshop"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. INVENTREE_API_HOST -> inventree.api_host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings every catalog command needs. All missing
// credentials are reported at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Inventree.APIHost == "" {
		missing = append(missing, "INVENTREE_API_HOST")
	}
	if c.Inventree.APIToken == "" {
		missing = append(missing, "INVENTREE_API_TOKEN")
	}
	if c.Inventree.TokenName == "" {
		missing = append(missing, "INVENTREE_API_TOKEN_NAME")
	}
	if len(missing) > 0 {
		return &reconcile.ConfigError{
			Setting: strings.Join(missing, ", "),
			Reason:  "not set",
		}
	}

	for name, policy := range map[string]string{
		"CAPACITORS_AMBIGUITY": c.Capacitors.Ambiguity,
		"CONNECTORS_AMBIGUITY": c.Connectors.Ambiguity,
		"ESHOP_AMBIGUITY":      c.Eshop.Ambiguity,
	} {
		if _, err := reconcile.ParseAmbiguityPolicy(policy); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
