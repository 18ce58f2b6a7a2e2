// Package config resolves settings for the scalars CLI.
//
// Precedence, highest first: changed command-line flags, SCALARS_* env vars
// (a .env file may supply them), the config file, built-in defaults. The
// defaults reproduce the classic exercises exactly.
//
// The temperature range is decoded but not validated here: only the
// subcommands that walk it check it, so a bad step does not break the
// others.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/scalars/internal/logger"
	"github.com/idilsaglam/scalars/internal/temperature"
)

const (
	EnvPrefix      = "SCALARS"
	configName     = "scalars"
	defaultEnvFile = ".env"
)

// Setting keys.
const (
	KeyTheme     = "theme"
	KeyNoColor   = "no_color"
	KeyLogLevel  = "log_level"
	KeyPolicy    = "temperature.policy"
	KeyLower     = "temperature.lower"
	KeyUpper     = "temperature.upper"
	KeyStep      = "temperature.step"
	defaultTheme = "classic"
)

// flagKeys maps root flag names onto setting keys.
var flagKeys = map[string]string{
	"theme":     KeyTheme,
	"no-color":  KeyNoColor,
	"log-level": KeyLogLevel,
}

// Options control where settings are read from.
type Options struct {
	ConfigFile string         // explicit file; must exist when set
	EnvFile    string         // defaults to .env; missing is fine
	Flags      *pflag.FlagSet // root flags, may be nil
}

// Temperature holds the conversion table parameters.
type Temperature struct {
	Policy temperature.Policy
	Range  temperature.Range
}

// Settings is the resolved configuration.
type Settings struct {
	Theme       string
	NoColor     bool
	LogLevel    string
	Temperature Temperature
	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

// Defaults returns settings that match the standalone programs.
func Defaults() Settings {
	return Settings{
		Theme:    defaultTheme,
		LogLevel: logger.WarnLevel,
		Temperature: Temperature{
			Policy: temperature.FloatDescending,
			Range:  temperature.DefaultRange(),
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyPolicy, d.Temperature.Policy.String())
	v.SetDefault(KeyLower, d.Temperature.Range.Lower)
	v.SetDefault(KeyUpper, d.Temperature.Range.Upper)
	v.SetDefault(KeyStep, d.Temperature.Range.Step)
}

// Load resolves settings from all sources.
func Load(opt Options) (Settings, error) {
	envFile := opt.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opt.ConfigFile != "" {
		v.SetConfigFile(opt.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opt.ConfigFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	if opt.Flags != nil {
		for name, key := range flagKeys {
			f := opt.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	policy, err := temperature.ParsePolicy(v.GetString(KeyPolicy))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyPolicy, err)
	}
	rng := temperature.Range{
		Lower: v.GetInt(KeyLower),
		Upper: v.GetInt(KeyUpper),
		Step:  v.GetInt(KeyStep),
	}

	return Settings{
		Theme:       strings.ToLower(v.GetString(KeyTheme)),
		NoColor:     v.GetBool(KeyNoColor),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		Temperature: Temperature{Policy: policy, Range: rng},
		ConfigFile:  v.ConfigFileUsed(),
	}, nil
}
