package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/freedance-video/workscheck/internal/branding"
	"github.com/freedance-video/workscheck/internal/images"
	"github.com/freedance-video/workscheck/internal/manifest"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const fileType = "yaml"

// Setting keys, shared by the config file, environment and overrides.
const (
	KeyManifestFile = "manifest_file"
	KeyImagesDir    = "images_dir"
	KeyLocalPrefix  = "local_prefix"
	KeyExtensions   = "extensions"
	KeyColor        = "color"
	KeyTable        = "table"
	KeyDimensions   = "dimensions"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	Dir          string   `yaml:"dir"`
	ManifestFile string   `yaml:"manifest_file"`
	ImagesDir    string   `yaml:"images_dir"`
	LocalPrefix  string   `yaml:"local_prefix"`
	Extensions   []string `yaml:"extensions"`
	Color        string   `yaml:"color"`
	Table        bool     `yaml:"table"`
	Dimensions   bool     `yaml:"dimensions"`
	// ConfigFile is the project config file that was read, if any.
	ConfigFile string `yaml:"config_file,omitempty"`
}

// Default returns the built-in settings for dir.
func Default(dir string) Settings {
	if dir == "" {
		dir = "."
	}
	return Settings{
		Dir:          dir,
		ManifestFile: manifest.DefaultFile,
		ImagesDir:    images.DefaultDir,
		LocalPrefix:  manifest.DefaultLocalPrefix,
		Extensions:   append([]string(nil), images.DefaultExtensions...),
		Color:        ColorAuto,
	}
}

// ManifestPath returns the full path of the works manifest.
func (s Settings) ManifestPath() string {
	return filepath.Join(s.Dir, s.ManifestFile)
}

// ImagesPath returns the full path of the images directory.
func (s Settings) ImagesPath() string {
	return filepath.Join(s.Dir, s.ImagesDir)
}

// YAML renders the settings as a YAML document.
func (s Settings) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling settings: %w", err)
	}
	return string(out), nil
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Dir is the working directory. Empty falls back to WORKSCHECK_DIR, then ".".
	Dir string
	// ConfigFile is an explicit config file path. It must exist when set.
	ConfigFile string
	// Overrides take precedence over every other source, keyed by setting key.
	Overrides map[string]interface{}
}

// Load resolves the settings for a run.
func Load(opts LoadOptions) (Settings, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.Getenv(branding.EnvVar("dir"))
	}
	def := Default(dir)

	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyManifestFile, def.ManifestFile)
	v.SetDefault(KeyImagesDir, def.ImagesDir)
	v.SetDefault(KeyLocalPrefix, def.LocalPrefix)
	v.SetDefault(KeyExtensions, def.Extensions)
	v.SetDefault(KeyColor, def.Color)
	v.SetDefault(KeyTable, def.Table)
	v.SetDefault(KeyDimensions, def.Dimensions)

	configFile, err := resolveConfigFile(def.Dir, opts.ConfigFile)
	if err != nil {
		return Settings{}, err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	s := Settings{
		Dir:          def.Dir,
		ManifestFile: v.GetString(KeyManifestFile),
		ImagesDir:    v.GetString(KeyImagesDir),
		LocalPrefix:  v.GetString(KeyLocalPrefix),
		Extensions:   splitList(v.GetStringSlice(KeyExtensions)),
		Color:        strings.ToLower(v.GetString(KeyColor)),
		Table:        v.GetBool(KeyTable),
		Dimensions:   v.GetBool(KeyDimensions),
		ConfigFile:   configFile,
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid %s %q (want %s, %s or %s)", KeyColor, s.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if s.ManifestFile == "" {
		return fmt.Errorf("%s must not be empty", KeyManifestFile)
	}
	if s.ImagesDir == "" {
		return fmt.Errorf("%s must not be empty", KeyImagesDir)
	}
	if len(s.Extensions) == 0 {
		return fmt.Errorf("%s must not be empty", KeyExtensions)
	}
	return nil
}

// resolveConfigFile returns the config file to read, or "" when the default
// project config file does not exist.
func resolveConfigFile(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	path := filepath.Join(dir, branding.ConfigFile())
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking config file %s: %w", path, err)
	}
	return path, nil
}

// splitList flattens comma-separated entries, as produced by environment
// variables such as WORKSCHECK_EXTENSIONS=gif,webp.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
