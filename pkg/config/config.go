package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-raycaster/pkg/imageio"
)

// Config holds the render and publish settings.
type Config struct {
	Scene         string        `json:"scene"`
	Width         int           `json:"width"` // 0 keeps the scene's own width
	OutputDir     string        `json:"output_dir"`
	Format        string        `json:"format"`
	Scale         int           `json:"scale"`
	ThumbnailSize int           `json:"thumbnail_size"` // 0 disables thumbnails
	Publish       PublishConfig `json:"publish"`
}

// PublishConfig holds the object storage settings for uploading renders.
type PublishConfig struct {
	Enabled   bool   `json:"enabled"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Prefix    string `json:"prefix"`
	CDNURL    string `json:"cdn_url"`
}

// Flags carries command line values; zero values mean "not set".
type Flags struct {
	Scene     string
	Width     int
	OutputDir string
	Format    string
	Scale     int
	Thumbnail int
	Publish   bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scene:     "default",
		OutputDir: "output",
		Format:    string(imageio.FormatPNG),
		Scale:     1,
		Publish: PublishConfig{
			Region: "us-east-1",
			Prefix: "renders",
		},
	}
}

// Load reads a JSON config file on top of the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv applies dotenv files and the process environment. Missing files
// are skipped; process variables win over file values.
func (c *Config) LoadEnv(files ...string) error {
	fileVars := map[string]string{}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		vars, err := godotenv.Read(file)
		if err != nil {
			return fmt.Errorf("config: read env %s: %w", file, err)
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}

	return c.ApplyEnv(func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileVars[key]
		return value, ok
	})
}

// ApplyEnv overrides fields from environment variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"RAYCASTER_SCENE":      &c.Scene,
		"RAYCASTER_OUTPUT_DIR": &c.OutputDir,
		"RAYCASTER_FORMAT":     &c.Format,
		"S3_BUCKET":            &c.Publish.Bucket,
		"S3_REGION":            &c.Publish.Region,
		"S3_ENDPOINT":          &c.Publish.Endpoint,
		"S3_ACCESS_KEY":        &c.Publish.AccessKey,
		"S3_SECRET_KEY":        &c.Publish.SecretKey,
		"S3_PREFIX":            &c.Publish.Prefix,
		"CDN_URL":              &c.Publish.CDNURL,
	}
	for key, field := range strs {
		if value, ok := lookup(key); ok && value != "" {
			*field = value
		}
	}

	ints := map[string]*int{
		"RAYCASTER_WIDTH":     &c.Width,
		"RAYCASTER_SCALE":     &c.Scale,
		"RAYCASTER_THUMBNAIL": &c.ThumbnailSize,
	}
	for key, field := range ints {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", key, err)
		}
		*field = parsed
	}

	if value, ok := lookup("RAYCASTER_PUBLISH"); ok && value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: invalid RAYCASTER_PUBLISH: %w", err)
		}
		c.Publish.Enabled = enabled
	}

	return nil
}

// Resolve applies command line flags, which take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Thumbnail > 0 {
		c.ThumbnailSize = flags.Thumbnail
	}
	if flags.Publish {
		c.Publish.Enabled = true
	}
}

// ImageFormat returns the parsed output format.
func (c *Config) ImageFormat() (imageio.Format, error) {
	return imageio.ParseFormat(c.Format)
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.Scene == "" {
		return errors.New("config: scene is required")
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width must not be negative, got %d", c.Width)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale must be at least 1, got %d", c.Scale)
	}
	if c.ThumbnailSize < 0 {
		return fmt.Errorf("config: thumbnail size must not be negative, got %d", c.ThumbnailSize)
	}
	if _, err := c.ImageFormat(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Publish.Enabled && c.Publish.Bucket == "" {
		return errors.New("config: publishing requires a bucket")
	}
	return nil
}
