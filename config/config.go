package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/identitykit/aadhaar-extract/pkg/document"
	"github.com/identitykit/aadhaar-extract/pkg/extractor"
	"github.com/identitykit/aadhaar-extract/pkg/provider/google"
	"github.com/identitykit/aadhaar-extract/pkg/raster"

	"gopkg.in/yaml.v3"
)

const defaultModel = "gemini-1.5-flash"

type Config struct {
	Address string

	ScratchDir string

	Logger *slog.Logger

	Validator *document.Validator
	Renderer  raster.Renderer
	Extractor *extractor.Extractor
}

// Parse loads the configuration file at path and builds the service
// components. A missing file is not an error: everything falls back to
// environment variables. A missing API key is accepted too; the first
// extraction call will fail instead (surfaced as a 500).
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	if file.Address == "" {
		file.Address = envString("ADDRESS", ":8000")
	}

	if file.ScratchDir == "" {
		file.ScratchDir = envString("SCRATCH_DIR", ".")
	}

	if file.Provider.Model == "" {
		file.Provider.Model = envString("GEMINI_MODEL", defaultModel)
	}

	if file.Provider.Token == "" {
		file.Provider.Token = os.Getenv("GOOGLE_API_KEY")
	}

	if file.ValidateSchema == nil {
		val := envBool("VALIDATE_SCHEMA", false)
		file.ValidateSchema = &val
	}

	completer, err := google.NewCompleter(file.Provider.Model, google.WithToken(file.Provider.Token))

	if err != nil {
		return nil, err
	}

	var options []extractor.Option

	if *file.ValidateSchema {
		options = append(options, extractor.WithSchemaValidation())
	}

	c := &Config{
		Address: file.Address,

		ScratchDir: file.ScratchDir,

		Logger: slog.Default(),

		Validator: document.NewValidator(),
		Renderer:  raster.NewRenderer(),
		Extractor: extractor.New(completer, options...),
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	ScratchDir string `yaml:"scratch_dir"`

	ValidateSchema *bool `yaml:"validate_schema"`

	Provider providerConfig `yaml:"provider"`
}

type providerConfig struct {
	Token string `yaml:"token"`
	Model string `yaml:"model"`
}

func parseFile(path string) (*configFile, error) {
	var config configFile

	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)

	if errors.Is(err, fs.ErrNotExist) {
		return &config, nil
	}

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}

	return fallback
}
