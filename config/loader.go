package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/metro-indexer/utils"
)

// Defaults returns the configuration used when nothing else is set.
// Input and output live in baseDir.
func Defaults(baseDir string) AppConfig {
	return AppConfig{
		Input:    filepath.Join(baseDir, DefaultInputName),
		Output:   filepath.Join(baseDir, DefaultOutputName),
		Indent:   2,
		LogLevel: "info",
	}
}

// Load builds and validates the configuration for baseDir.
//
// When path is set the file must exist. Otherwise metro-indexer.yml is looked
// up in baseDir and then in the working directory, and a missing file is not
// an error. Relative paths inside the file are resolved against the file's
// directory.
func Load(baseDir, path string) (AppConfig, error) {
	cfg := Defaults(baseDir)

	if err := applyFile(&cfg, baseDir, path); err != nil {
		return AppConfig{}, err
	}

	// .env never overrides variables already present in the environment
	_ = godotenv.Load(filepath.Join(baseDir, EnvFileName))
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks field constraints
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyFile(cfg *AppConfig, baseDir, path string) error {
	paths := []string{path}
	if path == "" {
		paths = []string{filepath.Join(baseDir, FileName), FileName}
	}

	var data []byte
	var err error
	var found string
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			found = p
			break
		}
	}
	if found == "" {
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", found, err)
	}

	dir := filepath.Dir(found)
	if fc.Input != nil {
		cfg.Input = utils.ResolvePath(dir, *fc.Input)
	}
	if fc.Output != nil {
		cfg.Output = utils.ResolvePath(dir, *fc.Output)
	}
	if fc.Indent != nil {
		cfg.Indent = *fc.Indent
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*fc.LogLevel)
	}
	if fc.ReportUnmatched != nil {
		cfg.ReportUnmatched = *fc.ReportUnmatched
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvReportUnmatched); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReportUnmatched, err)
		}
		cfg.ReportUnmatched = b
	}
	return nil
}
