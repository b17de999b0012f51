package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-certgen/internal/fileutil"
	"github.com/alnah/go-certgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096
	MaxPrefixLength = 100
	MaxDateLength   = 50
	MaxSheetLength  = 31 // Excel's own sheet name limit
)

// Font size bounds in pixels.
const (
	MinFontSize = 1.0
	MaxFontSize = 1000.0
)

// Default certificate file name prefix for full certificates.
const DefaultPrefix = "Internship_Completion_Certificate"

// DefaultFallbackDate is drawn when a record lacks a date fragment.
const DefaultFallbackDate = "Date Not Available"

// Config holds all configuration for one certificate run.
type Config struct {
	Files       FilesConfig       `yaml:"files"`
	Font        FontConfig        `yaml:"font"`
	Position    PositionConfig    `yaml:"position"`
	Certificate CertificateConfig `yaml:"certificate"`
	Log         LogConfig         `yaml:"log"`
}

// FilesConfig locates inputs and outputs.
type FilesConfig struct {
	Participants string `yaml:"participants"` // .xlsx or .csv
	Sheet        string `yaml:"sheet"`        // Empty = first sheet
	Template     string `yaml:"template"`
	OutputDir    string `yaml:"outputDir"`
	LogFile      string `yaml:"logFile"`
}

// FontConfig defines text styling.
type FontConfig struct {
	Path     string  `yaml:"path"` // Empty = embedded Go font
	Bold     bool    `yaml:"bold"` // Embedded font weight, ignored with Path
	Color    []int   `yaml:"color,flow"`
	NameSize float64 `yaml:"nameSize"`
	DateSize float64 `yaml:"dateSize"`
}

// Offset is a pixel displacement from the centred text position.
// Positive X moves right, positive Y moves down.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PositionConfig holds text offsets.
type PositionConfig struct {
	Name     Offset `yaml:"name"`
	DateFrom Offset `yaml:"dateFrom"`
	DateTo   Offset `yaml:"dateTo"`
}

// CertificateConfig defines output naming and content options.
type CertificateConfig struct {
	Prefix       string `yaml:"prefix"`       // Empty = "{name}.png"
	PDF          bool   `yaml:"pdf"`          // Also write a PDF next to the PNG
	TitleCase    bool   `yaml:"titleCase"`    // "john DOE" -> "John Doe"
	FallbackDate string `yaml:"fallbackDate"` // Literal, "auto" or "auto:FORMAT"
}

// LogConfig defines log sinks.
type LogConfig struct {
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // console, json
	Console bool   `yaml:"console"`
	File    bool   `yaml:"file"`
}

// DefaultFullConfig returns defaults for name-and-dates certificates.
func DefaultFullConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Participants: "certificate_prospects/health_interns.xlsx",
			Template:     "templates/template1.png",
			OutputDir:    "generated_certificates/",
			LogFile:      "certificate_generation.log",
		},
		Font: defaultFont(),
		Position: PositionConfig{
			Name:     Offset{X: 100, Y: -78},
			DateFrom: Offset{X: 130, Y: 80},
			DateTo:   Offset{X: 535, Y: 80},
		},
		Certificate: CertificateConfig{
			Prefix:       DefaultPrefix,
			PDF:          true,
			TitleCase:    true,
			FallbackDate: DefaultFallbackDate,
		},
		Log: defaultLog(),
	}
}

// DefaultSimpleConfig returns defaults for name-only certificates.
func DefaultSimpleConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Participants: "certificate_prospects/Interns Datails copy.xlsx",
			Template:     "templates/template1-1.png",
			OutputDir:    "generated_certificates/",
			LogFile:      "certificate_generation.log",
		},
		Font: defaultFont(),
		Position: PositionConfig{
			Name: Offset{X: 7, Y: -78},
		},
		Certificate: CertificateConfig{
			TitleCase:    true,
			FallbackDate: DefaultFallbackDate,
		},
		Log: defaultLog(),
	}
}

func defaultFont() FontConfig {
	return FontConfig{
		Bold:     true,
		Color:    []int{253, 102, 68},
		NameSize: 120,
		DateSize: 48,
	}
}

func defaultLog() LogConfig {
	return LogConfig{
		Level:   "info",
		Format:  "console",
		Console: true,
		File:    true,
	}
}

// Validate checks ranges and field lengths.
// Called automatically by LoadConfig, but available for callers that
// build or patch a Config themselves (env overrides, flags).
func (c *Config) Validate() error {
	if c.Files.Participants == "" {
		return fmt.Errorf("%w: files.participants is required", ErrInvalidValue)
	}
	if c.Files.Template == "" {
		return fmt.Errorf("%w: files.template is required", ErrInvalidValue)
	}
	if c.Files.OutputDir == "" {
		return fmt.Errorf("%w: files.outputDir is required", ErrInvalidValue)
	}
	for name, value := range map[string]string{
		"files.participants": c.Files.Participants,
		"files.template":     c.Files.Template,
		"files.outputDir":    c.Files.OutputDir,
		"files.logFile":      c.Files.LogFile,
		"font.path":          c.Font.Path,
	} {
		if err := validateFieldLength(name, value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("files.sheet", c.Files.Sheet, MaxSheetLength); err != nil {
		return err
	}

	if len(c.Font.Color) != 3 {
		return fmt.Errorf("%w: font.color must have 3 components, got %d", ErrInvalidValue, len(c.Font.Color))
	}
	for i, v := range c.Font.Color {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: font.color[%d] must be between 0 and 255, got %d", ErrInvalidValue, i, v)
		}
	}
	if err := validateFontSize("font.nameSize", c.Font.NameSize); err != nil {
		return err
	}
	if err := validateFontSize("font.dateSize", c.Font.DateSize); err != nil {
		return err
	}

	if err := validateFieldLength("certificate.prefix", c.Certificate.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Certificate.Prefix, "/\\\x00") {
		return fmt.Errorf("%w: certificate.prefix must not contain path separators", ErrInvalidValue)
	}
	if err := validateFieldLength("certificate.fallbackDate", c.Certificate.FallbackDate, MaxDateLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}
	if c.Log.File && c.Files.LogFile == "" {
		return fmt.Errorf("%w: files.logFile is required when log.file is enabled", ErrInvalidValue)
	}

	return nil
}

func validateFontSize(fieldName string, size float64) error {
	if size < MinFontSize || size > MaxFontSize {
		return fmt.Errorf("%w: %s must be between %.0f and %.0f, got %.2f",
			ErrInvalidValue, fieldName, MinFontSize, MaxFontSize, size)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads a config file over a copy of defaults.
// Keys absent from the file keep their default value.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string, defaults *Config) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := defaults.Clone()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Font.Color = append([]int(nil), c.Font.Color...)
	return &out
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// the current directory, then the user config directory (go-certgen/),
// each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-certgen", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
