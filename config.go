package textpath

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/textpath/text"
)

// DefaultCacheSize is the number of layouts an Engine memoizes when the
// configuration does not say otherwise.
const DefaultCacheSize = 64

// Config describes an Engine: fonts, the global fallback, named documents
// and layout tuning. It is usually read from a TOML or YAML file:
//
//	global_fallback = "regular"
//
//	[layout]
//	padding = 12
//	line_height = 1.25
//
//	[[font]]
//	id = "regular"
//	src = "builtin:goregular"
//
//	[[font]]
//	id = "serif"
//	src = "fonts/Serif-VF.ttf"
//	kind = "variable"
//	variations = { wght = 600 }
//
//	[[document]]
//	name = "greeting"
//	text = "Hello\nשלום"
//	fonts = ["serif", "regular"]
//	fallback = "regular"
//	halign = "normal"
//	valign = "center"
type Config struct {
	Layout         LayoutSection    `toml:"layout" yaml:"layout"`
	GlobalFallback string           `toml:"global_fallback" yaml:"global_fallback"`
	Fonts          []FontConfig     `toml:"font" yaml:"font"`
	Documents      []DocumentConfig `toml:"document" yaml:"document"`

	// BaseDir resolves relative font paths. LoadConfig sets it to the
	// directory of the config file.
	BaseDir string `toml:"-" yaml:"-"`
}

// LayoutSection tunes the layout. Unset values keep the defaults.
type LayoutSection struct {
	Padding    *float64 `toml:"padding" yaml:"padding"`
	LineHeight *float64 `toml:"line_height" yaml:"line_height"`

	// KeepEmptyGlyphs emits "" for glyphs without an outline.
	KeepEmptyGlyphs bool `toml:"keep_empty_glyphs" yaml:"keep_empty_glyphs"`

	// Outlines selects the outline provider: "gotext" (default) or "sfnt".
	Outlines string `toml:"outlines" yaml:"outlines"`

	// Language is the BCP 47 tag passed to the shaper ("" means English).
	Language string `toml:"language" yaml:"language"`

	// CacheSize bounds the layout cache; 0 disables it.
	CacheSize *int `toml:"cache_size" yaml:"cache_size"`
}

// FontConfig registers one font.
type FontConfig struct {
	ID  string `toml:"id" yaml:"id"`
	Src string `toml:"src" yaml:"src"`
	// Kind is "static" (default) or "variable".
	Kind       string             `toml:"kind" yaml:"kind"`
	Variations map[string]float32 `toml:"variations" yaml:"variations"`
}

// DocumentConfig is a named document.
type DocumentConfig struct {
	Name     string   `toml:"name" yaml:"name"`
	Text     string   `toml:"text" yaml:"text"`
	Fonts    []string `toml:"fonts" yaml:"fonts"`
	Fallback string   `toml:"fallback" yaml:"fallback"`
	HAlign   string   `toml:"halign" yaml:"halign"`
	VAlign   string   `toml:"valign" yaml:"valign"`
}

// DefaultConfig returns a configuration with the Go Regular font as the
// only font and global fallback, and no documents.
func DefaultConfig() Config {
	return Config{
		GlobalFallback: "regular",
		Fonts: []FontConfig{
			{ID: "regular", Src: BuiltinPrefix + "goregular"},
		},
	}
}

// LoadConfig reads a configuration file. Files ending in .yaml or .yml are
// read as YAML, anything else as TOML.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("textpath: read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseConfigYAML(data)
	default:
		cfg, err = ParseConfig(data)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes a TOML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("textpath: parse config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("textpath: parse config: %w", err)
	}
	return cfg, nil
}

// ParseConfigYAML decodes a YAML configuration. Unknown keys are rejected.
func ParseConfigYAML(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("textpath: parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration without loading any font.
func (c *Config) Validate() error {
	if c.GlobalFallback == "" {
		return &ConfigError{Field: "global_fallback", Reason: "must be set"}
	}

	l := c.Layout
	if l.Padding != nil && *l.Padding < 0 {
		return &ConfigError{Field: "layout.padding", Reason: "must not be negative"}
	}
	if l.LineHeight != nil && *l.LineHeight <= 0 {
		return &ConfigError{Field: "layout.line_height", Reason: "must be positive"}
	}
	if l.CacheSize != nil && *l.CacheSize < 0 {
		return &ConfigError{Field: "layout.cache_size", Reason: "must not be negative"}
	}
	if _, err := outlineProvider(l.Outlines); err != nil {
		return err
	}

	ids := make(map[string]bool, len(c.Fonts))
	for i, f := range c.Fonts {
		field := fmt.Sprintf("font[%d]", i)
		if f.ID == "" {
			return &ConfigError{Field: field + ".id", Reason: "must be set"}
		}
		if ids[f.ID] {
			return &ConfigError{Field: field + ".id", Reason: fmt.Sprintf("duplicate id %q", f.ID)}
		}
		ids[f.ID] = true
		if f.Src == "" {
			return &ConfigError{Field: field + ".src", Reason: "must be set"}
		}
		if _, err := parseFontKind(f.Kind); err != nil {
			return &ConfigError{Field: field + ".kind", Reason: err.Error()}
		}
		for tag := range f.Variations {
			if len(tag) != 4 {
				return &ConfigError{Field: field + ".variations", Reason: fmt.Sprintf("tag %q is not 4 characters", tag)}
			}
		}
	}
	if !ids[c.GlobalFallback] {
		return &ConfigError{Field: "global_fallback", Reason: fmt.Sprintf("font %q is not configured", c.GlobalFallback)}
	}

	names := make(map[string]bool, len(c.Documents))
	for i, d := range c.Documents {
		field := fmt.Sprintf("document[%d]", i)
		if d.Name == "" {
			return &ConfigError{Field: field + ".name", Reason: "must be set"}
		}
		if names[d.Name] {
			return &ConfigError{Field: field + ".name", Reason: fmt.Sprintf("duplicate name %q", d.Name)}
		}
		names[d.Name] = true
		if _, ok := text.ParseAlignment(d.HAlign); !ok {
			return &ConfigError{Field: field + ".halign", Reason: fmt.Sprintf("unknown alignment %q", d.HAlign)}
		}
		if _, ok := text.ParseAlignment(d.VAlign); !ok {
			return &ConfigError{Field: field + ".valign", Reason: fmt.Sprintf("unknown alignment %q", d.VAlign)}
		}
	}
	return nil
}

func parseFontKind(s string) (text.FontKind, error) {
	switch strings.ToLower(s) {
	case "", "static":
		return text.FontStatic, nil
	case "variable":
		return text.FontVariable, nil
	default:
		return text.FontStatic, fmt.Errorf("unknown font kind %q", s)
	}
}

func outlineProvider(name string) (text.OutlineProvider, error) {
	switch strings.ToLower(name) {
	case "", "gotext":
		return text.GoTextOutlines{}, nil
	case "sfnt":
		return text.NewSfntOutlines(), nil
	default:
		return nil, &ConfigError{Field: "layout.outlines", Reason: fmt.Sprintf("unknown provider %q", name)}
	}
}

// fontSpecs loads the font files. Validate must have passed.
func (c *Config) fontSpecs() ([]text.FontSpec, error) {
	specs := make([]text.FontSpec, 0, len(c.Fonts))
	for _, f := range c.Fonts {
		data, err := LoadFontData(f.Src, c.BaseDir)
		if err != nil {
			return nil, &text.FontError{ID: f.ID, Reason: "cannot load " + f.Src, Err: err}
		}
		kind, _ := parseFontKind(f.Kind)

		tags := slices.Sorted(maps.Keys(f.Variations))
		vars := make([]text.Variation, 0, len(tags))
		for _, tag := range tags {
			vars = append(vars, text.Variation{Tag: tag, Value: f.Variations[tag]})
		}

		specs = append(specs, text.FontSpec{
			ID:         f.ID,
			Data:       data,
			Kind:       kind,
			Variations: vars,
		})
	}
	return specs, nil
}

// layoutOptions converts the layout section. Validate must have passed.
func (c *Config) layoutOptions() []text.LayoutOption {
	l := c.Layout
	opts := []text.LayoutOption{
		text.WithEmptyGlyphs(l.KeepEmptyGlyphs),
		text.WithShaper(text.NewHarfbuzzShaper(l.Language)),
	}
	if l.Padding != nil {
		opts = append(opts, text.WithPadding(*l.Padding))
	}
	if l.LineHeight != nil {
		opts = append(opts, text.WithLineHeightRatio(*l.LineHeight))
	}
	if p, err := outlineProvider(l.Outlines); err == nil {
		opts = append(opts, text.WithOutlineProvider(p))
	}
	return opts
}

func (c *Config) cacheSize() int {
	if c.Layout.CacheSize == nil {
		return DefaultCacheSize
	}
	return *c.Layout.CacheSize
}

// document converts a document entry. Validate must have passed.
func (d DocumentConfig) document() *text.Document {
	h, _ := text.ParseAlignment(d.HAlign)
	v, _ := text.ParseAlignment(d.VAlign)
	return &text.Document{
		Text:                d.Text,
		ParagraphFonts:      slices.Clone(d.Fonts),
		FallbackFont:        d.Fallback,
		HorizontalAlignment: h,
		VerticalAlignment:   v,
	}
}
