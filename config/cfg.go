package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"sct/value"
	"sct/widget"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	FontsConfig struct {
		Default  string               `yaml:"default" validate:"required"`
		Fallback value.FallbackPolicy `yaml:"fallback" validate:"gte=0"`
		Extra    []string             `yaml:"extra" validate:"dive,required"`
	}

	ResourcesConfig struct {
		// Additional directory searched after directory of the theme file.
		Dir   string `yaml:"dir,omitempty" sanitize:"path_clean" validate:"omitempty,dir"`
		Cache bool   `yaml:"cache"`
	}

	ThemeConfig struct {
		Resources ResourcesConfig `yaml:"resources"`
		Fonts     FontsConfig     `yaml:"fonts"`
	}

	ApplyConfig struct {
		Widget string       `yaml:"widget" validate:"required"`
		Output OutputFormat `yaml:"output" validate:"gte=0"`
		// Template for the name of rendered widget image when rendering is
		// requested without explicit file name.
		RenderNameTemplate string `yaml:"render_name_template" validate:"required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Theme     ThemeConfig    `yaml:"theme"`
		Apply     ApplyConfig    `yaml:"apply"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

type TemplateFieldName string

const (
	// NOTE: must match yaml field name above
	RenderNameTemplateFieldName TemplateFieldName = "render_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(RenderNameTemplateFieldName)),
)

// decode superimposes YAML data on cfg. Only fields defined by Config are
// accepted. When final is set result is sanitized and validated.
func decode(data []byte, cfg *Config, final bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !final {
		return nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return err
	}
	return cfg.check()
}

// check validates what struct tags cannot express.
func (cfg *Config) check() error {
	if _, err := widget.ParseKind(cfg.Apply.Widget); err != nil {
		return fmt.Errorf("apply.widget: unknown widget %q, expected one of %s",
			cfg.Apply.Widget, strings.Join(widget.Kinds(), ", "))
	}
	if _, err := template.New("render").Parse(cfg.Apply.RenderNameTemplate); err != nil {
		return fmt.Errorf("apply.%s: %w", RenderNameTemplateFieldName, err)
	}
	return nil
}

// LoadConfiguration expands embedded configuration template to get defaults
// and superimposes file at path (if any) on top of them. Result is validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg := &Config{}
	if err := decode(data, cfg, path == ""); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := decode(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file '%s': %w", path, err)
	}
	return cfg, nil
}

// Prepare expands embedded configuration template, result is what program
// uses when no configuration file is given.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump returns actual configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

// FontBook builds font book described by configuration.
func (conf *FontsConfig) FontBook() *value.FontBook {
	return value.NewFontBook(conf.Default, conf.Fallback, conf.Extra...)
}
