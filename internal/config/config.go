package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config file names looked up in the working directory, in order
var configFiles = []string{"sitetidy.yaml", "sitetidy.yml", "sitetidy.properties"}

// Config holds everything a run needs to know about the site layout
type Config struct {
	Styles       string       `yaml:"styles"`
	HTML         []string     `yaml:"html"`
	KeepElements []string     `yaml:"keep_elements"`
	EventAttrs   []string     `yaml:"event_attributes"`
	Backups      BackupConfig `yaml:"backups"`
	Outputs      OutputConfig `yaml:"outputs"`
	Buckets      BucketConfig `yaml:"buckets"`
	Minify       MinifyConfig `yaml:"minify"`
	Source       string       `yaml:"-"`
}

// BackupConfig holds the suffixes appended to a file's path for its snapshot
type BackupConfig struct {
	Clean       string `yaml:"clean"`
	Optimize    string `yaml:"optimize"`
	Externalize string `yaml:"externalize"`
}

// OutputConfig names every artifact a run may write
type OutputConfig struct {
	MinifiedStyles string `yaml:"minified_styles"`
	Scripts        string `yaml:"scripts"`
	MinifiedScript string `yaml:"minified_scripts"`
	CleanScript    string `yaml:"clean_scripts"`
	Extracted      string `yaml:"extracted"`
	Optimized      string `yaml:"optimized"`
	Minified       string `yaml:"minified"`
	Report         string `yaml:"report"`
}

// BucketConfig holds the signatures that sort script blocks into buckets
type BucketConfig struct {
	DOMReady string `yaml:"dom_ready"`
	Function string `yaml:"function"`
	Event    string `yaml:"event"`
}

// MinifyConfig selects the minification engine ("regex" or "tdewolff")
type MinifyConfig struct {
	Engine string `yaml:"engine"`
}

// DefaultKeepElements are the element names whose presence anywhere in a
// selector keeps the rule.
var DefaultKeepElements = []string{
	"*", "html", "body", "a", "img", "p", "h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "li", "ol", "div", "span", "section", "header", "footer", "nav",
	"main", "article", "aside", "button", "input", "form", "table", "tr", "td", "th",
}

// DefaultEventAttrs are the inline handler attributes scanned for script code
var DefaultEventAttrs = []string{
	"onclick", "onload", "onchange", "onsubmit", "onmouseover", "onmouseout",
}

// Default returns the built-in configuration
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.Styles == "" {
		c.Styles = "styles.css"
	}
	if len(c.HTML) == 0 {
		c.HTML = []string{"*.html", "projects/*.html", "articles/*.html"}
	}
	if len(c.KeepElements) == 0 {
		c.KeepElements = append([]string(nil), DefaultKeepElements...)
	}
	if len(c.EventAttrs) == 0 {
		c.EventAttrs = append([]string(nil), DefaultEventAttrs...)
	}
	if c.Backups.Clean == "" {
		c.Backups.Clean = ".backup"
	}
	if c.Backups.Optimize == "" {
		c.Backups.Optimize = ".advanced_backup"
	}
	if c.Backups.Externalize == "" {
		c.Backups.Externalize = ".js_backup"
	}
	if c.Outputs.MinifiedStyles == "" {
		c.Outputs.MinifiedStyles = "styles.min.css"
	}
	if c.Outputs.Scripts == "" {
		c.Outputs.Scripts = "scripts.js"
	}
	if c.Outputs.MinifiedScript == "" {
		c.Outputs.MinifiedScript = "scripts.min.js"
	}
	if c.Outputs.CleanScript == "" {
		c.Outputs.CleanScript = "scripts_clean.js"
	}
	if c.Outputs.Extracted == "" {
		c.Outputs.Extracted = "extracted_javascript.js"
	}
	if c.Outputs.Optimized == "" {
		c.Outputs.Optimized = "optimized_javascript.js"
	}
	if c.Outputs.Minified == "" {
		c.Outputs.Minified = "minified_javascript.js"
	}
	if c.Outputs.Report == "" {
		c.Outputs.Report = "js_analysis_report.json"
	}
	if c.Buckets.DOMReady == "" {
		c.Buckets.DOMReady = "DOMContentLoaded"
	}
	if c.Buckets.Function == "" {
		c.Buckets.Function = `function\s+\w+`
	}
	if c.Buckets.Event == "" {
		c.Buckets.Event = "addEventListener"
	}
	if c.Minify.Engine == "" {
		c.Minify.Engine = "regex"
	}
}

// Load builds the configuration for dir. An explicit path wins over the
// files looked up in dir; with neither, defaults apply. A .env file in dir
// is loaded and SITETIDY_* variables override file values.
func Load(dir, path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		for _, name := range configFiles {
			candidate := filepath.Join(dir, name)
			if FileExists(candidate) {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		var err error
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			cfg, err = LoadYAML(path)
		default:
			cfg, err = LoadPropertiesFile(path)
		}
		if err != nil {
			return nil, err
		}
		cfg.Source = path
	}

	envFile := filepath.Join(dir, ".env")
	if FileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if v := strings.TrimSpace(os.Getenv("SITETIDY_ENGINE")); v != "" {
		cfg.Minify.Engine = v
	}
	if v := strings.TrimSpace(os.Getenv("SITETIDY_STYLES")); v != "" {
		cfg.Styles = v
	}

	cfg.defaults()
	return cfg, nil
}

// LoadYAML reads a YAML config file
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadPropertiesFile reads a flat key=value config file. Nested YAML keys are
// written with dots, e.g. backups.clean=.bak or minify.engine=tdewolff.
func LoadPropertiesFile(path string) (*Config, error) {
	props, err := ParseProperties(path)
	if err != nil {
		return nil, err
	}

	return &Config{
		Styles:       props.Get("styles"),
		HTML:         props.GetList("html"),
		KeepElements: props.GetList("keep_elements"),
		EventAttrs:   props.GetList("event_attributes"),
		Backups: BackupConfig{
			Clean:       props.Get("backups.clean"),
			Optimize:    props.Get("backups.optimize"),
			Externalize: props.Get("backups.externalize"),
		},
		Outputs: OutputConfig{
			MinifiedStyles: props.Get("outputs.minified_styles"),
			Scripts:        props.Get("outputs.scripts"),
			MinifiedScript: props.Get("outputs.minified_scripts"),
			CleanScript:    props.Get("outputs.clean_scripts"),
			Extracted:      props.Get("outputs.extracted"),
			Optimized:      props.Get("outputs.optimized"),
			Minified:       props.Get("outputs.minified"),
			Report:         props.Get("outputs.report"),
		},
		Buckets: BucketConfig{
			DOMReady: props.Get("buckets.dom_ready"),
			Function: props.Get("buckets.function"),
			Event:    props.Get("buckets.event"),
		},
		Minify: MinifyConfig{
			Engine: props.Get("minify.engine"),
		},
	}, nil
}
