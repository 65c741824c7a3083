// Package config loads docpipe settings from an optional YAML file. Keys
// left out of the file keep their defaults.
//
//	course:
//	  title: Course Name
//	  objectives_intro: "After completing this course, the learner will be able to:"
//	blog:
//	  featured_image: {url: "", alt: "", title: ""}
//	  image_urls: []
//	  placeholder_url: "#"
//	output:
//	  dir: ""
//	  format: html
//	log:
//	  mode: development
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/docpipe/core/course"
	"github.com/gaurav-prasanna/docpipe/core/generate"
)

// Formats are the supported output formats.
var Formats = []string{"html", "markdown", "json", "pdf"}

var logModes = []string{"", "dev", "development", "prod", "production"}

type Config struct {
	Course CourseConfig `yaml:"course"`
	Blog   BlogConfig   `yaml:"blog"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

type CourseConfig struct {
	Title           string `yaml:"title"`
	ObjectivesIntro string `yaml:"objectives_intro"`
}

type BlogConfig struct {
	FeaturedImage  generate.FeaturedImage `yaml:"featured_image"`
	ImageURLs      []string               `yaml:"image_urls"`
	PlaceholderURL string                 `yaml:"placeholder_url"`
}

// Options returns the generator options for the blog settings.
func (b BlogConfig) Options() generate.BlogOptions {
	return generate.BlogOptions{
		Featured:       b.FeaturedImage,
		ImageURLs:      b.ImageURLs,
		PlaceholderURL: b.PlaceholderURL,
	}
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Course: CourseConfig{
			Title:           course.DefaultTitle,
			ObjectivesIntro: generate.DefaultObjectivesIntro,
		},
		Blog: BlogConfig{
			PlaceholderURL: generate.DefaultPlaceholderURL,
		},
		Output: OutputConfig{Format: "html"},
		Log:    LogConfig{Mode: "development"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and blog image URLs.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %v)", c.Output.Format, Formats)
	}
	if !slices.Contains(logModes, c.Log.Mode) {
		return fmt.Errorf("unknown log mode %q", c.Log.Mode)
	}
	return c.Blog.Validate()
}

// Validate checks every configured image URL.
func (b BlogConfig) Validate() error {
	urls := append([]string{b.FeaturedImage.URL, b.PlaceholderURL}, b.ImageURLs...)
	for _, u := range urls {
		if err := checkImageURL(u); err != nil {
			return err
		}
	}
	return nil
}
