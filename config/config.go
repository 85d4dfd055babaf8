// Package config loads calculator settings from a YAML file.
//
// A config file looks like:
//
//	angle: rad
//	verbose: false
//	echo: true
//	prompt: "calc> "
//
// Every key is optional.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	calculator "github.com/digitalwithgovinda/advanced-calculator"
)

// Config is the set of calculator settings.
type Config struct {
	// Angle is the initial angle mode.
	Angle calculator.AngleMode
	// Verbose enables debug logging of each evaluation.
	Verbose bool
	// Echo prints the postfix form of each expression before its result.
	Echo bool
	// Prompt is the interactive prompt.
	Prompt string
}

// file is the YAML form of a Config.
type file struct {
	Angle   string `yaml:"angle"`
	Verbose bool   `yaml:"verbose"`
	Echo    bool   `yaml:"echo"`
	Prompt  string `yaml:"prompt"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{Angle: calculator.Degrees, Prompt: "> "}
}

// DefaultPath returns the config file location used when none is given,
// calc/config.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calc", "config.yaml"), nil
}

// Load reads settings from the file at path. If path is empty, Load uses
// DefaultPath, and a missing file there gives the defaults rather than an
// error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads settings in YAML from r. Keys that are not set keep their
// default values, and unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	d := Default()
	raw := file{Angle: d.Angle.String(), Prompt: d.Prompt}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	mode, err := calculator.ParseAngleMode(raw.Angle)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Angle:   mode,
		Verbose: raw.Verbose,
		Echo:    raw.Echo,
		Prompt:  raw.Prompt,
	}, nil
}
