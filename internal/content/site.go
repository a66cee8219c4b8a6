package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Testimonial is a quote from a mentee or mentor.
type Testimonial struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Quote string `yaml:"quote"`
}

// Feature is a titled blurb used by the differentiator and value
// proposition sections.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Role is a registration entry point.
type Role struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Path        string `yaml:"path"`
}

// Hero is the landing headline block.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

// Site is the static copy of the marketing pages.
type Site struct {
	Name            string        `yaml:"name"`
	Hero            Hero          `yaml:"hero"`
	ValueProps      []Feature     `yaml:"valueProps"`
	Differentiators []Feature     `yaml:"differentiators"`
	Testimonials    []Testimonial `yaml:"testimonials"`
	Roles           []Role        `yaml:"roles"`
}

// Role returns the registration role with the given key.
func (s Site) Role(key string) (Role, bool) {
	key = NormalizeID(key)
	for _, role := range s.Roles {
		if role.Key == key {
			return role, true
		}
	}
	return Role{}, false
}

// EmbeddedSite returns the site copy bundled with the binary.
func EmbeddedSite() (Site, error) {
	raw, err := fs.ReadFile(dataFS, "data/site.yaml")
	if err != nil {
		return Site{}, fmt.Errorf("read embedded site: %w", err)
	}
	return decodeSite(raw)
}

// LoadSite reads site copy from path, or the embedded copy when path is
// empty.
func LoadSite(path string) (Site, error) {
	if path == "" {
		return EmbeddedSite()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read site %s: %w", path, err)
	}
	return decodeSite(raw)
}

func decodeSite(raw []byte) (Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		return Site{}, fmt.Errorf("parse site: %w", err)
	}
	return site, nil
}
