package catalog

import (
	"fmt"
	"os"

	"darshan/internal/models"

	"gopkg.in/yaml.v3"
)

// Catalog holds the read-only reference data the presentation layer renders
// and the aggregator prices against. It is loaded once and never mutated.
type Catalog struct {
	Hotels   []models.Hotel            `yaml:"hotels"`
	Guides   []models.Guide            `yaml:"guides"`
	Places   []models.Place            `yaml:"places"`
	Markets  []models.Market           `yaml:"markets"`
	Contacts []models.EmergencyContact `yaml:"contacts"`
	Notices  []models.BoardNotice      `yaml:"notices"`

	hotelsByName map[string]*models.Hotel
	guidesByName map[string]*models.Guide
}

// Load reads a catalog YAML file and indexes it for name lookup.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	c.hotelsByName = make(map[string]*models.Hotel, len(c.Hotels))
	for i := range c.Hotels {
		h := &c.Hotels[i]
		if h.Name == "" {
			return fmt.Errorf("catalog hotel at index %d has no name", i)
		}
		if _, ok := c.hotelsByName[h.Name]; ok {
			return fmt.Errorf("duplicate hotel name: %s", h.Name)
		}
		c.hotelsByName[h.Name] = h
	}

	c.guidesByName = make(map[string]*models.Guide, len(c.Guides))
	for i := range c.Guides {
		g := &c.Guides[i]
		if g.Name == "" {
			return fmt.Errorf("catalog guide at index %d has no name", i)
		}
		if _, ok := c.guidesByName[g.Name]; ok {
			return fmt.Errorf("duplicate guide name: %s", g.Name)
		}
		c.guidesByName[g.Name] = g
	}
	return nil
}

// HotelByName resolves a hotel by exact name match.
func (c *Catalog) HotelByName(name string) (*models.Hotel, bool) {
	h, ok := c.hotelsByName[name]
	return h, ok
}

// GuideByName resolves a guide by exact name match.
func (c *Catalog) GuideByName(name string) (*models.Guide, bool) {
	g, ok := c.guidesByName[name]
	return g, ok
}
