package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

var ErrEmptySeedKey = errors.New("seed entry without id/key")

// Seed is the initial population of the library.
type Seed struct {
	Holders []SeedHolder `yaml:"holders"`
	Items   []SeedItem   `yaml:"items"`
}

// SeedHolder describes a holder to register.
type SeedHolder struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Contact  string `yaml:"contact"`
	Category string `yaml:"category"`
	Detail   string `yaml:"detail"`
}

// SeedItem describes a catalog item to add.
type SeedItem struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
}

// LoadSeed reads a yaml seed file.
func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	return ParseSeed(raw)
}

// ParseSeed decodes yaml seed data.
func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	return seed, nil
}

// BuildHolders turns the seed holders into domain holders via the category factory.
func (s Seed) BuildHolders() ([]*core.Holder, error) {
	holders := make([]*core.Holder, 0, len(s.Holders))

	for _, h := range s.Holders {
		if h.ID == "" {
			return nil, ErrEmptySeedKey
		}

		category, err := core.ParseHolderCategory(h.Category)
		if err != nil {
			return nil, fmt.Errorf("holder %s: %w", h.ID, err)
		}

		holder, err := core.BuildHolder(category, h.ID, h.Name, h.Contact, h.Detail)
		if err != nil {
			return nil, fmt.Errorf("holder %s: %w", h.ID, err)
		}

		holders = append(holders, holder)
	}

	return holders, nil
}

// BuildItems turns the seed items into available catalog items.
func (s Seed) BuildItems() ([]*core.CatalogItem, error) {
	items := make([]*core.CatalogItem, 0, len(s.Items))

	for _, i := range s.Items {
		if i.Key == "" {
			return nil, ErrEmptySeedKey
		}

		items = append(items, core.NewCatalogItem(i.Key, i.Title, i.Author, i.Category))
	}

	return items, nil
}
