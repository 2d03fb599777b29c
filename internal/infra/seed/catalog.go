// Package seed provides the built-in demo catalog.
package seed

import (
	_ "embed"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Menus       map[string][]menuItemSpec `yaml:"menus"`
	Restaurants []restaurantSpec          `yaml:"restaurants"`
}

type restaurantSpec struct {
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	CuisineType  string  `yaml:"cuisineType"`
	Address      string  `yaml:"address"`
	City         string  `yaml:"city"`
	ImageURL     string  `yaml:"imageUrl"`
	Rating       float64 `yaml:"rating"`
	DeliveryTime string  `yaml:"deliveryTime"`
	MinOrder     float64 `yaml:"minOrder"`
	DeliveryFee  float64 `yaml:"deliveryFee"`
}

type menuItemSpec struct {
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	Price        float64 `yaml:"price"`
	Category     string  `yaml:"category"`
	ImageURL     string  `yaml:"imageUrl"`
	IsVegetarian bool    `yaml:"isVegetarian"`
	IsSpicy      bool    `yaml:"isSpicy"`
}

// yamlCatalog decodes a YAML catalog document.
type yamlCatalog struct {
	raw []byte
	now func() time.Time
}

// NewCatalogSource returns the embedded demo catalog.
func NewCatalogSource() service.CatalogSource {
	return &yamlCatalog{raw: defaultCatalog, now: time.Now}
}

// Load builds fresh entities with new ids on every call.
func (c *yamlCatalog) Load() ([]service.SeedRestaurant, error) {
	doc, err := decodeCatalog(c.raw)
	if err != nil {
		return nil, err
	}

	now := c.now().UTC()
	out := make([]service.SeedRestaurant, 0, len(doc.Restaurants))

	for _, spec := range doc.Restaurants {
		restaurant := &entity.Restaurant{
			ID:           uuid.New(),
			Name:         spec.Name,
			Description:  spec.Description,
			CuisineType:  spec.CuisineType,
			Address:      spec.Address,
			City:         spec.City,
			ImageURL:     spec.ImageURL,
			Rating:       spec.Rating,
			DeliveryTime: spec.DeliveryTime,
			MinOrder:     spec.MinOrder,
			DeliveryFee:  spec.DeliveryFee,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		menu := make([]*entity.MenuItem, 0, len(doc.Menus[spec.CuisineType]))
		for _, item := range doc.Menus[spec.CuisineType] {
			menu = append(menu, &entity.MenuItem{
				ID:           uuid.New(),
				RestaurantID: restaurant.ID,
				Name:         item.Name,
				Description:  item.Description,
				Price:        item.Price,
				Category:     item.Category,
				ImageURL:     item.ImageURL,
				IsAvailable:  true,
				IsVegetarian: item.IsVegetarian,
				IsSpicy:      item.IsSpicy,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}

		out = append(out, service.SeedRestaurant{Restaurant: restaurant, Menu: menu})
	}

	return out, nil
}

func decodeCatalog(raw []byte) (*catalogFile, error) {
	values, err := yaml.Parser().Unmarshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse catalog yaml")
	}

	doc := &catalogFile{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           doc,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create catalog decoder")
	}

	if err := decoder.Decode(values); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	if len(doc.Restaurants) == 0 {
		return nil, errors.New("catalog has no restaurants")
	}

	return doc, nil
}
