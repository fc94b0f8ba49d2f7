package models

// Category is one of the five fixed catalog sections.
type Category string

const (
	CategorySeeds       Category = "Seeds"
	CategoryFertilizers Category = "Fertilizers"
	CategoryIrrigation  Category = "Irrigation"
	CategoryEquipment   Category = "Equipment"
	CategoryOrganic     Category = "Organic"
)

// Categories lists every valid catalog section in display order.
var Categories = []Category{
	CategorySeeds,
	CategoryFertilizers,
	CategoryIrrigation,
	CategoryEquipment,
	CategoryOrganic,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is one catalog entry. Price stays a string: it is a display value
// in rupees, never arithmetic input beyond the analytics total.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
}
