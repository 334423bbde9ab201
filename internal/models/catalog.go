package models

// Catalog records are read-only reference data supplied externally.
// The aggregator and validator consume them by exact-name lookup only.

type Hotel struct {
	Name        string   `yaml:"name" json:"name"`
	Location    string   `yaml:"location" json:"location"`
	Price       int64    `yaml:"price" json:"price"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Image       string   `yaml:"image" json:"image"`
	Description string   `yaml:"description" json:"description"`
	Amenities   []string `yaml:"amenities" json:"amenities"`
}

type Guide struct {
	ID             int64    `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Specialty      string   `yaml:"specialty" json:"specialty"`
	Image          string   `yaml:"image" json:"image"`
	Bio            string   `yaml:"bio" json:"bio"`
	Languages      []string `yaml:"languages" json:"languages"`
	Experience     int      `yaml:"experience" json:"experience"`
	Tagline        string   `yaml:"tagline" json:"tagline"`
	VerificationID string   `yaml:"verification_id" json:"verification_id"`
}

type Place struct {
	Name        string `yaml:"name" json:"name"`
	Location    string `yaml:"location" json:"location"`
	Image       string `yaml:"image" json:"image"`
	Description string `yaml:"description" json:"description"`
}

type Market struct {
	Name         string   `yaml:"name" json:"name"`
	Location     string   `yaml:"location" json:"location"`
	Image        string   `yaml:"image" json:"image"`
	Description  string   `yaml:"description" json:"description"`
	PopularItems []string `yaml:"popular_items" json:"popular_items"`
}

type EmergencyContact struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
}

// Notice board entry shown on the home surface.
type BoardNotice struct {
	Name        string `yaml:"name" json:"name"`
	Date        string `yaml:"date" json:"date"`
	Description string `yaml:"description" json:"description"`
	Type        string `yaml:"type" json:"type"`
}
