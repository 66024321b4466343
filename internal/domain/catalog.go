package domain

import "time"

// Product represents a catalog item. Category and Specialty are denormalized
// labels matched by string equality, not foreign keys; a product may carry a
// label that exists in neither collection.
type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"index" json:"name"`
	Description string    `json:"description"`
	Price       string    `gorm:"type:decimal(10,2)" json:"price"` // decimal string, two fraction digits
	Category    string    `gorm:"index" json:"category"`
	Specialty   *string   `gorm:"index" json:"specialty"`
	ImageUrl    *string   `gorm:"size:1024" json:"imageUrl"`
	About       *string   `json:"about"`
	InStock     bool      `gorm:"default:true" json:"inStock"`
	IsOrganic   bool      `gorm:"default:true" json:"isOrganic"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Product) TableName() string {
	return "products"
}

// InsertProduct is the pre-ID shape accepted by create operations.
// Unset optional fields are backfilled by the storage layer.
type InsertProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Specialty   *string `json:"specialty"`
	ImageUrl    *string `json:"imageUrl"`
	About       *string `json:"about"`
	InStock     *bool   `json:"inStock"`
	IsOrganic   *bool   `json:"isOrganic"`
}

// Category groups products for browsing. ProductCount is a static curated
// figure seeded with the row; it is not recomputed from product membership.
type Category struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Name         string  `gorm:"index" json:"name"`
	Description  *string `json:"description"`
	ImageUrl     *string `gorm:"size:1024" json:"imageUrl"`
	ProductCount *int    `gorm:"default:0" json:"productCount"`
}

func (Category) TableName() string {
	return "categories"
}

type InsertCategory struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ImageUrl     *string `json:"imageUrl"`
	ProductCount *int    `json:"productCount"`
}

// Specialty is a care-area label (e.g. "Pain Management").
type Specialty struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"index" json:"name"`
	Description *string `json:"description"`
	ImageUrl    *string `gorm:"size:1024" json:"imageUrl"`
}

func (Specialty) TableName() string {
	return "specialties"
}

type InsertSpecialty struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl"`
}
