package models

import "time"

// Product represents the 'products' table.
//
// ExternalID is set only for records created by the synchronization job;
// manually created products leave it NULL. The unique index keeps the
// external-to-local mapping injective among non-null values.
type Product struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;size:255;not null;index"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price;type:decimal(10,2);not null"`
	Category    string    `gorm:"column:category;size:128;index"`
	ExternalID  *string   `gorm:"column:external_id;size:64;uniqueIndex"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// CreateRequest is the payload for product creation.
type CreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// UpdateRequest is the payload for a product update.
// Pointer fields distinguish "not provided" from zero values.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// ListParams collects pagination and filter parameters for product listings.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// ListResponse is a paginated product listing.
type ListResponse struct {
	Products   []Product `json:"products"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
