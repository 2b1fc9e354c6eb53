package domain

import "time"

// ServiceOffering is a bookable service a business offers (e.g. a 60 minute
// deep tissue massage).
type ServiceOffering struct {
	ID              int64     `json:"id" gorm:"primaryKey;column:id"`
	BusinessID      int64     `json:"business_id" gorm:"column:business_id;index"`
	Name            string    `json:"name" gorm:"column:name"`
	DurationMinutes int       `json:"duration_minutes" gorm:"column:duration_minutes"`
	Price           float64   `json:"price" gorm:"column:price"`
	IsMobile        bool      `json:"is_mobile" gorm:"column:is_mobile"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ServiceOffering) TableName() string { return "services" }
