package domain

import (
	"strings"
	"time"
)

type Location struct {
	ID          int64     `json:"id" gorm:"primaryKey;column:id"`
	AddressLine string    `json:"address_line" gorm:"column:address_line"`
	City        string    `json:"city" gorm:"column:city"`
	State       string    `json:"state,omitempty" gorm:"column:state"`
	PostalCode  string    `json:"postal_code,omitempty" gorm:"column:postal_code"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Location) TableName() string { return "locations" }

// FormatAddress joins the non-empty address parts into a single line.
func (l *Location) FormatAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.AddressLine, l.City, l.State, l.PostalCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
