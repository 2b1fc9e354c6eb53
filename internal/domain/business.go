package domain

import "time"

type Business struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email,omitempty" gorm:"column:email"`
	Phone     string    `json:"phone,omitempty" gorm:"column:phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Business) TableName() string { return "businesses" }

// BusinessMember links a user to a business with an operational role
// (owner, dispatcher, provider).
type BusinessMember struct {
	ID         int64     `json:"id" gorm:"primaryKey;column:id"`
	BusinessID int64     `json:"business_id" gorm:"column:business_id;index"`
	UserID     int64     `json:"user_id" gorm:"column:user_id"`
	Role       Role      `json:"role" gorm:"column:role"`
	CreatedAt  time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (BusinessMember) TableName() string { return "business_members" }
