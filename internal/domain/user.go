package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleProvider   Role = "provider"
	RoleOwner      Role = "owner"
	RoleDispatcher Role = "dispatcher"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id"`
	FullName  string    `json:"full_name" gorm:"column:full_name"`
	Email     string    `json:"email" gorm:"column:email"`
	Phone     string    `json:"phone,omitempty" gorm:"column:phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
