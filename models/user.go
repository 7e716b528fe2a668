package models

import (
	"time"
)

// Role defines the access levels in the system
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// Country partitions all tenant data; every non-admin caller is
// confined to records matching their own country
type Country string

const (
	CountryIndia   Country = "INDIA"
	CountryAmerica Country = "AMERICA"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'MEMBER'"`
	Country      Country   `json:"country" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidCountry reports whether c is one of the supported countries
func ValidCountry(c Country) bool {
	switch c {
	case CountryIndia, CountryAmerica:
		return true
	}
	return false
}
