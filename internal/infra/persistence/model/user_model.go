// Package model holds the GORM persistence models. They carry foreign-key
// columns only; relations are resolved by explicit repository queries.
package model

import "time"

// UserModel mirrors the 'users' table. ID is the identity provider subject.
type UserModel struct {
	ID        string    `gorm:"type:varchar(255);primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Picture   *string   `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
