package model

import "time"

// CheckInUniqueIndex is the storage-level guarantee of one check-in per user per day.
const CheckInUniqueIndex = "unique_user_date"

// CheckInModel mirrors the 'checkins' table.
type CheckInModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      string    `gorm:"type:varchar(255);not null;uniqueIndex:unique_user_date,priority:1"`
	CheckInDate time.Time `gorm:"type:date;not null;uniqueIndex:unique_user_date,priority:2;index:idx_checkins_date_time,priority:1"`
	CheckInTime time.Time `gorm:"not null;index:idx_checkins_date_time,priority:2"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	PhotoData   *string   `gorm:"type:text"`

	User UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "checkins"
}

// CheckInEntryRow is the projection of a check-in joined with its owner.
type CheckInEntryRow struct {
	ID          int64
	UserID      string
	CheckInDate time.Time
	CheckInTime time.Time
	PhotoData   *string
	UserName    string
	UserPicture *string
}
