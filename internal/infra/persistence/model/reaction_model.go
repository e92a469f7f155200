package model

import "time"

// ReactionUniqueIndex allows one reaction per user per calendar day.
const ReactionUniqueIndex = "unique_user_reaction_per_day"

// ReactionModel mirrors the 'reactions' table.
type ReactionModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       string    `gorm:"type:varchar(255);not null;uniqueIndex:unique_user_reaction_per_day,priority:1"`
	CheckInID    int64     `gorm:"column:checkin_id;not null;index"`
	ReactionType string    `gorm:"type:varchar(10);not null;check:chk_reactions_type,reaction_type IN ('like','dislike')"`
	ReactionDate time.Time `gorm:"type:date;not null;uniqueIndex:unique_user_reaction_per_day,priority:2"`
	CreatedAt    time.Time `gorm:"not null"`

	User    UserModel    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
	CheckIn CheckInModel `gorm:"foreignKey:CheckInID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ReactionModel) TableName() string {
	return "reactions"
}

// ReactionCountRow is the per-check-in aggregate of reactions.
type ReactionCountRow struct {
	CheckInID int64 `gorm:"column:checkin_id"`
	Likes     int
	Dislikes  int
}

// All lists every model in migration order.
func All() []any {
	return []any{&UserModel{}, &CheckInModel{}, &ReactionModel{}}
}
