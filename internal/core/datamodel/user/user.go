package user

import "time"

type User struct {
	Eid          string    `gorm:"column:eid;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Urid         string    `gorm:"column:urid;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserType struct {
	Urid     string `gorm:"column:urid;primaryKey"`
	UserType string `gorm:"column:user_type;not null"`
}

func (UserType) TableName() string {
	return "user_types"
}
