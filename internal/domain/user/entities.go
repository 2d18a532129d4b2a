package user

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID       string         `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name         string         `gorm:"size:128;not null" json:"name"`
	Email        string         `gorm:"size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string         `gorm:"size:72;not null" json:"-"`
	Role         Role           `gorm:"type:enum('CUSTOMER','ADMIN');default:'CUSTOMER'" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
