package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// パスワードを含まない公開用ユーザー
type SanitizedUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

func (u *User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
