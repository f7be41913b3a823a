package model

import "fmt"

type User struct {
	BaseModel
	Email     string `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	FirstName string `gorm:"type:varchar(30);not null;" json:"firstName" form:"firstName" binding:"required"`
	LastName  string `gorm:"type:varchar(30);not null;" json:"lastName" form:"lastName" binding:"required"`
	Password  string `gorm:"type:text;not null" json:"-" form:"-"`
	IsAdmin   bool   `gorm:"type:boolean;default:false" json:"isAdmin"`

	Profile *Profile `json:"profile,omitempty" form:"profile"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
