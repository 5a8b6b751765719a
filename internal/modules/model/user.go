package model

import "time"

// User is an application login. At most one of EmployeeID / ClientID is set;
// the service clears the other according to the role.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password   string `gorm:"type:varchar(100);not null" json:"-"`
	Role       string `gorm:"type:varchar(50);not null" json:"role"`
	EmployeeID *uint  `gorm:"index" json:"employee_id"`
	ClientID   *uint  `gorm:"index" json:"client_id"`
	Version    int    `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"employee,omitempty"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"client,omitempty"`
}

func (User) TableName() string { return "users" }
