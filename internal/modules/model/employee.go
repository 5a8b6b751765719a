package model

import "time"

type Employee struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(200);not null" json:"name"`
	TaxID    string    `gorm:"type:varchar(20);not null" json:"tax_id"`
	Position string    `gorm:"type:varchar(100)" json:"position"`
	Email    string    `gorm:"type:varchar(100)" json:"email"`
	HireDate time.Time `gorm:"type:date" json:"hire_date"`
	Active   bool      `gorm:"not null;default:true" json:"active"`
	Version  int       `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Employee <-> Project through the assignment junction table
	Projects []Project `gorm:"many2many:project_assignments;" json:"projects,omitempty"`
}

func (Employee) TableName() string { return "employees" }
