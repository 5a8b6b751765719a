package model

import "time"

type Client struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	TaxID   string `gorm:"type:varchar(20);not null" json:"tax_id"`
	Address string `gorm:"type:varchar(300)" json:"address"`
	Email   string `gorm:"type:varchar(100)" json:"email"`
	Version int    `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Client <-> Project
	Projects []Project `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"projects,omitempty"`

	// Client <-> Contract
	Contracts []Contract `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"contracts,omitempty"`
}

func (Client) TableName() string { return "clients" }
