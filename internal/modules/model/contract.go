package model

import "time"

type Contract struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`
	Value     float64   `json:"value"`
	Status    string    `gorm:"type:varchar(50)" json:"status"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Version   int       `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Contract <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"client,omitempty"`

	// Contract <-> Project; RESTRICT so a project with contracts cannot vanish
	// underneath them.
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"project,omitempty"`

	// Contract <-> Invoice
	Invoices []Invoice `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"invoices,omitempty"`
}

func (Contract) TableName() string { return "contracts" }
