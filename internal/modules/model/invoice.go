package model

import "time"

type Invoice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InvoiceDate time.Time `gorm:"type:date" json:"invoice_date"`
	Value       float64   `json:"value"`
	ContractID  uint      `gorm:"not null;index" json:"contract_id"`
	Version     int       `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Invoice <-> Contract
	Contract *Contract `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"contract,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }
