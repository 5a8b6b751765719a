package model

import "time"

// Report summarizes a finished project. The lifecycle flow creates one when a
// project is finished; administrators can also manage reports directly.
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReportDate time.Time `gorm:"type:date" json:"report_date"`
	Value      float64   `json:"value"`
	TotalHours int       `json:"total_hours"`
	ProjectID  uint      `gorm:"not null;index" json:"project_id"`
	Version    int       `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Report <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Report) TableName() string { return "reports" }
