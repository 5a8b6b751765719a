package model

import "time"

// Project status is free text in the schema; these are the values the
// application writes and checks.
const (
	ProjectStatusPlanned    = "Planned"
	ProjectStatusInProgress = "In progress"
	ProjectStatusFinished   = "Finished"
)

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"type:date" json:"start_date"`
	EndDate     time.Time `gorm:"type:date" json:"end_date"`
	Budget      float64   `json:"budget"`
	Status      string    `gorm:"type:varchar(50)" json:"status"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	Version     int       `gorm:"not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"client,omitempty"`

	// Project <-> Employee through the assignment junction table
	Employees []Employee `gorm:"many2many:project_assignments;" json:"employees,omitempty"`

	// Project <-> Report
	Reports []Report `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"reports,omitempty"`
}

func (Project) TableName() string { return "projects" }
