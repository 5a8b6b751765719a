package model

// ProjectAssignment is the employee-project junction row. Composite key,
// no lifecycle of its own: rows are replaced wholesale when a project's
// assignment set is edited.
type ProjectAssignment struct {
	ProjectID  uint `gorm:"primaryKey" json:"project_id"`
	EmployeeID uint `gorm:"primaryKey" json:"employee_id"`
}

func (ProjectAssignment) TableName() string { return "project_assignments" }
