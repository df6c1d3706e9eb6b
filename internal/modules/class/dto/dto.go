package dto

import "github.com/TheDemonTuan/client-score-management/pkg/listquery"

type ListClassesRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateClassRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	MaxStudents      int    `json:"max_students" binding:"required,min=1,max=500"`
	DepartmentID     int    `json:"department_id" binding:"required,min=1"`
	HostInstructorID string `json:"host_instructor_id" binding:"required"`
}

// Update keeps the owning department fixed; moving a class between
// departments is not something the dashboard offers.
type UpdateClassRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	MaxStudents      int    `json:"max_students" binding:"required,min=1,max=500"`
	HostInstructorID string `json:"host_instructor_id" binding:"required"`
}

type ClassURI struct {
	ID string `uri:"id" binding:"required"`
}
