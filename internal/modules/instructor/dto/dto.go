package dto

import (
	"time"

	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type ListInstructorsRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateInstructorRequest struct {
	FirstName    string    `json:"first_name" binding:"required,min=2,max=50"`
	LastName     string    `json:"last_name" binding:"required,min=2,max=50"`
	Email        string    `json:"email" binding:"required,email"`
	Address      string    `json:"address" binding:"required,max=200"`
	BirthDay     time.Time `json:"birth_day" binding:"required"`
	Phone        string    `json:"phone" binding:"required,min=9,max=15"`
	Gender       *bool     `json:"gender" binding:"required"`
	Degree       string    `json:"degree" binding:"required,max=50"`
	DepartmentID int       `json:"department_id" binding:"required,min=1"`
}

type UpdateInstructorRequest struct {
	FirstName    string    `json:"first_name" binding:"required,min=2,max=50"`
	LastName     string    `json:"last_name" binding:"required,min=2,max=50"`
	Email        string    `json:"email" binding:"required,email"`
	Address      string    `json:"address" binding:"required,max=200"`
	BirthDay     time.Time `json:"birth_day" binding:"required"`
	Phone        string    `json:"phone" binding:"required,min=9,max=15"`
	Gender       *bool     `json:"gender" binding:"required"`
	Degree       string    `json:"degree" binding:"required,max=50"`
	DepartmentID int       `json:"department_id" binding:"required,min=1"`
}

type InstructorURI struct {
	ID string `uri:"id" binding:"required"`
}
