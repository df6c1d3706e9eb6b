package dto

import "github.com/TheDemonTuan/client-score-management/pkg/listquery"

type ListSubjectsRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateSubjectRequest struct {
	Name              string `json:"name" binding:"required,min=2,max=100"`
	Credits           int    `json:"credits" binding:"required,min=1,max=20"`
	ProcessPercentage int    `json:"process_percentage" binding:"min=0,max=100"`
	MidtermPercentage int    `json:"midterm_percentage" binding:"min=0,max=100"`
	FinalPercentage   int    `json:"final_percentage" binding:"min=0,max=100"`
	DepartmentID      int    `json:"department_id" binding:"required,min=1"`
}

type UpdateSubjectRequest struct {
	Name              string `json:"name" binding:"required,min=2,max=100"`
	Credits           int    `json:"credits" binding:"required,min=1,max=20"`
	ProcessPercentage int    `json:"process_percentage" binding:"min=0,max=100"`
	MidtermPercentage int    `json:"midterm_percentage" binding:"min=0,max=100"`
	FinalPercentage   int    `json:"final_percentage" binding:"min=0,max=100"`
	DepartmentID      int    `json:"department_id" binding:"required,min=1"`
}

type SubjectURI struct {
	ID string `uri:"id" binding:"required"`
}
