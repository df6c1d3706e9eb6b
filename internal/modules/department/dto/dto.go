package dto

import "github.com/TheDemonTuan/client-score-management/pkg/listquery"

type ListDepartmentsRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type DepartmentURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}
