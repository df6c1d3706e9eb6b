package dto

import "github.com/TheDemonTuan/client-score-management/pkg/listquery"

type ListRegistrationsRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateRegistrationRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

type RegistrationURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}
