package dto

import "github.com/TheDemonTuan/client-score-management/pkg/listquery"

type ListAssignmentsRequest struct {
	Preload bool     `form:"preload"`
	Select  []string `form:"select" collection_format:"csv"`
	listquery.Options
}

type CreateAssignmentRequest struct {
	SubjectID    string `json:"subject_id" binding:"required"`
	InstructorID string `json:"instructor_id" binding:"required"`
}

type UpdateAssignmentRequest struct {
	SubjectID    string `json:"subject_id" binding:"required"`
	InstructorID string `json:"instructor_id" binding:"required"`
}

type AssignmentURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}
