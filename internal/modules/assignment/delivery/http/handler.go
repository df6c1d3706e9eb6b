package handler

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/internal/modules/assignment/dto"
	assignment "github.com/TheDemonTuan/client-score-management/internal/modules/assignment/service"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/response"
	"github.com/TheDemonTuan/client-score-management/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	service assignment.AssignmentService
}

func NewAssignmentHandler(service assignment.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) GetAllAssignments(c *gin.Context) {
	var req dto.ListAssignmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	assignments, meta, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "assignments fetched successfully", assignments, meta)
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "assignment created successfully", created)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	var uri dto.AssignmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid assignment id", apperror.ErrInvalidInput))
		return
	}
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "assignment updated successfully", updated)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	var uri dto.AssignmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid assignment id", apperror.ErrInvalidInput))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "assignment deleted successfully", nil)
}
