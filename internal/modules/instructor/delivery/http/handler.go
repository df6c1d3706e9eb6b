package handler

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/internal/modules/instructor/dto"
	instructor "github.com/TheDemonTuan/client-score-management/internal/modules/instructor/service"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/response"
	"github.com/TheDemonTuan/client-score-management/pkg/validator"
	"github.com/gin-gonic/gin"
)

type InstructorHandler struct {
	service instructor.InstructorService
}

func NewInstructorHandler(service instructor.InstructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

func (h *InstructorHandler) GetAllInstructors(c *gin.Context) {
	var req dto.ListInstructorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	instructors, meta, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "instructors fetched successfully", instructors, meta)
}

func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "instructor created successfully", created)
}

func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	var uri dto.InstructorURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid instructor id", apperror.ErrInvalidInput))
		return
	}
	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "instructor updated successfully", updated)
}

func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	var uri dto.InstructorURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid instructor id", apperror.ErrInvalidInput))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "instructor deleted successfully", nil)
}
