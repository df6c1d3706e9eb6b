package handler

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/internal/modules/class/dto"
	class "github.com/TheDemonTuan/client-score-management/internal/modules/class/service"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/response"
	"github.com/TheDemonTuan/client-score-management/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	service class.ClassService
}

func NewClassHandler(service class.ClassService) *ClassHandler {
	return &ClassHandler{service: service}
}

func (h *ClassHandler) GetAllClasses(c *gin.Context) {
	var req dto.ListClassesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	classes, meta, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "classes fetched successfully", classes, meta)
}

func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "class created successfully", created)
}

func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var uri dto.ClassURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid class id", apperror.ErrInvalidInput))
		return
	}
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "class updated successfully", updated)
}

func (h *ClassHandler) DeleteClass(c *gin.Context) {
	var uri dto.ClassURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid class id", apperror.ErrInvalidInput))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "class deleted successfully", nil)
}
