package handler

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/internal/modules/department/dto"
	department "github.com/TheDemonTuan/client-score-management/internal/modules/department/service"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/response"
	"github.com/TheDemonTuan/client-score-management/pkg/validator"
	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	service department.DepartmentService
}

func NewDepartmentHandler(service department.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) GetAllDepartments(c *gin.Context) {
	var req dto.ListDepartmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	departments, meta, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "departments fetched successfully", departments, meta)
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "department created successfully", created)
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var uri dto.DepartmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid department id", apperror.ErrInvalidInput))
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "department updated successfully", updated)
}

func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	var uri dto.DepartmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid department id", apperror.ErrInvalidInput))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "department deleted successfully", nil)
}
