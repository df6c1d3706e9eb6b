package handler

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/internal/modules/registration/dto"
	registration "github.com/TheDemonTuan/client-score-management/internal/modules/registration/service"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/response"
	"github.com/TheDemonTuan/client-score-management/pkg/validator"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service registration.RegistrationService
}

func NewRegistrationHandler(service registration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) GetAllRegistrations(c *gin.Context) {
	var req dto.ListRegistrationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	registrations, meta, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "registrations fetched successfully", registrations, meta)
}

func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrInvalidInput))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "registration created successfully", created)
}

func (h *RegistrationHandler) DeleteRegistration(c *gin.Context) {
	var uri dto.RegistrationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid registration id", apperror.ErrInvalidInput))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "registration deleted successfully", nil)
}
