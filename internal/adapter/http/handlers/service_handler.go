package handlers

import (
	"net/http"
	"strconv"

	request "barberapp/internal/adapter/http/dto/request"
	response "barberapp/internal/adapter/http/dto/response"
	"barberapp/internal/adminview"
	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"
	"barberapp/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the public catalog and the admin service management endpoints.
//
// Admin writes go through the admin panel board so its view stays in step
// with the store.
type ServiceHandler struct {
	usecase usecase.IServiceCatalogUseCase
	board   *adminview.Board
	tr      *i18n.Translator
}

func NewServiceHandler(uc usecase.IServiceCatalogUseCase, board *adminview.Board, tr *i18n.Translator) *ServiceHandler {
	return &ServiceHandler{usecase: uc, board: board, tr: tr}
}

// ListPublicServices returns active services, grouped by category when ?grouped=true.
func (h *ServiceHandler) ListPublicServices(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	services, err := h.usecase.ListActiveServices(c.Request.Context())
	if err != nil {
		respondError(c, mapServiceError(h.tr, locale, usecase.ServiceActionFetch, err))
		return
	}

	if grouped, _ := strconv.ParseBool(c.Query("grouped")); grouped {
		c.JSON(http.StatusOK, response.NewServiceGroupsResponse(h.tr, locale, usecase.GroupByCategory(services)))
		return
	}
	c.JSON(http.StatusOK, response.NewServiceListResponse(h.tr, locale, services))
}

// GetPublicService hides inactive services the same way as missing ones.
func (h *ServiceHandler) GetPublicService(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	svc, found, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapServiceError(h.tr, locale, usecase.ServiceActionFetch, err))
		return
	}
	if !found || !svc.Active {
		respondError(c, pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", h.tr.T(locale, "errors.not_found", nil), http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.NewServiceResponse(h.tr, locale, svc))
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, mapServiceError(h.tr, locale, usecase.ServiceActionFetch, err))
		return
	}
	c.JSON(http.StatusOK, response.NewServiceListResponse(h.tr, locale, services))
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}
	h.respondAction(c, locale, http.StatusCreated, h.board.Add(c.Request.Context(), payload.ToForm()))
}

// UpdateService validates the whole form and merges it. An omitted "active"
// keeps the current status.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}
	h.respondAction(c, locale, http.StatusOK, h.board.Edit(c.Request.Context(), c.Param("id"), payload.ToForm()))
}

func (h *ServiceHandler) SetServiceActive(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	var payload request.ToggleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, invalidRequestError(h.tr, locale))
		return
	}

	action := h.board.SetActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if action.State == adminview.ActionIdle && action.Err == nil {
		respondError(c, pkg.NewDomainErrorSimple("TOGGLE_IN_PROGRESS", h.tr.T(locale, "admin_service.error_generic_desc", nil), http.StatusConflict))
		return
	}
	h.respondAction(c, locale, http.StatusOK, action)
}

// DeleteService answers 200 for unknown ids; the name shown in the
// notification falls back to the id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	locale := requestLocale(c, h.tr)
	h.respondAction(c, locale, http.StatusOK, h.board.Delete(c.Request.Context(), c.Param("id")))
}

// respondAction writes the outcome of an admin panel action.
func (h *ServiceHandler) respondAction(c *gin.Context, locale string, okStatus int, action adminview.Action) {
	if action.Err != nil {
		respondError(c, mapServiceError(h.tr, locale, action.Kind, action.Err))
		return
	}
	var svc *entities.Service
	if action.Result.ID != "" {
		svc = &action.Result
	}
	c.JSON(okStatus, response.NewServiceMutationResponse(h.tr, locale, svc, action.Notification))
}
