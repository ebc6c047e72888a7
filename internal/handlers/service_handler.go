package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-api/internal/catalog"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/httpresp"
)

type ServiceHandler struct {
	catalog *catalog.Catalog
}

func NewServiceHandler(cat *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{catalog: cat}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=5"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), catalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Could not create service.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		httperr.BadRequest(c, "missing_query", "Search text is required.")
		return
	}

	services, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		httperr.Internal(c, "failed_to_search_services", "Could not search services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	svc, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service patch.")
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), id, catalog.UpdateServicePatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Could not update service.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	svc, err := h.catalog.Deactivate(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Could not deactivate service.")
		return
	}

	httpresp.OK(c, svc)
}

// --------- Helpers ---------

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
