package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-api/internal/directory"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/httpresp"
	"github.com/salonops/salon-api/internal/validators"
)

type CustomerHandler struct {
	directory *directory.Directory
}

func NewCustomerHandler(dir *directory.Directory) *CustomerHandler {
	return &CustomerHandler{directory: dir}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile" binding:"required"`
	Place  string `json:"place"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Place *string `json:"place,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer payload.")
		return
	}

	if !validators.IsMobileValid(req.Mobile) {
		httperr.BadRequest(c, "invalid_mobile", "Mobile number is malformed.")
		return
	}

	customer, err := h.directory.Create(c.Request.Context(), directory.CreateCustomerInput{
		Name:   req.Name,
		Mobile: req.Mobile,
		Place:  req.Place,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Could not create customer.")
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	// list doubles as search when a query is given, like the client list
	// screen expects
	if query := c.Query("q"); query != "" {
		customers, err := h.directory.Search(c.Request.Context(), query)
		if err != nil {
			httperr.Internal(c, "failed_to_search_customers", "Could not search customers.")
			return
		}
		httpresp.List(c, customers)
		return
	}

	customers, err := h.directory.Search(c.Request.Context(), "")
	if err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		httperr.BadRequest(c, "missing_query", "Search text is required.")
		return
	}

	customers, err := h.directory.Search(c.Request.Context(), query)
	if err != nil {
		httperr.Internal(c, "failed_to_search_customers", "Could not search customers.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid customer id.")
		return
	}

	customer, err := h.directory.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Customer not found.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid customer id.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer patch.")
		return
	}

	customer, err := h.directory.Update(c.Request.Context(), id, directory.UpdateCustomerPatch{
		Name:  req.Name,
		Place: req.Place,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Could not update customer.")
		return
	}

	httpresp.OK(c, customer)
}
