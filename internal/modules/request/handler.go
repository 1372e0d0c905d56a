package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/pagination"
	"shareit/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.Create)
	rg.GET("/requests", h.ListOwn)
	rg.GET("/requests/all", h.ListOthers)
	rg.GET("/requests/:id", h.Get)
}

// Create posts a wish for an item nobody lists yet.
// @Summary		Create item request
// @Tags		Requests
// @Param		request	body	CreateRequest	true	"description"
// @Success		201	{object}	map[string]interface{}
// @Router		/requests [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "description is required")
		return
	}

	out, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req.Description)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToResponse(*out))
}

func (h *Handler) ListOwn(c *gin.Context) {
	out, err := h.service.ListOwn(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponses(out))
}

// ListOthers
// @Param		from	query	int	false	"Offset"	default(0)
// @Param		size	query	int	false	"Page size"	default(10)
// @Router		/requests/all [GET]
func (h *Handler) ListOthers(c *gin.Context) {
	page, err := pagination.Parse(c.Query("from"), c.Query("size"), DefaultOthersPageSize)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out, err := h.service.ListOthers(c.Request.Context(), c.GetInt64("user_id"), page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponses(out))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	out, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(*out))
}
