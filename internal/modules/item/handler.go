package item

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/pagination"
	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.Create)
	rg.GET("/items", h.ListMine)
	rg.GET("/items/search", h.Search)
	rg.GET("/items/:id", h.Get)
	rg.PATCH("/items/:id", h.Update)
	rg.POST("/items/:id/comment", h.AddComment)
}

// Create lists a new item owned by the acting user.
// @Summary		Create item
// @Tags		Items
// @Param		request	body	CreateItemRequest	true	"name, description, available, optional requestId"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{} "Unknown user or request"
// @Router		/items [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Fields(err))
		return
	}

	it, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToResponse(it))
}

// Update
// @Summary		Partially update an item
// @Tags		Items
// @Failure		403	{object}	map[string]interface{} "Not the owner"
// @Router		/items/{id} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(it))
}

// Get returns an item with comments; owners also see last/next bookings.
// @Router		/items/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToDetailResponse(*view))
}

func (h *Handler) ListMine(c *gin.Context) {
	page, err := pagination.Parse(c.Query("from"), c.Query("size"), pagination.DefaultSize)
	if err != nil {
		response.FromError(c, err)
		return
	}

	views, err := h.service.ListByOwner(c.Request.Context(), c.GetInt64("user_id"), page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToDetailResponses(views))
}

// Search
// @Summary		Search available items by text
// @Param		text	query	string	true	"Substring of name or description"
// @Router		/items/search [GET]
func (h *Handler) Search(c *gin.Context) {
	page, err := pagination.Parse(c.Query("from"), c.Query("size"), pagination.DefaultSize)
	if err != nil {
		response.FromError(c, err)
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponses(items))
}

// AddComment
// @Summary		Comment on a booked item
// @Failure		400	{object}	map[string]interface{} "Empty text or no qualifying booking"
// @Router		/items/{id}/comment [POST]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), id, c.GetInt64("user_id"), req.Text)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToCommentResponse(cm))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
