package booking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/domain"
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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListForBooker)
	rg.GET("/bookings/owner", h.ListForOwner)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id", h.DecideBooking)
}

// CreateBooking books an item for the acting user.
// @Summary		Book an item
// @Tags		Bookings
// @Param		X-Sharer-User-Id	header	int	true	"Acting user"
// @Param		request	body	CreateBookingRequest	true	"itemId, start, end"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Bad range or unavailable item"
// @Failure		404	{object}	map[string]interface{} "Unknown user or item, or own item"
// @Router		/bookings [POST]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Fields(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToResponse(b))
}

// DecideBooking approves (?approved=true) or rejects (?approved=false) a booking.
// @Summary		Approve or reject a booking
// @Tags		Bookings
// @Param		id	path	int	true	"Booking ID"
// @Param		approved	query	bool	true	"Decision"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Status already set"
// @Failure		404	{object}	map[string]interface{} "Unknown booking or not the owner"
// @Failure		409	{object}	map[string]interface{} "Concurrent update"
// @Router		/bookings/{id} [PATCH]
func (h *Handler) DecideBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "approved must be true or false")
		return
	}

	b, err := h.service.Decide(c.Request.Context(), id, c.GetInt64("user_id"), approved)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(b))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(b))
}

// ListForBooker lists the acting user's bookings.
// @Summary		My bookings
// @Tags		Bookings
// @Param		state	query	string	false	"ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"	default(ALL)
// @Param		from	query	int	false	"Offset"	default(0)
// @Param		size	query	int	false	"Page size"	default(20)
// @Success		200	{object}	map[string]interface{}
// @Failure		500	{object}	map[string]interface{} "Unknown state"
// @Router		/bookings [GET]
func (h *Handler) ListForBooker(c *gin.Context) {
	h.list(c, h.service.ListForBooker)
}

// ListForOwner lists bookings of items the acting user owns.
// @Router		/bookings/owner [GET]
func (h *Handler) ListForOwner(c *gin.Context) {
	h.list(c, h.service.ListForOwner)
}

func (h *Handler) list(c *gin.Context, fn func(ctx context.Context, userID int64, state string, page pagination.Page) ([]domain.Booking, error)) {
	page, err := pagination.Parse(c.Query("from"), c.Query("size"), pagination.DefaultSize)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bookings, err := fn(c.Request.Context(), c.GetInt64("user_id"), c.DefaultQuery("state", string(domain.StateAll)), page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponses(bookings))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
