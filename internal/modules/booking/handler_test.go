package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/repository"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	owner  *domain.User
	booker *domain.User
	item   *domain.Item
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	e := &env{db: db}
	e.owner = &domain.User{Name: "Owner", Email: "owner@example.com"}
	e.booker = &domain.User{Name: "Booker", Email: "booker@example.com"}
	require.NoError(t, db.Create(e.owner).Error)
	require.NoError(t, db.Create(e.booker).Error)
	e.item = &domain.Item{Name: "Drill", Description: "cordless", Available: true, OwnerID: e.owner.ID}
	require.NoError(t, db.Create(e.item).Error)

	svc := NewService(
		repository.NewBookingRepository(db),
		repository.NewItemRepository(db),
		repository.NewUserRepository(db),
		clock.Fixed(now),
		nil,
		zerolog.Nop(),
	)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(middleware.SharerUser())
	NewHandler(svc).RegisterRoutes(v1)
	e.router = r
	return e
}

func performRequest(router *gin.Engine, method, path string, body interface{}, userID int64) (*httptest.ResponseRecorder, apiResponse) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(middleware.SharerUserHeader, fmt.Sprint(userID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (e *env) book(t *testing.T, start, end time.Time) BookingResponse {
	t.Helper()
	w, resp := performRequest(e.router, http.MethodPost, "/api/v1/bookings", gin.H{
		"itemId": e.item.ID, "start": start, "end": end,
	}, e.booker.ID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var b BookingResponse
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	return b
}

func TestHandler_CreateAndDecide(t *testing.T) {
	e := setupRouter(t)
	b := e.book(t, now.Add(time.Hour), now.Add(2*time.Hour))
	assert.Equal(t, domain.BookingWaiting, b.Status)
	assert.Equal(t, "Drill", b.Item.Name)
	assert.Equal(t, e.booker.ID, b.Booker.ID)

	path := fmt.Sprintf("/api/v1/bookings/%d?approved=true", b.ID)
	w, resp := performRequest(e.router, http.MethodPatch, path, nil, e.owner.ID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var decided BookingResponse
	require.NoError(t, json.Unmarshal(resp.Data, &decided))
	assert.Equal(t, domain.BookingApproved, decided.Status)

	w, resp = performRequest(e.router, http.MethodPatch, path, nil, e.owner.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	var stored domain.Booking
	require.NoError(t, e.db.First(&stored, "booking_id = ?", b.ID).Error)
	assert.Equal(t, domain.BookingApproved, stored.Status)
	assert.Equal(t, int64(2), stored.Version)
}

func TestHandler_DecideByBookerIsNotFound(t *testing.T) {
	e := setupRouter(t)
	b := e.book(t, now.Add(time.Hour), now.Add(2*time.Hour))

	w, resp := performRequest(e.router, http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d?approved=false", b.ID), nil, e.booker.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestHandler_DecideRequiresApprovedParam(t *testing.T) {
	e := setupRouter(t)
	b := e.book(t, now.Add(time.Hour), now.Add(2*time.Hour))

	w, _ := performRequest(e.router, http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d", b.ID), nil, e.owner.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateValidation(t *testing.T) {
	e := setupRouter(t)

	w, resp := performRequest(e.router, http.MethodPost, "/api/v1/bookings", gin.H{
		"itemId": e.item.ID, "start": now.Add(time.Hour), "end": now.Add(time.Hour),
	}, e.booker.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, _ = performRequest(e.router, http.MethodPost, "/api/v1/bookings", gin.H{"itemId": e.item.ID}, e.booker.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = performRequest(e.router, http.MethodPost, "/api/v1/bookings", gin.H{
		"itemId": e.item.ID, "start": now.Add(time.Hour), "end": now.Add(2 * time.Hour),
	}, e.owner.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = performRequest(e.router, http.MethodPost, "/api/v1/bookings", gin.H{
		"itemId": e.item.ID, "start": now.Add(time.Hour), "end": now.Add(2 * time.Hour),
	}, 0)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_USER_ID", resp.Error.Code)
}

func TestHandler_ListStates(t *testing.T) {
	e := setupRouter(t)
	past := e.book(t, now.Add(-3*time.Hour), now.Add(-2*time.Hour))
	current := e.book(t, now.Add(-time.Hour), now.Add(time.Hour))
	future := e.book(t, now.Add(2*time.Hour), now.Add(3*time.Hour))

	ids := func(path string, user int64) []int64 {
		w, resp := performRequest(e.router, http.MethodGet, path, nil, user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var list []BookingResponse
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		out := make([]int64, 0, len(list))
		for _, b := range list {
			out = append(out, b.ID)
		}
		return out
	}

	assert.Equal(t, []int64{future.ID, current.ID, past.ID}, ids("/api/v1/bookings", e.booker.ID))
	assert.Equal(t, []int64{current.ID}, ids("/api/v1/bookings?state=current", e.booker.ID))
	assert.Equal(t, []int64{past.ID}, ids("/api/v1/bookings?state=PAST", e.booker.ID))
	assert.Equal(t, []int64{future.ID}, ids("/api/v1/bookings/owner?state=FUTURE", e.owner.ID))
	assert.Equal(t, []int64{future.ID, current.ID, past.ID}, ids("/api/v1/bookings/owner?state=WAITING", e.owner.ID))
	assert.Equal(t, []int64{current.ID}, ids("/api/v1/bookings?from=1&size=1", e.booker.ID))
	assert.Empty(t, ids("/api/v1/bookings/owner", e.booker.ID))
}

func TestHandler_ListUnknownState(t *testing.T) {
	e := setupRouter(t)

	w, resp := performRequest(e.router, http.MethodGet, "/api/v1/bookings?state=bogus", nil, e.booker.ID)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "UNKNOWN_STATE", resp.Error.Code)
	assert.Equal(t, "Unknown state: bogus", resp.Error.Message)
}

func TestHandler_ListBadPaging(t *testing.T) {
	e := setupRouter(t)

	w, _ := performRequest(e.router, http.MethodGet, "/api/v1/bookings?from=-1", nil, e.booker.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = performRequest(e.router, http.MethodGet, "/api/v1/bookings?size=0", nil, e.booker.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking(t *testing.T) {
	e := setupRouter(t)
	b := e.book(t, now.Add(time.Hour), now.Add(2*time.Hour))
	stranger := &domain.User{Name: "Stranger", Email: "stranger@example.com"}
	require.NoError(t, e.db.Create(stranger).Error)

	path := fmt.Sprintf("/api/v1/bookings/%d", b.ID)
	w, _ := performRequest(e.router, http.MethodGet, path, nil, e.booker.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = performRequest(e.router, http.MethodGet, path, nil, e.owner.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = performRequest(e.router, http.MethodGet, path, nil, stranger.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = performRequest(e.router, http.MethodGet, "/api/v1/bookings/abc", nil, e.owner.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
