// Package server assembles the HTTP surface: middleware chain, module
// handlers and the health probe.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"shareit/internal/database"
	"shareit/internal/metrics"
	"shareit/internal/middleware"
	"shareit/internal/modules/booking"
	"shareit/internal/modules/item"
	"shareit/internal/modules/request"
	"shareit/internal/modules/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"
	"shareit/internal/ratelimit"
	"shareit/internal/repository"
)

type Options struct {
	Clock          clock.Clock
	Limiter        ratelimit.Limiter // nil disables rate limiting
	AllowedOrigins []string
}

func NewRouter(db *gorm.DB, opts Options, log zerolog.Logger) *gin.Engine {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	validator.UseJSONNamesInGin()

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, log))
	itemHandler := item.NewHandler(item.NewService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, opts.Clock, log))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, itemRepo, userRepo, opts.Clock, metrics.BookingRecorder{}, log))
	requestHandler := request.NewHandler(request.NewService(requestRepo, itemRepo, userRepo, opts.Clock, log))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(),
		middleware.Recovery(log),
		middleware.CORS(opts.AllowedOrigins),
	)
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter, log))
	}

	r.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)

		acting := v1.Group("")
		acting.Use(middleware.SharerUser())
		{
			itemHandler.RegisterRoutes(acting)
			bookingHandler.RegisterRoutes(acting)
			requestHandler.RegisterRoutes(acting)
		}
	}

	return r
}
