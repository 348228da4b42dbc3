package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carwash-booking/internal/domain/user"
	"carwash-booking/internal/handler/api"
	"carwash-booking/internal/handler/middleware"
	"carwash-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	CarWash *api.CarWashHandler
	Service *api.ServiceHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireStaff := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleOperator)}
	requireAdmin := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateProfile},
			})
		}

		carWashes := apiGroup.Group("/car-washes")
		{
			addRoutes(carWashes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.CarWash.List},
				{Method: http.MethodGet, Path: "/nearby", Handler: h.CarWash.Nearby},
				{Method: http.MethodGet, Path: "/:id", Handler: h.CarWash.Get},
				{Method: http.MethodGet, Path: "/:id/services", Handler: h.Service.ListByCarWash},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByCarWash},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: h.Review.RatingStats},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.CarWash.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/available-times", Handler: h.CarWash.AvailableTimes},

				{Method: http.MethodPost, Path: "", Handler: h.CarWash.Create, Mw: requireStaff},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.CarWash.Update, Mw: requireStaff},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.CarWash.Deactivate, Mw: requireAdmin},
				{Method: http.MethodPost, Path: "/:id/services", Handler: h.Service.Create, Mw: requireStaff},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.DaySchedule, Mw: requireStaff},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Service.Update, Mw: requireStaff},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.Deactivate, Mw: requireAdmin},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/upcoming", Handler: h.Booking.ListUpcoming},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},

				{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Review.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/eligibility", Handler: h.Review.Eligibility, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Review.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
