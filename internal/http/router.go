package api

import (
	stdhttp "net/http"

	h "voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(session *services.BookingSession, ledger repositories.BookingLedger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	sessionHandler := h.NewSessionHandler(session)
	bookingHandler := h.NewBookingHandler(ledger)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/cities", h.Cities)

		sess := api.Group("/session")
		sess.GET("", sessionHandler.Snapshot)
		sess.POST("/search", sessionHandler.SubmitSearch)
		sess.GET("/trips", sessionHandler.Trips)
		sess.POST("/trips/:id/select", sessionHandler.SelectTrip)
		sess.GET("/seatmap", sessionHandler.SeatMap)
		sess.POST("/seats/:code/toggle", sessionHandler.ToggleSeat)
		sess.POST("/proceed", sessionHandler.Proceed)
		sess.POST("/details", sessionHandler.SubmitDetails)
		sess.POST("/confirm", sessionHandler.Confirm)
		sess.POST("/back", sessionHandler.GoBack)

		bookings := api.Group("/bookings")
		bookings.GET("", bookingHandler.List)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.GET("/:id/e-ticket", bookingHandler.ETicket)
		bookings.GET("/:id/invoice", bookingHandler.Invoice)
	}

	return r
}
