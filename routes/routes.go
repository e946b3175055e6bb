package routes

import (
	"maison/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the wizard session endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.CreateBookingSession)
		api.GET("/session/:sessionID", hb.GetBookingSession)
		api.DELETE("/session/:sessionID", hb.CancelBookingSession)

		api.PUT("/session/:sessionID/consultation-type", hb.SelectConsultationType)
		api.PUT("/session/:sessionID/location", hb.SelectLocation)
		api.PUT("/session/:sessionID/date", hb.SelectDate)
		api.PUT("/session/:sessionID/slot", hb.SelectTimeSlot)
		api.PUT("/session/:sessionID/contact", hb.UpdateContact)

		api.POST("/session/:sessionID/next", hb.NextStep)
		api.POST("/session/:sessionID/prev", hb.PrevStep)
		api.POST("/session/:sessionID/step", hb.GoToStep)

		api.POST("/session/:sessionID/submit", hb.SubmitBooking)
		api.POST("/session/:sessionID/reset", hb.ResetBookingSession)
	}
}

// RegisterAvailabilityRoutes registers the availability query endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/days/:locationID", hb.GetAvailability)
		api.GET("/slots/:locationID/:date", hb.GetAvailableTimeSlots)
		api.GET("/next/:locationID", hb.GetNextAvailableSlot)
	}
}

// RegisterCatalogRoutes registers the boutique and offering endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/locations", hb.GetLocations)
		api.GET("/locations/:locationID", hb.GetLocationByID)
		api.GET("/consultations", hb.GetConsultationTypes)
	}
}

// RegisterCartRoutes registers the cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("/:sessionID", hb.GetCart)
		api.DELETE("/:sessionID", hb.ClearCart)
		api.POST("/:sessionID/items", hb.AddCartItem)
		api.PUT("/:sessionID/items/:itemID", hb.UpdateCartItem)
		api.DELETE("/:sessionID/items/:itemID", hb.RemoveCartItem)
	}
}
