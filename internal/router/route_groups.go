package router

import (
	"dance_site_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up the booking routes.
func SetupBookingRoutes(apiGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := apiGroup.Group("/Bookings")
	{
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.GET("/search", bookingHandler.SearchBookings)
		bookingRoutes.GET("/:id", bookingHandler.GetBookingByID)
		bookingRoutes.POST("", bookingHandler.CreateBooking)
		bookingRoutes.PUT("/:id", bookingHandler.UpdateBooking)
		bookingRoutes.DELETE("/:id", bookingHandler.DeleteBooking)
	}
}

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(apiGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := apiGroup.Group("/Clients")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupServiceOfferingRoutes sets up the service offering routes.
func SetupServiceOfferingRoutes(apiGroup *gin.RouterGroup, offeringHandler *handlers.ServiceOfferingHandler) {
	offeringRoutes := apiGroup.Group("/ServiceOfferings")
	{
		offeringRoutes.GET("", offeringHandler.GetServiceOfferings)
		offeringRoutes.GET("/:id", offeringHandler.GetServiceOfferingByID)
		offeringRoutes.POST("", offeringHandler.CreateServiceOffering)
		offeringRoutes.PUT("/:id", offeringHandler.UpdateServiceOffering)
		offeringRoutes.DELETE("/:id", offeringHandler.DeleteServiceOffering)
	}
}

// SetupTestimonialRoutes sets up the testimonial routes.
func SetupTestimonialRoutes(apiGroup *gin.RouterGroup, testimonialHandler *handlers.TestimonialHandler) {
	testimonialRoutes := apiGroup.Group("/Testimonials")
	{
		testimonialRoutes.GET("", testimonialHandler.GetTestimonials)
		testimonialRoutes.GET("/:id", testimonialHandler.GetTestimonialByID)
		testimonialRoutes.POST("", testimonialHandler.CreateTestimonial)
		testimonialRoutes.PATCH("/:id/approve", testimonialHandler.ApproveTestimonial)
		testimonialRoutes.DELETE("/:id", testimonialHandler.DeleteTestimonial)
	}
}
