package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	StartSession(c *ginext.Context)
	StageDetails(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	AbandonSession(c *ginext.Context)
	Calendar(c *ginext.Context)
	EventsByDate(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/login", h.Login)

		// Booking session steps
		api.POST("/sessions", h.StartSession)
		api.POST("/sessions/:id/details", h.StageDetails)
		api.POST("/sessions/:id/submit", h.SubmitBooking)
		api.DELETE("/sessions/:id", h.AbandonSession)

		// Student calendar
		api.GET("/calendar/:year/:month", h.Calendar)
		api.GET("/events", h.EventsByDate)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
