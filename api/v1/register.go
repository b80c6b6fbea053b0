package v1

import (
	"github.com/labstack/echo/v4"
	"github.com/ritmdance/studio/api/v1/handlers"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/services"
)

func RegisterRoutes(e *echo.Echo, c *container.Container, content *services.ContentService, submissions *services.SubmissionService) {
	contentHandler := handlers.NewContentHandler(c, content)
	submissionHandler := handlers.NewSubmissionHandler(c, submissions)

	v1 := e.Group("/v1")

	v1.GET("/home", contentHandler.Home, Freshness())

	classes := v1.Group("/classes", Freshness())
	classes.GET("", contentHandler.ListClasses)
	classes.GET("/available", contentHandler.ListAvailableCourses)
	classes.GET("/:slug", contentHandler.GetClass)

	instructors := v1.Group("/instructors", Freshness())
	instructors.GET("", contentHandler.ListInstructors)
	instructors.GET("/:slug", contentHandler.GetInstructor)

	events := v1.Group("/events", Freshness())
	events.GET("", contentHandler.ListEvents)
	events.GET("/:slug", contentHandler.GetEvent)

	locations := v1.Group("/locations", Freshness())
	locations.GET("", contentHandler.ListLocations)
	locations.GET("/:slug", contentHandler.GetLocation)

	v1.GET("/services", contentHandler.ListServices, Freshness())
	v1.GET("/testimonials", contentHandler.ListTestimonials, Freshness())

	posts := v1.Group("/blog-posts", Freshness())
	posts.GET("", contentHandler.ListBlogPosts)
	posts.GET("/:slug", contentHandler.GetBlogPost)

	v1.POST("/contact", submissionHandler.CreateContact)
	v1.POST("/registrations", submissionHandler.CreateRegistration)

	// Revalidation stays unrouted until a secret is configured
	if c.Config.RevalidateSecret != "" {
		revalidateHandler := handlers.NewRevalidateHandler(c, content)
		v1.POST("/revalidate", revalidateHandler.Revalidate)
	}
}
