package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ritmdance/studio/api/v1/dtos"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/models"
	"github.com/ritmdance/studio/search"
	"github.com/ritmdance/studio/services"
	"github.com/ritmdance/studio/utils"
)

type ContentHandler struct {
	container *container.Container
	service   *services.ContentService
	now       func() time.Time
}

func NewContentHandler(c *container.Container, svc *services.ContentService) *ContentHandler {
	return &ContentHandler{
		container: c,
		service:   svc,
		now:       time.Now,
	}
}

func (h *ContentHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Home(c.Request().Context()))
}

func (h *ContentHandler) ListClasses(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtos.ClassListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request parameters")
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	startingAfter, err := decodeStartingAfter(req.StartingAfter, h.container.Config.EncryptionKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	classes := h.service.Classes(ctx)

	// A category link pre-seeds the type filter; an explicit type wins
	danceType := valueOr(req.Type, "")
	if danceType == "" {
		danceType = search.SeedType(classes, valueOr(req.Category, ""))
	}

	filter := search.ClassFilter{
		Query: valueOr(req.Query, ""),
		Level: valueOr(req.Level, search.All),
		Type:  danceType,
	}

	page := search.Paginate(search.FilterClasses(classes, filter),
		func(class *models.DanceClass) int64 { return class.ID },
		limitOrDefault(req.Limit), startingAfter)

	nextCursor, err := encodeNextCursor(page.NextCursor, h.container.Config.EncryptionKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dtos.ClassListResponse{
		Data:       page.Data,
		HasMore:    page.HasMore,
		TotalCount: page.TotalCount,
		NextCursor: nextCursor,
		Type:       orAll(filter.Type),
		Level:      orAll(filter.Level),
		Facets: dtos.ClassFacets{
			Types:  search.DistinctTypes(classes),
			Levels: search.DistinctLevels(classes),
		},
	})
}

func (h *ContentHandler) ListAvailableCourses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AvailableCourses(c.Request().Context()))
}

func (h *ContentHandler) GetClass(c echo.Context) error {
	class, err := h.service.ClassBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFoundOr(err, "Class not found")
	}
	return c.JSON(http.StatusOK, class)
}

func (h *ContentHandler) ListInstructors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Instructors(c.Request().Context()))
}

func (h *ContentHandler) GetInstructor(c echo.Context) error {
	profile, err := h.service.InstructorProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFoundOr(err, "Instructor not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ContentHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtos.EventListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request parameters")
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	startingAfter, err := decodeStartingAfter(req.StartingAfter, h.container.Config.EncryptionKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	events := search.SortEventsByDate(h.service.Events(ctx))
	category := search.SeedCategory(events, valueOr(req.Category, ""))

	filtered := search.FilterEvents(events, search.EventFilter{
		Query:    valueOr(req.Query, ""),
		Category: category,
	})

	page := search.Paginate(filtered,
		func(event *models.Event) int64 { return event.ID },
		limitOrDefault(req.Limit), startingAfter)

	nextCursor, err := encodeNextCursor(page.NextCursor, h.container.Config.EncryptionKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	upcoming, past := search.SplitUpcoming(page.Data, h.now())

	return c.JSON(http.StatusOK, dtos.EventListResponse{
		Upcoming:   upcoming,
		Past:       past,
		HasMore:    page.HasMore,
		TotalCount: page.TotalCount,
		NextCursor: nextCursor,
		Category:   category,
		Categories: search.DistinctCategories(events),
	})
}

func (h *ContentHandler) GetEvent(c echo.Context) error {
	event, err := h.service.EventBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFoundOr(err, "Event not found")
	}
	return c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) ListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Locations(c.Request().Context()))
}

func (h *ContentHandler) GetLocation(c echo.Context) error {
	profile, err := h.service.LocationProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFoundOr(err, "Location not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ContentHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Services(c.Request().Context()))
}

func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Testimonials(c.Request().Context()))
}

func (h *ContentHandler) ListBlogPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.BlogPosts(c.Request().Context()))
}

func (h *ContentHandler) GetBlogPost(c echo.Context) error {
	post, err := h.service.BlogPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFoundOr(err, "Blog post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func notFoundOr(err error, message string) error {
	switch {
	case errors.Is(err, utils.ErrClassNotFound),
		errors.Is(err, utils.ErrInstructorNotFound),
		errors.Is(err, utils.ErrEventNotFound),
		errors.Is(err, utils.ErrLocationNotFound),
		errors.Is(err, utils.ErrBlogPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load content")
	}
}

func orAll(value string) string {
	if value == "" {
		return search.All
	}
	return value
}
