package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ritmdance/studio/api/v1/dtos"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/services"
	"github.com/ritmdance/studio/utils"
)

type SubmissionHandler struct {
	container *container.Container
	service   *services.SubmissionService
}

func NewSubmissionHandler(c *container.Container, svc *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		container: c,
		service:   svc,
	}
}

func (h *SubmissionHandler) CreateContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtos.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request data: %v", err))
	}
	req.Trim()
	if err := dtos.Validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	if err := h.service.SubmitContact(ctx, req.ToModel()); err != nil {
		return submissionError(err, "Failed to send message, please try again later")
	}

	return c.JSON(http.StatusCreated, dtos.SubmissionResponse{Status: "received"})
}

func (h *SubmissionHandler) CreateRegistration(c echo.Context) error {
	ctx := c.Request().Context()

	var req dtos.RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request data: %v", err))
	}
	req.Trim()
	if err := dtos.Validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	registration, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Validation error: courseType must be a class id")
	}

	if err := h.service.SubmitRegistration(ctx, registration); err != nil {
		return submissionError(err, "Failed to send registration, please try again later")
	}

	return c.JSON(http.StatusCreated, dtos.SubmissionResponse{Status: "received"})
}

func submissionError(err error, failure string) error {
	var validationErr *utils.ValidationError
	var statusErr *cms.StatusError

	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", validationErr))
	case errors.Is(err, cms.ErrNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Submissions are temporarily unavailable").SetInternal(err)
	case errors.As(err, &statusErr):
		return echo.NewHTTPError(http.StatusBadGateway, failure).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "Could not reach the content service, please try again later").SetInternal(err)
	}
}
