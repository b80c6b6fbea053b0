package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ritmdance/studio/api/v1/dtos"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/services"
	"github.com/rs/zerolog/log"
)

const RevalidateSecretHeader = "X-Revalidate-Secret"

type RevalidateHandler struct {
	container *container.Container
	service   *services.ContentService
}

func NewRevalidateHandler(c *container.Container, svc *services.ContentService) *RevalidateHandler {
	return &RevalidateHandler{
		container: c,
		service:   svc,
	}
}

func (h *RevalidateHandler) Revalidate(c echo.Context) error {
	ctx := c.Request().Context()

	secret := c.Request().Header.Get(RevalidateSecretHeader)
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.container.Config.RevalidateSecret)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid revalidation secret")
	}

	var req dtos.RevalidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request data: %v", err))
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	collections := make([]cms.Collection, 0, len(req.Collections))
	for _, name := range req.Collections {
		collection, err := cms.ParseCollection(name)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		collections = append(collections, collection)
	}

	if err := h.service.Revalidate(ctx, collections); err != nil {
		log.Error().Err(err).Msg("Failed to revalidate content")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to revalidate content")
	}

	if len(collections) == 0 {
		collections = cms.Collections
	}

	names := make([]string, 0, len(collections))
	for _, collection := range collections {
		names = append(names, string(collection))
	}

	return c.JSON(http.StatusAccepted, dtos.RevalidateResponse{Collections: names})
}
