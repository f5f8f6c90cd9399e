package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/api/metrics"
	"github.com/storerating/platform/internal/core/ports"
)

// RatingHandler accepts rating submissions from raters.
type RatingHandler struct {
	service ports.RatingService
}

func NewRatingHandler(service ports.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Submit handles POST /v1/stores/:id/ratings. Re-rating the same store
// replaces the earlier score in place, so the response is 200 rather
// than 201.
//
// @Summary      Rate a store
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Store ID"
// @Param        body  body      submitRatingRequest  true  "Score (1-5)"
// @Success      200   {object}  submitRatingResponse  "existing rating updated"
// @Success      201   {object}  submitRatingResponse  "rating created"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/stores/{id}/ratings [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), identity.UserID, storeID, req.Score)
	if err != nil {
		return err
	}

	status := http.StatusOK
	outcome := "updated"
	if result.Created {
		status = http.StatusCreated
		outcome = "created"
	}
	metrics.RatingsSubmittedTotal.WithLabelValues(outcome).Inc()

	return c.JSON(status, submitRatingResponse{Rating: result.Rating, Created: result.Created})
}
