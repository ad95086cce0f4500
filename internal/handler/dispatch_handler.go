package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/infra/feed"
	"github.com/subplan/notification-dispatch/internal/service/dispatch"
)

type DispatchHandler struct {
	service *dispatch.Service
}

func NewDispatchHandler(service *dispatch.Service) *DispatchHandler {
	return &DispatchHandler{service: service}
}

type dispatchRequest struct {
	UserIDs []string `json:"user_ids"`
}

// HandleDispatch triggers one dispatch cycle.
//
// Query parameters:
//
//	force=true          bypass the delivery window
//	send_unchanged=true re-deliver even when the fingerprint is unchanged
//	device=ios|desktop  restrict deliveries to one platform
//	date=2006-01-02     pin the run to a single target date
//
// An optional JSON body {"user_ids": [...]} limits the run to those users.
func (h *DispatchHandler) HandleDispatch(c *gin.Context) {
	ctx := c.Request.Context()

	opts := dispatch.Options{
		Force:         c.Query("force") == "true",
		SendUnchanged: c.Query("send_unchanged") == "true",
		DateKey:       c.Query("date"),
	}

	if opts.DateKey != "" {
		if _, err := domain.ParseDateKey(opts.DateKey); err != nil {
			respondError(c, http.StatusBadRequest, "invalid date format, expected 2006-01-02")
			return
		}
	}

	if device := c.Query("device"); device != "" {
		filter := domain.DeviceFilter(device)
		if !filter.Valid() {
			respondError(c, http.StatusBadRequest, "invalid device filter, expected all, ios or desktop")
			return
		}
		opts.DeviceFilter = filter
	}

	if c.Request.ContentLength > 0 {
		var req dispatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		opts.UserIDs = req.UserIDs
	}

	summary, err := h.service.Run(ctx, opts)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrOutsideWindow):
			respondError(c, http.StatusConflict, "outside delivery window, pass force=true to override")
		case errors.Is(err, dispatch.ErrFeedRateLimited):
			respondError(c, http.StatusTooManyRequests, err.Error())
		default:
			var ue *feed.UnavailableError
			if errors.As(err, &ue) {
				respondError(c, http.StatusBadGateway, ue.Error())
				return
			}
			slog.ErrorContext(ctx, "dispatch cycle failed",
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
