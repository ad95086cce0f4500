package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subplan/notification-dispatch/internal/domain"
)

type DeviceHandler struct {
	devices domain.DeviceRepository
	users   domain.UserRepository
}

func NewDeviceHandler(devices domain.DeviceRepository, users domain.UserRepository) *DeviceHandler {
	return &DeviceHandler{
		devices: devices,
		users:   users,
	}
}

type registerDeviceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Endpoint string `json:"endpoint" binding:"required"`
	P256dh   string `json:"p256dh" binding:"required"`
	Auth     string `json:"auth" binding:"required"`
}

type registerDeviceResponse struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
}

// HandleRegister subscribes a push endpoint for a user.
func (h *DeviceHandler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "user_id, endpoint, p256dh and auth are required")
		return
	}

	u, err := url.Parse(req.Endpoint)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		respondError(c, http.StatusBadRequest, "endpoint must be an https URL")
		return
	}

	if _, err := h.users.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "unknown user")
			return
		}
		slog.ErrorContext(ctx, "failed to look up user",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to register device")
		return
	}

	device := &domain.Device{
		UserID:       req.UserID,
		Endpoint:     req.Endpoint,
		P256dhKey:    req.P256dh,
		AuthKey:      req.Auth,
		RegisteredAt: time.Now().UTC(),
	}

	if err := h.devices.RegisterDevice(ctx, device); err != nil {
		slog.ErrorContext(ctx, "failed to register device",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to register device")
		return
	}

	slog.InfoContext(ctx, "device registered",
		slog.String("user_id", req.UserID),
		slog.String("device_id", device.ID),
		slog.String("platform", string(device.Platform())),
	)

	c.JSON(http.StatusCreated, registerDeviceResponse{
		ID:       device.ID,
		Platform: string(device.Platform()),
	})
}

// HandleDelete unsubscribes a push endpoint.
func (h *DeviceHandler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("id")

	if err := h.devices.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			respondError(c, http.StatusNotFound, "unknown device")
			return
		}
		slog.ErrorContext(ctx, "failed to delete device",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to delete device")
		return
	}

	c.Status(http.StatusNoContent)
}
