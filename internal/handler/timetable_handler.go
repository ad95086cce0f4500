package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/timetable"
)

type TimetableHandler struct {
	timetables domain.TimetableRepository
	users      domain.UserRepository
}

func NewTimetableHandler(timetables domain.TimetableRepository, users domain.UserRepository) *TimetableHandler {
	return &TimetableHandler{
		timetables: timetables,
		users:      users,
	}
}

type timetableRequest struct {
	Entries []timetable.RawEntry `json:"entries"`
}

type validationErrorResponse struct {
	Error string `json:"error"`
	Index int    `json:"index"`
	Field string `json:"field"`
}

// HandleReplace replaces a user's whole weekly timetable.
// allow_overlaps=true skips the pairwise conflict check only.
func (h *TimetableHandler) HandleReplace(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	if _, err := h.users.GetUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "unknown user")
			return
		}
		slog.ErrorContext(ctx, "failed to look up user",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to update timetable")
		return
	}

	var req timetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	allowOverlaps := c.Query("allow_overlaps") == "true"

	entries, err := timetable.Validate(req.Entries, allowOverlaps)
	if err != nil {
		var ve *timetable.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, validationErrorResponse{
				Error: ve.Message,
				Index: ve.Index,
				Field: ve.Field,
			})
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.timetables.ReplaceEntries(ctx, userID, entries); err != nil {
		slog.ErrorContext(ctx, "failed to replace timetable",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to update timetable")
		return
	}

	slog.InfoContext(ctx, "timetable replaced",
		slog.String("user_id", userID),
		slog.Int("entry_count", len(entries)),
		slog.Bool("allow_overlaps", allowOverlaps),
	)

	c.JSON(http.StatusOK, gin.H{"entry_count": len(entries)})
}
