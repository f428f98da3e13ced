package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/pkg/response"
)

// ListPapers returns papers, optionally filtered by status.
func (h *handler) ListPapers(c *gin.Context) {
	ctx := c.Request.Context()

	var status *model.PaperStatus
	if raw := c.Query("status"); raw != "" {
		s := model.PaperStatus(raw)
		status = &s
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "60"))

	papers, err := h.paperUC.List(ctx, status, limit)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: paperUC.List: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newPaperResps(papers))
}

// ReadPaper flips the paper to read and returns the updated streak.
func (h *handler) ReadPaper(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	now := time.Now().In(h.dates.Location())
	if err := h.paperUC.MarkRead(ctx, id, now); err != nil {
		if errors.Is(err, paper.ErrPaperNotFound) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "dashboard: paperUC.MarkRead: %v", err)
		response.InternalError(c, err)
		return
	}

	streak, err := h.paperUC.ReadStreak(ctx, now)
	if err != nil {
		h.l.Warnf(ctx, "dashboard: paperUC.ReadStreak: %v", err)
		streak = 0
	}
	response.OK(c, gin.H{"read": id, "read_streak": streak})
}
