package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/pkg/response"
)

const (
	overviewTaskLimit  = 8
	overviewPaperLimit = 5
)

// Overview aggregates the landing-page numbers: counts, today's tasks,
// open tasks, recent papers and the read streak.
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().In(h.dates.Location())

	summary, err := h.taskUC.Summary(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: taskUC.Summary: %v", err)
		response.InternalError(c, err)
		return
	}

	openTasks, err := h.taskUC.List(ctx, model.TaskStatusPending, overviewTaskLimit)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: taskUC.List: %v", err)
		response.InternalError(c, err)
		return
	}

	digest, err := h.paperUC.Digest(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: paperUC.Digest: %v", err)
		response.InternalError(c, err)
		return
	}
	recent := digest.Papers
	if len(recent) > overviewPaperLimit {
		recent = recent[:overviewPaperLimit]
	}

	newStatus := model.PaperStatusNew
	readStatus := model.PaperStatusRead
	newCount, err := h.paperUC.Count(ctx, &newStatus)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: paperUC.Count(new): %v", err)
		response.InternalError(c, err)
		return
	}
	readCount, err := h.paperUC.Count(ctx, &readStatus)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: paperUC.Count(read): %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, overviewResp{
		PendingTasks: summary.PendingCount,
		DoneTasks:    summary.DoneCount,
		NewPapers:    newCount,
		ReadPapers:   readCount,
		ReadStreak:   digest.ReadStreak,
		TodayTasks:   h.newTaskResps(summary.DueToday),
		OpenTasks:    h.newTaskResps(openTasks),
		RecentPapers: h.newPaperResps(recent),
	})
}
