package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/goal"
	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/pkg/response"
)

// ListGoals returns goals, active by default.
func (h *handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()

	status := model.GoalStatus(c.DefaultQuery("status", string(model.GoalStatusActive)))
	goals, err := h.goalUC.List(ctx, status)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: goalUC.List: %v", err)
		response.InternalError(c, err)
		return
	}

	out := make([]goalResp, 0, len(goals))
	for _, g := range goals {
		out = append(out, newGoalResp(g))
	}
	response.OK(c, out)
}

// CreateGoal adds a yearly goal.
func (h *handler) CreateGoal(c *gin.Context) {
	ctx := c.Request.Context()

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.goalUC.Create(ctx, req.Title, req.Year)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, newGoalResp(created))
}

// UpdateGoalProgress sets the goal's progress; 100 completes it.
func (h *handler) UpdateGoalProgress(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req updateGoalProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	progress := *req.Progress
	if progress >= 100 {
		progress = 100
		err = h.goalUC.Complete(ctx, id)
	} else {
		err = h.goalUC.UpdateProgress(ctx, id, progress)
	}
	if err != nil {
		if errors.Is(err, goal.ErrGoalNotFound) || errors.Is(err, goal.ErrBadProgress) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "dashboard: goal progress update: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "progress": progress})
}
