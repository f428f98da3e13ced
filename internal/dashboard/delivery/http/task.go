package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/pkg/response"
)

// ListTasks returns tasks, pending by default, soonest due first.
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	status := model.TaskStatus(c.DefaultQuery("status", string(model.TaskStatusPending)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	tasks, err := h.taskUC.List(ctx, status, limit)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: taskUC.List: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newTaskResps(tasks))
}

// CreateTask accepts free text, splits off the date phrase and stores the
// rest as the title.
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	now := time.Now().In(h.dates.Location())
	remaining := req.Text
	var dueAt *time.Time
	if parsed, found := h.extractor.Extract(req.Text, now); found {
		remaining = intent.StripPhrase(req.Text, parsed.Phrase)
		at := parsed.At
		dueAt = &at
	}
	title := h.normalizer.Normalize(remaining)

	created, err := h.taskUC.Create(ctx, model.Scope{ChatID: "web", Source: "web"}, task.CreateInput{
		Title: title,
		DueAt: dueAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "dashboard: taskUC.Create: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, h.newTaskResp(created))
}

// CompleteTask marks the task done.
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	done, err := h.taskUC.Done(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "dashboard: taskUC.Done: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newTaskResp(done))
}

// DeleteTask removes the task.
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.taskUC.Delete(ctx, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "dashboard: taskUC.Delete: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
