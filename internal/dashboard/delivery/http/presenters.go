package http

import (
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// --- Request DTOs ---

type createTaskReq struct {
	// Text is parsed like a chat message: "yarın 15:00 tez bölümünü bitir".
	Text string `json:"text" binding:"required,min=1,max=500"`
}

type createGoalReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
	Year  int    `json:"year"  binding:"required"`
}

type updateGoalProgressReq struct {
	Progress *int `json:"progress" binding:"required"`
}

type updateSettingsReq struct {
	ThesisTopic   string `json:"thesis_topic"`
	PaperKeywords string `json:"paper_keywords"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	DueAt     string `json:"due_at,omitempty"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
	Source    string `json:"source"`
	Notes     string `json:"notes,omitempty"`
}

type paperResp struct {
	ID          int64    `json:"id"`
	Source      string   `json:"source"`
	Title       string   `json:"title"`
	Abstract    string   `json:"abstract,omitempty"`
	URL         string   `json:"url,omitempty"`
	Authors     string   `json:"authors,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	FetchedAt   string   `json:"fetched_at"`
	Relevance   *float64 `json:"relevance,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        string   `json:"tags,omitempty"`
	Status      string   `json:"status"`
}

type goalResp struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type overviewResp struct {
	PendingTasks int        `json:"pending_tasks"`
	DoneTasks    int        `json:"done_tasks"`
	NewPapers    int        `json:"new_papers"`
	ReadPapers   int        `json:"read_papers"`
	ReadStreak   int        `json:"read_streak"`
	TodayTasks   []taskResp `json:"today_tasks"`
	OpenTasks    []taskResp `json:"open_tasks"`

	RecentPapers []paperResp `json:"recent_papers"`
}

type settingsResp struct {
	ThesisTopic   string `json:"thesis_topic"`
	PaperKeywords string `json:"paper_keywords"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: h.localISO(t.CreatedAt),
		Status:    string(t.Status),
		Source:    t.Source,
		Notes:     t.Notes,
	}
	if t.DueAt != nil {
		resp.DueAt = h.localISO(*t.DueAt)
	}
	return resp
}

func (h *handler) newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.newTaskResp(t))
	}
	return out
}

func (h *handler) newPaperResp(p model.Paper) paperResp {
	return paperResp{
		ID:          p.ID,
		Source:      p.Source,
		Title:       p.Title,
		Abstract:    p.Abstract,
		URL:         p.URL,
		Authors:     p.Authors,
		PublishedAt: p.PublishedAt,
		FetchedAt:   h.localISO(p.FetchedAt),
		Relevance:   p.Relevance,
		Summary:     p.Summary,
		Tags:        p.Tags,
		Status:      string(p.Status),
	}
}

func (h *handler) newPaperResps(papers []model.Paper) []paperResp {
	out := make([]paperResp, 0, len(papers))
	for _, p := range papers {
		out = append(out, h.newPaperResp(p))
	}
	return out
}

func newGoalResp(g model.Goal) goalResp {
	return goalResp{
		ID:       g.ID,
		Title:    g.Title,
		Year:     g.Year,
		Status:   string(g.Status),
		Progress: g.Progress,
	}
}

func (h *handler) localISO(t time.Time) string {
	return t.In(h.dates.Location()).Format(time.RFC3339)
}
