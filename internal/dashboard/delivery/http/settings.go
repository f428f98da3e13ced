package http

import (
	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/pkg/response"
)

const (
	settingThesisTopic   = "thesis_topic"
	settingPaperKeywords = "paper_keywords"
)

// GetSettings returns the editable assistant settings.
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	topic, err := h.settings.Get(ctx, settingThesisTopic)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: settings.Get(%s): %v", settingThesisTopic, err)
		response.InternalError(c, err)
		return
	}
	keywords, err := h.settings.Get(ctx, settingPaperKeywords)
	if err != nil {
		h.l.Errorf(ctx, "dashboard: settings.Get(%s): %v", settingPaperKeywords, err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, settingsResp{ThesisTopic: topic, PaperKeywords: keywords})
}

// UpdateSettings stores the supplied settings; empty fields are left as-is.
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.ThesisTopic != "" {
		if err := h.settings.Set(ctx, settingThesisTopic, req.ThesisTopic); err != nil {
			h.l.Errorf(ctx, "dashboard: settings.Set(%s): %v", settingThesisTopic, err)
			response.InternalError(c, err)
			return
		}
	}
	if req.PaperKeywords != "" {
		if err := h.settings.Set(ctx, settingPaperKeywords, req.PaperKeywords); err != nil {
			h.l.Errorf(ctx, "dashboard: settings.Set(%s): %v", settingPaperKeywords, err)
			response.InternalError(c, err)
			return
		}
	}

	h.GetSettings(c)
}
