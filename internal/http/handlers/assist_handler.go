// README: Assist endpoint; proxies prompts to the language model.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwise/internal/modules/assist"
)

type assistRequest struct {
	Prompt string `json:"prompt"`
}

type assistResponse struct {
	Answer string `json:"answer"`
}

type AssistHandler struct {
	svc *assist.Service
}

func NewAssistHandler(svc *assist.Service) *AssistHandler {
	return &AssistHandler{svc: svc}
}

func (h *AssistHandler) Explain(c *gin.Context) {
	if h.svc == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}

	var req assistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	answer, err := h.svc.Explain(c.Request.Context(), req.Prompt)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistResponse{Answer: answer})
}
