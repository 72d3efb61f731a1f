package relay

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/csheth/tldr/internal/llm"
)

const (
	onlineMessage       = "The server is online!"
	msgMissingMessage   = "No message or context provided"
	msgMissingVocab     = "Missing vocabLevelContext under context"
	msgUpstreamFailure  = "Failed to generate summary"
	upstreamCallTimeout = 2 * time.Minute
)

// SummarizeParams is one entry of the request envelope.
type SummarizeParams struct {
	Message    string  `json:"message"`
	Context    string  `json:"context"`
	VocabLevel *string `json:"vocabLevel"`
}

// SummarizeRequest is the POST /summarize body: {"params": [ {...} ]}.
type SummarizeRequest struct {
	Params []SummarizeParams `json:"params"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, onlineMessage)
}

func (s *Server) handleSummarize(c *gin.Context) {
	var body SummarizeRequest
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Params) == 0 {
		s.metrics.observe(outcomeRejected)
		c.String(http.StatusBadRequest, msgMissingMessage)
		return
	}
	params := body.Params[0]
	if params.Message == "" || params.Context == "" {
		s.metrics.observe(outcomeRejected)
		c.String(http.StatusBadRequest, msgMissingMessage)
		return
	}
	if params.VocabLevel == nil || *params.VocabLevel == "" {
		s.metrics.observe(outcomeRejected)
		c.String(http.StatusBadRequest, msgMissingVocab)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamCallTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.client.Complete(ctx, llm.Prompt{
		Message:    params.Message,
		Context:    params.Context,
		VocabLevel: *params.VocabLevel,
	})
	s.metrics.upstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.observe(outcomeFailed)
		s.logger.Error("summarize failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("provider", s.client.Name()),
			zap.String("mode", s.mode.String()),
			zap.Error(err),
		)
		c.String(http.StatusBadGateway, msgUpstreamFailure)
		return
	}

	s.metrics.observe(outcomeSucceeded)
	s.logger.Debug("summarize succeeded",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("input_chars", len(params.Message)),
		zap.Int("output_chars", len(text)),
	)
	c.String(http.StatusOK, text)
}
