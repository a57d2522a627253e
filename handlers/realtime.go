// File: barberbook/handlers/realtime.go
package handlers

import (
	"io"
	"strings"

	"barberbook/services/realtime"

	"github.com/gin-gonic/gin"
)

// RealtimeHandler bridges the pub/sub channel to browsers over SSE.
type RealtimeHandler struct {
	Channel *realtime.Channel
}

func NewRealtimeHandler(channel *realtime.Channel) *RealtimeHandler {
	return &RealtimeHandler{Channel: channel}
}

// EventsHandler streams events for the requested topics until the client
// disconnects; the subscription is torn down on the way out. The status
// topic is always included so the page sees connect/disconnect events.
func (h *RealtimeHandler) EventsHandler(c *gin.Context) {
	topics := []string{realtime.StatusTopic}
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" && t != realtime.StatusTopic {
				topics = append(topics, t)
			}
		}
	}

	sub, err := h.Channel.Subscribe(c.Request.Context(), topics...)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	defer sub.Unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(event.Topic, string(event.Payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
