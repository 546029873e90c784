package handler

import (
	"net/http"

	"github.com/avelichko/videotube-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ChannelHandler handles channel profiles and subscriptions
type ChannelHandler struct {
	channelService service.ChannelService
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(channelService service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// GetProfile resolves a channel profile. The viewer identity, when a
// valid access token was presented, drives the isSubscribed flag.
func (h *ChannelHandler) GetProfile(c *gin.Context) {
	viewerID := c.GetString(ContextUserID)

	profile, err := h.channelService.ResolveProfile(c.Request.Context(), c.Param("username"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "channel profile fetched successfully", profile)
}

// Subscribe subscribes the current user to a channel
func (h *ChannelHandler) Subscribe(c *gin.Context) {
	subscriberID := c.GetString(ContextUserID)

	if err := h.channelService.Subscribe(c.Request.Context(), subscriberID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "subscribed successfully", nil)
}

// Unsubscribe removes the current user's subscription to a channel
func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	subscriberID := c.GetString(ContextUserID)

	if err := h.channelService.Unsubscribe(c.Request.Context(), subscriberID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "unsubscribed successfully", nil)
}
