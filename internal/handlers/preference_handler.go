package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	Prefs *service.PreferenceService
}

func NewPreferenceHandler(prefs *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{Prefs: prefs}
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.Prefs.Snapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.Prefs.SetDarkMode(context.Background(), req.DarkMode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	var req struct {
		Arabic bool `json:"arabic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.Prefs.SetArabic(context.Background(), req.Arabic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
