package handlers

import (
	"net/http"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListQuestions returns the full question sequence localized to the
// requested language (?lang=ar for Arabic, anything else is English).
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	language := models.LanguageEnglish
	if c.Query("lang") == models.LanguageArabic {
		language = models.LanguageArabic
	}

	questions := catalog.Questions()
	localized := make([]models.LocalizedQuestion, 0, len(questions))
	for i := range questions {
		localized = append(localized, questions[i].Localize(language))
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": localized,
		"total":     len(localized),
	})
}

func (h *CatalogHandler) GetQuestion(c *gin.Context) {
	question := catalog.ByID(c.Param("id"))
	if question == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	language := models.LanguageEnglish
	if c.Query("lang") == models.LanguageArabic {
		language = models.LanguageArabic
	}
	c.JSON(http.StatusOK, question.Localize(language))
}
