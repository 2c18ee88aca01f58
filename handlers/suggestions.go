package handlers

import (
	"net/http"

	"cafe-directory-api/config"
	"cafe-directory-api/models"
	"cafe-directory-api/rating"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SuggestCafe lets any visitor submit a candidate cafe (public)
func SuggestCafe(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, cafeFormFields)
		return
	}

	form, err := parseCafeForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion := form.asSuggestion()
	if err := config.DB.Create(&suggestion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save suggestion"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Thanks! Your suggestion is waiting for review",
		"suggestion": suggestion,
	})
}

// ListSuggestions returns all pending suggestions — admin only
func ListSuggestions(c *gin.Context) {
	var suggestions []models.Suggestion
	config.DB.Find(&suggestions)
	c.JSON(http.StatusOK, gin.H{"count": len(suggestions), "suggestions": suggestions})
}

// ApproveSuggestion converts a suggestion into a cafe — admin only.
// A name collision with an existing cafe refuses the approval and leaves
// both records untouched. On success the cafe is inserted and the
// suggestion removed in the same transaction.
func ApproveSuggestion(c *gin.Context) {
	var suggestion models.Suggestion
	if err := config.DB.First(&suggestion, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
		return
	}

	var existing models.Cafe
	if result := config.DB.Where("name = ?", suggestion.Name).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This cafe already exists"})
		return
	}

	cafe := suggestion.AsCafe()
	cafe.Rating = rating.Compute(cafe.Seats, cafe.HasWifi, cafe.HasToilet,
		cafe.HasSockets, cafe.CanTakeCalls, cafe.CanPayWithCard)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cafe).Error; err != nil {
			return err
		}
		return tx.Delete(&suggestion).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve suggestion"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Suggestion approved", "cafe": cafe})
}

// DeleteSuggestion rejects a suggestion — admin only. Missing ids stay quiet.
func DeleteSuggestion(c *gin.Context) {
	var suggestion models.Suggestion
	if err := config.DB.First(&suggestion, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Suggestion already gone"})
		return
	}
	if err := config.DB.Delete(&suggestion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete suggestion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suggestion deleted", "id": suggestion.ID})
}
