package handlers

import (
	"net/http"
	"time"

	"cafe-directory-api/config"
	"cafe-directory-api/middleware"
	"cafe-directory-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Home returns all cafes, best rated first (public)
func Home(c *gin.Context) {
	var cafes []models.Cafe
	config.DB.Order("rating desc").Find(&cafes)
	c.JSON(http.StatusOK, gin.H{"count": len(cafes), "cafes": cafes})
}

// SortedByCity returns the cafes of one city, best rated first (public)
func SortedByCity(c *gin.Context) {
	var cafes []models.Cafe
	config.DB.Where("city = ?", c.Param("city")).Order("rating desc").Find(&cafes)
	c.JSON(http.StatusOK, gin.H{"city": c.Param("city"), "count": len(cafes), "cafes": cafes})
}

// Cities powers the two-step country→city filter. GET lists the countries
// that have cafes; POST with a country returns its cities, sorted.
func Cities(c *gin.Context) {
	var countries []string
	config.DB.Model(&models.Cafe{}).Distinct("country").Order("country").Pluck("country", &countries)

	if c.Request.Method == http.MethodPost {
		country := c.PostForm("country")
		var cities []string
		config.DB.Model(&models.Cafe{}).Where("country = ?", country).
			Distinct("city").Order("city").Pluck("city", &cities)
		c.JSON(http.StatusOK, gin.H{"countries": countries, "country": country, "cities": cities})
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// AddCafe creates a cafe directly — admin only
func AddCafe(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, cafeFormFields)
		return
	}

	form, err := parseCafeForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Cafe
	if result := config.DB.Where("name = ?", form.Name).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This cafe already exists"})
		return
	}

	cafe := form.asCafe()
	if err := config.DB.Create(&cafe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cafe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cafe added", "cafe": cafe})
}

// EditCafe overwrites every field of a cafe from the submitted form and
// recomputes its rating — admin only
func EditCafe(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.First(&cafe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"cafe": cafe})
		return
	}

	form, err := parseCafeForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Renaming onto an existing cafe would break name uniqueness
	var clash models.Cafe
	if result := config.DB.Where("name = ? AND id <> ?", form.Name, cafe.ID).First(&clash); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This cafe already exists"})
		return
	}

	updated := form.asCafe()
	updated.ID = cafe.ID
	updated.CreatedAt = cafe.CreatedAt
	if err := config.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cafe updated", "cafe": updated})
}

// DeleteCafe removes a cafe and its comments in one transaction — admin only.
// A missing id is not an error; repeated deletes stay quiet.
func DeleteCafe(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.First(&cafe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Cafe already gone"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cafe_id = ?", cafe.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cafe).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cafe deleted", "id": cafe.ID})
}

// CafeInfo shows a cafe with its comments; an authenticated POST appends a
// comment stamped with the display date.
func CafeInfo(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.First(&cafe, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	if c.Request.Method == http.MethodPost {
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required to comment"})
			return
		}
		text := c.PostForm("message")
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
			return
		}
		comment := models.Comment{
			CafeID:   cafe.ID,
			AuthorID: claims.UserID,
			Text:     text,
			Date:     time.Now().Format(models.CommentDateFormat),
		}
		if err := config.DB.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
			return
		}
	}

	var comments []models.Comment
	config.DB.Preload("Author").Where("cafe_id = ?", cafe.ID).Find(&comments)

	// Comments carry only what the detail page shows about the author
	view := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		view = append(view, gin.H{
			"id":     cm.ID,
			"text":   cm.Text,
			"date":   cm.Date,
			"author": cm.Author.Nickname,
			"avatar": cm.Author.GravatarURL(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafe, "comments": view})
}
