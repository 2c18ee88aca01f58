package handlers

import (
	"net/http"

	"cafe-directory-api/config"
	"cafe-directory-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserDatabase returns all registered users — admin only
func UserDatabase(c *gin.Context) {
	var users []models.User
	config.DB.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// DeleteUser removes a user and all their comments in one transaction —
// admin only. Deleting an admin account is refused without error, so the
// seeded administrator can never be removed.
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already gone"})
		return
	}

	if user.IsAdmin() {
		c.JSON(http.StatusOK, gin.H{"message": "The admin account cannot be deleted"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "id": user.ID})
}
