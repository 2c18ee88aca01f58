package handlers

import (
	"log"
	"net/http"

	"cafe-directory-api/config"
	"cafe-directory-api/mailer"
	"cafe-directory-api/middleware"
	"cafe-directory-api/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/crypto/bcrypt"
)

type emailRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

type registerRequest struct {
	Nickname      string `form:"nickname" json:"nickname" binding:"required"`
	Password      string `form:"password" json:"password" binding:"required,min=8,max=80"`
	PasswordCheck string `form:"password_check" json:"password_check" binding:"required"`
}

type loginRequest struct {
	Password string `form:"password" json:"password" binding:"required"`
}

// startSession issues a session token and sets it as a cookie so both API
// clients and browsers can carry it.
func startSession(c *gin.Context, user *models.User) (string, error) {
	token, err := middleware.GenerateToken(user)
	if err != nil {
		return "", err
	}
	c.SetCookie(middleware.SessionCookie, token,
		int(middleware.SessionLifetime.Seconds()), "/", "", false, true)
	return token, nil
}

// LoginRegister is the first step of the two-step auth flow: submit an email
// and learn whether to continue to login or registration.
func LoginRegister(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"fields": []string{"email"}})
		return
	}

	var req emailRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid e-mail address"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"next": "/login/" + req.Email})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": "/register/" + req.Email})
}

// Register creates a new account for the email carried in the path and
// establishes a session. Duplicate nickname or email and mismatched
// passwords are user-visible failures that create no row.
func Register(c *gin.Context) {
	email := c.Param("id")
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"email": email, "fields": []string{"nickname", "password", "password_check"}})
		return
	}

	// The email rides in the path, so it skips body binding and needs its
	// own format check before anything touches the database
	if err := binding.Validator.ValidateStruct(emailRequest{Email: email}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid e-mail address"})
		return
	}

	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nickname and a password of at least 8 characters are required"})
		return
	}
	if req.Password != req.PasswordCheck {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The passwords do not match"})
		return
	}

	var existing models.User
	if result := config.DB.Where("nickname = ?", req.Nickname).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname already exists"})
		return
	}
	if result := config.DB.Where("email = ?", email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "That email is already registered, please log in"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:        email,
		Nickname:     req.Nickname,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := startSession(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"nickname": user.Nickname,
			"avatar":   user.GravatarURL(),
		},
	})
}

// Login verifies the password for the email carried in the path and
// establishes a session.
func Login(c *gin.Context) {
	email := c.Param("id")
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"email": email, "fields": []string{"password"}})
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "That email does not exist, please try again"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password incorrect, please try again"})
		return
	}

	token, err := startSession(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"nickname": user.Nickname,
			"role":     user.Role,
			"avatar":   user.GravatarURL(),
		},
	})
}

// Logout clears the session cookie unconditionally
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Forgot mails a short-lived reset link when the address belongs to a user.
// The response never reveals whether the email is registered.
func Forgot(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"fields": []string{"email"}})
		return
	}

	var req emailRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid e-mail address"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		token, err := middleware.GenerateResetToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue reset token"})
			return
		}
		link := config.BaseURL + "/forgot/" + token
		if err := mailer.Default.SendPasswordReset(user.Email, link); err != nil {
			// Same response either way; the address owner can retry
			log.Printf("password reset mail to %s failed: %v", user.Email, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link is on its way"})
}

// ResetPassword validates the emailed token and, on POST, sets the new
// password. Verification fails closed: a bad or expired token never
// identifies a user.
func ResetPassword(c *gin.Context) {
	userID, err := middleware.VerifyResetToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "That is an invalid or expired token"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		// Token was well formed but the account is gone; same message
		c.JSON(http.StatusBadRequest, gin.H{"error": "That is an invalid or expired token"})
		return
	}

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "fields": []string{"password", "password_check"}})
		return
	}

	var body struct {
		Password      string `form:"password" json:"password" binding:"required,min=8,max=80"`
		PasswordCheck string `form:"password_check" json:"password_check" binding:"required"`
	}
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A password of at least 8 characters is required"})
		return
	}
	if body.Password != body.PasswordCheck {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The passwords do not match"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully, please login"})
}
