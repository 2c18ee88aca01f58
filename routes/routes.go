package routes

import (
	"cafe-directory-api/handlers"
	"cafe-directory-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes keeps the original site's paths. The identity is resolved once
// per request by CurrentUser; admin routes add the 403 guard on top.
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.CurrentUser())

	// ── Public browsing ────────────────────────────────────────────
	r.GET("/", handlers.Home)
	r.GET("/sorted/:city", handlers.SortedByCity)
	r.GET("/cities", handlers.Cities)
	r.POST("/cities", handlers.Cities)
	r.GET("/suggest", handlers.SuggestCafe)
	r.POST("/suggest", handlers.SuggestCafe)
	r.GET("/info/:id", handlers.CafeInfo)
	r.POST("/info/:id", handlers.CafeInfo) // posting a comment needs a session

	// ── Auth flows ─────────────────────────────────────────────────
	r.GET("/login-register", handlers.LoginRegister)
	r.POST("/login-register", handlers.LoginRegister)
	r.GET("/login/:id", handlers.Login)
	r.POST("/login/:id", handlers.Login)
	r.GET("/register/:id", handlers.Register)
	r.POST("/register/:id", handlers.Register)
	r.GET("/logout", handlers.Logout)
	r.GET("/forgot", handlers.Forgot)
	r.POST("/forgot", handlers.Forgot)
	r.GET("/forgot/:token", handlers.ResetPassword)
	r.POST("/forgot/:token", handlers.ResetPassword)

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/add", handlers.AddCafe)
		admin.POST("/add", handlers.AddCafe)
		admin.GET("/edit/:id", handlers.EditCafe)
		admin.POST("/edit/:id", handlers.EditCafe)
		admin.GET("/delete/:id", handlers.DeleteCafe)
		admin.GET("/suggested", handlers.ListSuggestions)
		admin.GET("/edit_suggested/:id", handlers.ApproveSuggestion)
		admin.POST("/edit_suggested/:id", handlers.ApproveSuggestion)
		admin.GET("/delete_suggested/:id", handlers.DeleteSuggestion)
		admin.GET("/user_database", handlers.UserDatabase)
		admin.GET("/delete_user/:id", handlers.DeleteUser)
	}
}
