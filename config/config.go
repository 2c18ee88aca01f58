package config

import (
	"log"
	"os"
	"strconv"

	"cafe-directory-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SessionSecret signs session and password-reset tokens
var SessionSecret []byte

// DatabaseDSN is the sqlite path/DSN the server opens
var DatabaseDSN string

// BaseURL is the externally reachable address, used to build reset links
var BaseURL string

// SMTP settings for outbound password-reset mail
var (
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
)

// Admin seed account, created at startup when no admin row exists
var (
	AdminEmail    string
	AdminNickname string
	AdminPassword string
)

// Load reads configuration from the environment (.env supported).
func Load() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	SessionSecret = []byte(getEnv("SESSION_SECRET", "cafe_directory_dev_secret"))
	DatabaseDSN = getEnv("DATABASE_DSN", "cafes.db")
	BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	SMTPHost = getEnv("SMTP_HOST", "localhost")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUsername = os.Getenv("SMTP_USERNAME")
	SMTPPassword = os.Getenv("SMTP_PASSWORD")
	SMTPUseTLS = getEnv("SMTP_TLS", "true") == "true"

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@cafedirectory.local")
	AdminNickname = getEnv("ADMIN_NICKNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "change-me-please")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DatabaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Cafe{},
		&models.Suggestion{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// SeedAdmin makes sure exactly one admin account exists. Every approval and
// destructive route checks the admin role, so the row has to be there before
// the server takes traffic.
func SeedAdmin() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	admin := models.User{
		Email:        AdminEmail,
		Nickname:     AdminNickname,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}
	log.Printf("👤 Seeded admin account %s (id=%d)", admin.Email, admin.ID)
}
