package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"cafe-directory-api/config"
	"cafe-directory-api/mailer"
	"cafe-directory-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	adminPassword = "admin-password"
	userPassword  = "password1"
)

// setupServer gives each test a fresh database and a router with the full
// route table, admin seeded.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.SessionSecret = []byte("handlers-test-secret")
	config.BaseURL = "http://cafes.test"
	config.AdminEmail = "admin@cafes.test"
	config.AdminNickname = "admin"
	config.AdminPassword = adminPassword
	config.DatabaseDSN = filepath.Join(t.TempDir(), "cafes.db")
	config.InitDB()
	config.SeedAdmin()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func loginAdmin(t *testing.T, r http.Handler) string {
	t.Helper()
	w := postForm(r, "/login/"+config.AdminEmail, "", url.Values{"password": {adminPassword}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func registerUser(t *testing.T, r http.Handler, email, nickname string) string {
	t.Helper()
	w := postForm(r, "/register/"+email, "", url.Values{
		"nickname":       {nickname},
		"password":       {userPassword},
		"password_check": {userPassword},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// cafeFormValues builds a full submission; amenities are sent as browser
// checkboxes would be ("on" when checked, absent otherwise).
func cafeFormValues(name string, seats int, amenities bool) url.Values {
	form := url.Values{
		"name":         {name},
		"map_url":      {"https://maps.example.com/" + url.PathEscape(name)},
		"img_url":      {"https://img.example.com/" + url.PathEscape(name) + ".jpg"},
		"latitude":     {"47.4979"},
		"longitude":    {"19.0402"},
		"country":      {"Hungary"},
		"city":         {"Budapest"},
		"location":     {"District VII"},
		"description":  {"A test cafe"},
		"seats":        {strconv.Itoa(seats)},
		"coffee_price": {"2.50"},
	}
	if amenities {
		for _, f := range []string{"has_wifi", "has_toilet", "has_sockets", "can_take_calls", "can_pay_with_card"} {
			form.Set(f, "on")
		}
	}
	return form
}

// fakeMailer records reset links instead of talking SMTP
type fakeMailer struct {
	recipients []string
	links      []string
}

func (f *fakeMailer) SendPasswordReset(recipient, link string) error {
	f.recipients = append(f.recipients, recipient)
	f.links = append(f.links, link)
	return nil
}

func withFakeMailer(t *testing.T) *fakeMailer {
	t.Helper()
	fake := &fakeMailer{}
	prev := mailer.Default
	mailer.Default = fake
	t.Cleanup(func() { mailer.Default = prev })
	return fake
}
