package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/cogbio/labsite/internal/config"
	"github.com/cogbio/labsite/internal/db"
	"github.com/cogbio/labsite/internal/logger"
	"github.com/cogbio/labsite/internal/models"
	"github.com/cogbio/labsite/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	testSecretKey     = "test-secret-key"
	testSuperUsername = "admin"
	testSuperPassword = "admin123"
)

func testConfig(databasePath string) config.Config {
	return config.Config{
		Port:          "8080",
		DBPath:        databasePath,
		Environment:   "test",
		LogLevel:      "disabled",
		SecretKey:     testSecretKey,
		AdminUsername: testSuperUsername,
		AdminPassword: testSuperPassword,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	return newTestAppWithEnvironment(t, "test")
}

func newTestAppWithEnvironment(t *testing.T, environment string) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "labsite-test.db")
	database, err := db.OpenSQLite(databasePath, logger.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := testConfig(databasePath)
	cfg.Environment = environment
	handler := NewHandler(database, cfg, logger.Nop())
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestAccount(t *testing.T, database *gorm.DB, email string, password string, role models.Role) models.Account {
	t.Helper()

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	account := models.Account{
		Email:        services.NormalizeEmail(email),
		PasswordHash: passwordHash,
		Name:         "Fixture Person",
		Role:         role,
		IsActive:     true,
	}
	if err := database.Create(&account).Error; err != nil {
		t.Fatalf("insert fixture account: %v", err)
	}
	return account
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func login(t *testing.T, app *fiber.App, username string, password string) *http.Response {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	return doRequest(t, app, request)
}

// loginCookie authenticates and returns the session cookie ready for a
// Cookie request header.
func loginCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	response := login(t, app, username, password)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login for cookie returned %d", response.StatusCode)
	}
	cookie := findCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login response carries no session cookie")
	}
	return authCookieName + "=" + cookie.Value
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	decoded := map[string]any{}
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func readBody(t *testing.T, body io.Reader) string {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(raw)
}
