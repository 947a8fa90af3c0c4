package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cogbio/labsite/internal/models"
)

func TestMyProfileShowsLinkedMember(t *testing.T) {
	app, database := newTestApp(t)

	member := models.Member{Name: "Grace Hopper", Type: models.MemberTypePI, Status: "active"}
	if err := database.Create(&member).Error; err != nil {
		t.Fatalf("insert member fixture: %v", err)
	}

	account := createTestAccount(t, database, "grace@lab.org", "fixture-pass", models.RoleMember)
	if err := database.Model(&account).Update("member_id", member.ID).Error; err != nil {
		t.Fatalf("link account to member: %v", err)
	}

	cookie := loginCookie(t, app, "grace@lab.org", "fixture-pass")
	response := get(t, app, "/my-profile", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	body := decodeBody(t, response.Body)
	data := body["data"].(map[string]any)
	profile := data["profile"].(map[string]any)
	if profile["name"] != "Grace Hopper" {
		t.Fatalf("expected linked profile, got %v", profile)
	}
	user := data["user"].(map[string]any)
	if user["email"] != "grace@lab.org" {
		t.Fatalf("expected session user in payload, got %v", user)
	}
}

func TestMyProfileDanglingLink(t *testing.T) {
	app, database := newTestApp(t)

	member := models.Member{Name: "Gone Person", Type: models.MemberTypeMember, Status: "active"}
	if err := database.Create(&member).Error; err != nil {
		t.Fatalf("insert member fixture: %v", err)
	}
	account := createTestAccount(t, database, "gone@lab.org", "fixture-pass", models.RoleMember)
	if err := database.Model(&account).Update("member_id", member.ID).Error; err != nil {
		t.Fatalf("link account to member: %v", err)
	}

	cookie := loginCookie(t, app, "gone@lab.org", "fixture-pass")

	// Deleting the profile leaves the account's link dangling. The page must
	// answer 404, not 500.
	deleteRequest := jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/members/%d", member.ID), nil)
	deleteResponse := doRequest(t, app, deleteRequest)
	deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("delete member: expected 200, got %d", deleteResponse.StatusCode)
	}

	response := get(t, app, "/my-profile", cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for dangling link, got %d", response.StatusCode)
	}
	body := decodeBody(t, response.Body)
	if body["error"] != "Profile not found" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestMyProfileUnlinkedAccount(t *testing.T) {
	app, database := newTestApp(t)
	createTestAccount(t, database, "nolink@lab.org", "fixture-pass", models.RoleMember)

	cookie := loginCookie(t, app, "nolink@lab.org", "fixture-pass")
	response := get(t, app, "/my-profile", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unlinked account, got %d", response.StatusCode)
	}
	body := decodeBody(t, response.Body)
	if body["error"] != "Profile not found" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}
