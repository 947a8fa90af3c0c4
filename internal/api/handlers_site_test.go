package api

import (
	"net/http"
	"testing"
)

func TestHomepageSingleton(t *testing.T) {
	app, _ := newTestApp(t)

	// First read creates the empty row.
	getRequest := jsonRequest(t, http.MethodGet, "/api/homepage", nil)
	getResponse := doRequest(t, app, getRequest)
	if getResponse.StatusCode != http.StatusOK {
		t.Fatalf("first read: expected 200, got %d", getResponse.StatusCode)
	}
	data := decodeBody(t, getResponse.Body)["data"].(map[string]any)
	getResponse.Body.Close()
	if data["aboutContent"] == nil || data["researchAreas"] == nil {
		t.Fatalf("expected empty arrays, not nulls: %v", data)
	}
	firstID := data["id"]

	putRequest := jsonRequest(t, http.MethodPut, "/api/homepage", map[string]any{
		"heroTitle":    "Computational Biology Lab",
		"piName":       "Dr. Example",
		"aboutContent": []string{"We study things."},
		"researchAreas": []map[string]any{
			{"title": "Genomics", "description": "Reading genomes", "icon": "🧬", "color": "blue"},
		},
	})
	putResponse := doRequest(t, app, putRequest)
	if putResponse.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", putResponse.StatusCode)
	}
	putResponse.Body.Close()

	// The singleton keeps its id across updates.
	getResponse = doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/homepage", nil))
	data = decodeBody(t, getResponse.Body)["data"].(map[string]any)
	getResponse.Body.Close()
	if data["id"] != firstID {
		t.Fatalf("expected singleton id %v, got %v", firstID, data["id"])
	}
	if data["heroTitle"] != "Computational Biology Lab" || data["piName"] != "Dr. Example" {
		t.Fatalf("update lost: %v", data)
	}
	areas := data["researchAreas"].([]any)
	if len(areas) != 1 || areas[0].(map[string]any)["title"] != "Genomics" {
		t.Fatalf("research areas lost: %v", areas)
	}
}

func TestSettingUpsert(t *testing.T) {
	app, _ := newTestApp(t)

	first := jsonRequest(t, http.MethodPost, "/api/settings", map[string]any{
		"key":   "site_title",
		"value": "Lab Website",
	})
	firstResponse := doRequest(t, app, first)
	firstResponse.Body.Close()
	if firstResponse.StatusCode != http.StatusOK {
		t.Fatalf("first upsert: expected 200, got %d", firstResponse.StatusCode)
	}

	second := jsonRequest(t, http.MethodPost, "/api/settings", map[string]any{
		"key":   "site_title",
		"value": "Renamed Lab Website",
	})
	secondResponse := doRequest(t, app, second)
	secondResponse.Body.Close()
	if secondResponse.StatusCode != http.StatusOK {
		t.Fatalf("second upsert: expected 200, got %d", secondResponse.StatusCode)
	}

	listResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/settings", nil))
	listed := decodeBody(t, listResponse.Body)["data"].([]any)
	listResponse.Body.Close()
	if len(listed) != 1 {
		t.Fatalf("expected one setting after upsert, got %d", len(listed))
	}
	setting := listed[0].(map[string]any)
	if setting["value"] != "Renamed Lab Website" {
		t.Fatalf("expected replaced value, got %v", setting["value"])
	}
}

func TestSettingRequiresKey(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/settings", map[string]any{"value": "orphan"})
	response := doRequest(t, app, request)
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := doRequest(t, app, jsonRequest(t, http.MethodGet, "/healthz", nil))
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
}
