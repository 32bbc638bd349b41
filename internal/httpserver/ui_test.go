package httpserver

import (
	"net/http"
	"strings"
	"testing"
)

func modalsOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	modals, ok := body["modals"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing modals in %v", body)
	}
	return modals
}

func TestModalsStartHidden(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/ui/state", "")
	modals := modalsOf(t, decodeBody(t, rec))
	if modals["cartOpen"].(bool) || modals["checkoutOpen"].(bool) || modals["accountMenuOpen"].(bool) {
		t.Fatalf("expected all modals hidden initially: %v", modals)
	}
}

func TestCartModalOpenClose(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Widget","price":10}`)

	rec := doJSON(t, router, http.MethodPost, "/ui/cart/open", "")
	body := decodeBody(t, rec)
	if !modalsOf(t, body)["cartOpen"].(bool) {
		t.Fatalf("expected cart modal open")
	}
	if !strings.Contains(body["view"].(string), "Widget") {
		t.Fatalf("expected re-rendered cart view, got %v", body["view"])
	}

	rec = doJSON(t, router, http.MethodPost, "/ui/cart/close", "")
	if modalsOf(t, decodeBody(t, rec))["cartOpen"].(bool) {
		t.Fatalf("expected cart modal closed")
	}
}

func TestCheckoutTriggerSwapsModals(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/ui/cart/open", "")
	rec := doJSON(t, router, http.MethodPost, "/ui/checkout/open", "")
	modals := modalsOf(t, decodeBody(t, rec))
	if modals["cartOpen"].(bool) {
		t.Fatalf("expected cart modal hidden after checkout trigger")
	}
	if !modals["checkoutOpen"].(bool) {
		t.Fatalf("expected checkout modal visible")
	}

	rec = doJSON(t, router, http.MethodPost, "/ui/checkout/close", "")
	if modalsOf(t, decodeBody(t, rec))["checkoutOpen"].(bool) {
		t.Fatalf("expected checkout modal closed")
	}
}

func TestAccountMenuToggle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/ui/account-menu/toggle", "")
	if decodeBody(t, rec)["accountMenuOpen"] != true {
		t.Fatalf("expected menu open after first toggle")
	}
	rec = doJSON(t, router, http.MethodPost, "/ui/account-menu/toggle", "")
	if decodeBody(t, rec)["accountMenuOpen"] != false {
		t.Fatalf("expected menu closed after second toggle")
	}
}

func TestUIStateReportsCountAndSession(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Widget","price":10}`)
	doJSON(t, router, http.MethodPost, "/cart/items", `{"id":"p1","name":"Widget","price":10}`)

	rec := doJSON(t, router, http.MethodGet, "/ui/state", "")
	body := decodeBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Fatalf("expected count 2, got %v", body["count"])
	}
	if body["loggedIn"] != false {
		t.Fatalf("expected anonymous state, got %v", body)
	}
}
