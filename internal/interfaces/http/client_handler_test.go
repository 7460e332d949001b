package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
	"github.com/atlasnegoce/negoce-api/internal/domain/entity"
	apphttp "github.com/atlasnegoce/negoce-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repo en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients []*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients = append(r.clients, c)
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) GetByICE(ice string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ICE == ice {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) { return r.clients, nil }
func (r *fakeClientRepo) Update(*entity.Client) error     { return nil }
func (r *fakeClientRepo) Delete(id string) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return nil
}

// buildTestApp monte les routes clients sur une app Fiber minimale.
func buildTestApp(repo *fakeClientRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewClientHandler(usecase.NewClientUseCase(repo), nil)
	clients := app.Group("/api/clients")
	clients.Post("/", handler.Create)
	clients.Get("/", handler.List)
	clients.Get("/:id", handler.GetByID)
	clients.Delete("/:id", handler.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, url, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientHandler_CreatePuisListe(t *testing.T) {
	app := buildTestApp(&fakeClientRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"nom":"Marbrerie Essaïd","ice":"001234567000089","telephone":"0661234567","ville":"Casablanca"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "création valide : 201 attendu")

	resp2 := doJSON(t, app, http.MethodGet, "/api/clients/", "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var body struct {
		Items []map[string]any `json:"items"`
		Meta  map[string]any   `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Marbrerie Essaïd", body.Items[0]["nom"])
	assert.Equal(t, float64(1), body.Meta["total"])
}

func TestClientHandler_RechercheInsensibleAuxAccents(t *testing.T) {
	repo := &fakeClientRepo{clients: []*entity.Client{
		{ID: "c1", Nom: "Marbrerie Essaïd"},
		{ID: "c2", Nom: "Atlas Granit"},
	}}
	app := buildTestApp(repo)

	resp := doJSON(t, app, http.MethodGet, "/api/clients/?q=essaid", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 1, "la recherche doit ignorer les accents")
	assert.Equal(t, "Marbrerie Essaïd", body.Items[0]["nom"])
}

func TestClientHandler_ICEInvalide_Retourne400(t *testing.T) {
	app := buildTestApp(&fakeClientRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"nom":"Client Test","ice":"123"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "ICE à 3 chiffres : 400 attendu")
}

func TestClientHandler_ICEDuplique_Retourne409(t *testing.T) {
	repo := &fakeClientRepo{clients: []*entity.Client{
		{ID: "c1", Nom: "Existant", ICE: "001234567000089"},
	}}
	app := buildTestApp(repo)

	resp := doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"nom":"Doublon","ice":"001234567000089"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "ICE déjà enregistré : 409 attendu")
}

func TestClientHandler_Introuvable_Retourne404(t *testing.T) {
	app := buildTestApp(&fakeClientRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/clients/inconnu", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientHandler_DateInvalide_Retourne400(t *testing.T) {
	app := buildTestApp(&fakeClientRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/clients/?date_debut=31-01-2026", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "format de date attendu : 2006-01-02")
}

func TestClientHandler_Delete_Retourne204(t *testing.T) {
	repo := &fakeClientRepo{clients: []*entity.Client{{ID: "c1", Nom: "À supprimer"}}}
	app := buildTestApp(repo)

	resp := doJSON(t, app, http.MethodDelete, "/api/clients/c1", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, repo.clients, "le client doit disparaître du repo")
}
