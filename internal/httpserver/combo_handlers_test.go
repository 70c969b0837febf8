package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kitlab/jersey-shop/internal/models"
)

type comboResponse struct {
	Success bool                `json:"success"`
	Combo   models.ComboProduct `json:"combo"`
}

func comboBody() map[string]any {
	return map[string]any{
		"name":        "Derby Day Bundle",
		"model":       "derby-25",
		"price":       "79.99",
		"description": "home and away shirts together",
		"images": []string{
			"https://cdn.example.com/derby-home.jpg",
			"https://cdn.example.com/derby-away.jpg",
		},
	}
}

func seedCombo(t *testing.T, env *testEnv, name string, createdAt time.Time) models.ComboProduct {
	t.Helper()
	combo := models.ComboProduct{
		ID:          uuid.New(),
		Name:        name,
		Model:       "combo-" + name,
		Price:       50,
		Description: "seeded combo",
		Images:      models.StringList{"https://cdn.example.com/one.jpg"},
		CreatedAt:   createdAt,
	}
	require.NoError(t, env.DB.Create(&combo).Error)
	return combo
}

func TestCreateCombo(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/combo", comboBody())
	require.NoError(t, env.Combos.CreateCombo(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ComboProduct
	decodeJSON(t, rec, &resp)
	require.Equal(t, 79.99, resp.Price)
	require.Len(t, resp.Images, 2)
}

func TestCreateCombo_EmptyImages(t *testing.T) {
	env := newTestEnv(t)

	body := comboBody()
	body["images"] = []string{}

	_, c := env.doJSONRequest(http.MethodPost, "/combo", body)
	requireHTTPError(t, env.Combos.CreateCombo(c), http.StatusBadRequest)

	var count int64
	require.NoError(t, env.DB.Model(&models.ComboProduct{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestGetCombo_RoundTripsImages(t *testing.T) {
	env := newTestEnv(t)
	combo := seedCombo(t, env, "bundle", time.Now().UTC())

	rec, c := env.doJSONRequest(http.MethodGet, "/combos/"+combo.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(combo.ID.String())
	require.NoError(t, env.Combos.GetCombo(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp comboResponse
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, combo.ID, resp.Combo.ID)
	require.Equal(t, combo.Images, resp.Combo.Images)
}

func TestListCombos_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	older := seedCombo(t, env, "older", base)
	newer := seedCombo(t, env, "newer", base.Add(time.Hour))

	rec, c := env.doJSONRequest(http.MethodGet, "/combo", nil)
	require.NoError(t, env.Combos.ListCombos(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.ComboProduct
	decodeJSON(t, rec, &resp)
	require.Len(t, resp, 2)
	require.Equal(t, newer.ID, resp[0].ID)
	require.Equal(t, older.ID, resp[1].ID)
}

func TestUpdateCombo_ReplacesImages(t *testing.T) {
	env := newTestEnv(t)
	combo := seedCombo(t, env, "bundle", time.Now().UTC())

	body := map[string]any{"images": []string{"https://cdn.example.com/new.jpg"}}
	rec, c := env.doJSONRequest(http.MethodPut, "/combo/"+combo.ID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(combo.ID.String())
	require.NoError(t, env.Combos.UpdateCombo(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp comboResponse
	decodeJSON(t, rec, &resp)
	require.Equal(t, models.StringList{"https://cdn.example.com/new.jpg"}, resp.Combo.Images)
	require.Equal(t, combo.Name, resp.Combo.Name)
}

func TestDeleteCombo_Twice(t *testing.T) {
	env := newTestEnv(t)
	combo := seedCombo(t, env, "bundle", time.Now().UTC())

	rec, c := env.doJSONRequest(http.MethodDelete, "/combo/"+combo.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(combo.ID.String())
	require.NoError(t, env.Combos.DeleteCombo(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, c2 := env.doJSONRequest(http.MethodDelete, "/combo/"+combo.ID.String(), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(combo.ID.String())
	requireHTTPError(t, env.Combos.DeleteCombo(c2), http.StatusNotFound)
}
