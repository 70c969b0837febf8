package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kitlab/jersey-shop/internal/models"
)

type bannerResponse struct {
	Success bool          `json:"success"`
	Banner  models.Banner `json:"banner"`
}

func seedBanner(t *testing.T, env *testEnv, caption string, createdAt time.Time) models.Banner {
	t.Helper()
	b := models.Banner{
		ID:        uuid.New(),
		Image:     "https://cdn.example.com/banner.jpg",
		Caption:   caption,
		CreatedAt: createdAt,
	}
	require.NoError(t, env.DB.Create(&b).Error)
	return b
}

func TestCreateBanner(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{
		"image":   "https://cdn.example.com/sale.jpg",
		"caption": "Season sale",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/banner", body)
	require.NoError(t, env.Banners.CreateBanner(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Banner
	decodeJSON(t, rec, &resp)
	require.Equal(t, "Season sale", resp.Caption)
}

func TestCreateBanner_MissingCaption(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/banner", map[string]any{"image": "https://cdn.example.com/sale.jpg"})
	requireHTTPError(t, env.Banners.CreateBanner(c), http.StatusBadRequest)
}

func TestCreateBanner_MissingImage(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/banner", map[string]any{"caption": "Season sale"})
	requireHTTPError(t, env.Banners.CreateBanner(c), http.StatusBadRequest)
}

func TestGetBanner(t *testing.T) {
	env := newTestEnv(t)
	b := seedBanner(t, env, "hello", time.Now().UTC())

	rec, c := env.doJSONRequest(http.MethodGet, "/banner/"+b.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())
	require.NoError(t, env.Banners.GetBanner(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp bannerResponse
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, b.ID, resp.Banner.ID)
}

func TestUpdateBanner_Caption(t *testing.T) {
	env := newTestEnv(t)
	b := seedBanner(t, env, "old caption", time.Now().UTC())

	rec, c := env.doJSONRequest(http.MethodPut, "/banner/"+b.ID.String(), map[string]any{"caption": "new caption"})
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())
	require.NoError(t, env.Banners.UpdateBanner(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp bannerResponse
	decodeJSON(t, rec, &resp)
	require.Equal(t, "new caption", resp.Banner.Caption)
	require.Equal(t, b.Image, resp.Banner.Image)
}

func TestDeleteBanner_Twice(t *testing.T) {
	env := newTestEnv(t)
	b := seedBanner(t, env, "bye", time.Now().UTC())

	rec, c := env.doJSONRequest(http.MethodDelete, "/banner/"+b.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(b.ID.String())
	require.NoError(t, env.Banners.DeleteBanner(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, c2 := env.doJSONRequest(http.MethodDelete, "/banner/"+b.ID.String(), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(b.ID.String())
	requireHTTPError(t, env.Banners.DeleteBanner(c2), http.StatusNotFound)
}
