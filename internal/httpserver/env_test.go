package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kitlab/jersey-shop/internal/config"
	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/search"
	"github.com/kitlab/jersey-shop/internal/service"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "super-secret"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Products *ProductHTTP
	Combos   *ComboHTTP
	Banners  *BannerHTTP
	Orders   *OrderHTTP
	Auth     *AuthHTTP
	Search   *SearchHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise every pool conn gets its own :memory: db
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	rp := &repo.GormRepo{DB: db}

	env := &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,

		Products: &ProductHTTP{Svc: &service.CatalogService{Repo: rp}},
		Combos:   &ComboHTTP{Svc: &service.ComboService{Repo: rp}},
		Banners:  &BannerHTTP{Svc: &service.BannerService{Repo: rp}},
		Orders:   &OrderHTTP{Svc: &service.OrderService{Repo: rp}},
		Auth: &AuthHTTP{Svc: &service.AuthService{
			Repo: rp,
			Admin: config.Admin{
				Username: testAdminUser,
				Password: testAdminPassword,
			},
		}},
		Search: &SearchHTTP{Svc: &search.Service{Repo: rp}},
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return env
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
