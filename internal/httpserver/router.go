package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	metricsmw "github.com/kitlab/jersey-shop/pkg/middleware/metrics"
)

type Deps struct {
	Products *ProductHTTP
	Combos   *ComboHTTP
	Banners  *BannerHTTP
	Orders   *OrderHTTP
	Auth     *AuthHTTP
	Search   *SearchHTTP
}

// Register wires the storefront routes. Path shapes (the /api prefix on
// some mutating routes, /combos/:id next to /combo/:id) mirror what the
// deployed frontend calls.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", metricsmw.Handler())

	e.POST("/admin", d.Auth.AdminLogin)

	e.POST("/products", d.Products.CreateProduct)
	e.GET("/products", d.Products.ListProducts)
	e.GET("/products/:id", d.Products.GetProduct)
	e.PUT("/api/products/:id", d.Products.UpdateProduct)
	e.DELETE("/api/products/:id", d.Products.DeleteProduct)

	e.POST("/combo", d.Combos.CreateCombo)
	e.GET("/combo", d.Combos.ListCombos)
	e.GET("/combos/:id", d.Combos.GetCombo)
	e.PUT("/combo/:id", d.Combos.UpdateCombo)
	e.DELETE("/combo/:id", d.Combos.DeleteCombo)

	e.POST("/banner", d.Banners.CreateBanner)
	e.GET("/banner", d.Banners.ListBanners)
	e.GET("/banner/:id", d.Banners.GetBanner)
	e.PUT("/banner/:id", d.Banners.UpdateBanner)
	e.DELETE("/banner/:id", d.Banners.DeleteBanner)

	e.POST("/order", d.Orders.PlaceOrder)
	e.GET("/orders", d.Orders.ListOrders)
	e.PATCH("/orders/:id", d.Orders.PatchOrder)
	e.GET("/my-orders", d.Orders.ListMyOrders)

	e.GET("/search", d.Search.SearchProducts)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/check", d.Auth.Check)
	auth.POST("/logout", d.Auth.Logout)
}
