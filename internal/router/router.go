package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/errors"
	"storefront/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	settingsHandler *handler.SettingsHandler,
	contactHandler *handler.ContactHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)
	api.GET("/categories", productHandler.ListCategories)
	api.GET("/settings", settingsHandler.GetSettings)
	api.POST("/contact", contactHandler.SubmitMessage)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/profile", userHandler.GetProfile)

	// Cart routes
	secured.GET("/cart", cartHandler.GetCart)
	secured.DELETE("/cart", cartHandler.ClearCart)
	secured.POST("/cart/sync", cartHandler.SyncCart)
	secured.POST("/cart/items", cartHandler.AddItem)
	secured.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	secured.DELETE("/cart/items/:id", cartHandler.RemoveItem)

	// Order routes
	secured.POST("/orders", orderHandler.Checkout)
	secured.GET("/orders/mine", orderHandler.ListMyOrders)
	secured.GET("/orders/:id", orderHandler.GetOrder)

	// Admin routes (role comes from the token, which mirrors the is_admin column)
	admin := secured.Group("", RequireAdmin)

	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)
	admin.DELETE("/products/:id", productHandler.DeleteProduct)

	admin.GET("/orders", orderHandler.ListOrders)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

	admin.PUT("/settings", settingsHandler.UpdateSettings)
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/contact-messages", contactHandler.ListMessages)
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		if !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin access required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
