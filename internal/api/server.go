package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CookiesKey is where CookieParser leaves the request cookies.
const CookiesKey = "cookies"

// CookieParser stores the request cookies on the context as a
// map[string]string. No route reads them yet.
func CookieParser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookies := make(map[string]string)
			for _, ck := range c.Cookies() {
				cookies[ck.Name] = ck.Value
			}
			c.Set(CookiesKey, cookies)
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// NewServer builds the echo instance with middleware and every route.
func NewServer(users *UserHandler, games *GameHandler, allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowCredentials: true,
	}))
	e.Use(CookieParser())

	e.GET("/", func(c echo.Context) error {
		return c.String(200, "GameHub server")
	})

	// Routes
	e.GET("/games", games.GetGames)
	e.GET("/games/user", games.GetGamesByOwner)
	e.GET("/games/details", games.GetGameDetails)
	e.GET("/latest/games", games.GetLatestGames)
	e.POST("/games", games.AddGame)
	e.DELETE("/games/:id", games.DeleteGame)

	e.POST("/register", users.Register)
	e.POST("/login", users.Login)
	e.PUT("/update-name", users.UpdateName)
	e.PUT("/update-photo", users.UpdatePhoto)

	return e
}
