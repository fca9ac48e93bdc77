package rest

import (
	"context"
	"net/http"

	docs "github.com/activitylog/api/docs/activity"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	// browser front-ends call the API from other origins
	engine.Use(middleware.CORS())
	engine.GET("/", h.echoHandler(h.Root))
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	{
		activities := api.Group("/activities")
		activities.POST("", h.echoHandler(h.CreateActivity))
		activities.GET("", h.echoHandler(h.ListActivities))
		activities.GET("/user/:userId", h.echoHandlerWithParams(h.ListActivitiesByUser))
		activities.GET("/action/:action", h.echoHandlerWithParams(h.ListActivitiesByAction))
		activities.GET("/range", h.echoHandler(h.ListActivitiesByDateRange))
		activities.DELETE("/cleanup/:days", h.echoHandlerWithParams(h.CleanupActivities))
		activities.GET("/:id", h.echoHandlerWithParams(h.GetActivity))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

// pathParamKey is a type for path parameter context keys
type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
