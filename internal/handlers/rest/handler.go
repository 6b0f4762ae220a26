// Package rest exposes the team builder service as HTTP/JSON for browser clients
package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

// Config holds dependencies for the HTTP gateway
type Config struct {
	// Service is the gRPC service implementation the gateway calls in-process
	Service v1alpha1.TeamBuilderServiceServer
	Auth    auth.Provider
	Logger  *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Auth == nil {
		vb.RequiredField("Auth")
	}
	return vb.Build()
}

// Handler serves the /v1 HTTP routes
type Handler struct {
	service v1alpha1.TeamBuilderServiceServer
	auth    auth.Provider
	logger  *zap.Logger
}

// NewHandler creates a new gateway handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		service: cfg.Service,
		auth:    cfg.Auth,
		logger:  logger,
	}, nil
}

// NewRouter builds a gin engine with recovery, auth and the /v1 routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.Use(h.Authenticate)
	h.RegisterRoutes(v1)

	return router
}

// RegisterRoutes registers the team builder routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// analysis
	router.POST("/coverage", h.GetCoverage)
	router.POST("/recommend", h.Recommend)

	// lookup
	router.GET("/pokemon/:name", h.LookupPokemon)
	router.GET("/moves/:name", h.LookupMove)
	router.GET("/species", h.ListSpecies)

	// accounts
	router.POST("/auth/sign-in", h.SignIn)
	router.POST("/auth/sign-out", h.SignOut)
	router.GET("/auth/me", h.GetCurrentUser)
	router.DELETE("/account", h.DeleteAccount)

	// saved teams
	router.GET("/teams", h.ListTeams)
	router.POST("/teams", h.SaveTeam)
	router.DELETE("/teams/:id", h.DeleteTeam)

	// builder state
	router.GET("/snapshots/:key", h.LoadSnapshot)
	router.PUT("/snapshots/:key", h.SaveSnapshot)
}

// Authenticate resolves "Authorization: Bearer <token>" the same way the gRPC
// interceptor does. Requests without the header continue anonymously.
func (h *Handler) Authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		h.abort(c, errors.Unauthenticated("bad authorization header"))
		return
	}
	token = strings.TrimSpace(token)

	identity, err := h.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.abort(c, err)
		return
	}
	if identity == nil {
		h.abort(c, errors.Unauthenticated("session expired or signed out"))
		return
	}

	ctx := auth.WithIdentity(auth.WithToken(c.Request.Context(), token), identity)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// abort writes err with the HTTP status of its code. Errors coming back
// from the gRPC handler are status errors and are converted back first.
func (h *Handler) abort(c *gin.Context, err error) {
	err = errors.FromGRPCError(err)
	code := errors.GetCode(err)
	httpStatus := code.HTTPStatus()

	if httpStatus >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", code.String()),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(httpStatus, errorBody{Error: errorDetail{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	}})
}

// respond writes resp or the error from the call
func respond[Resp any](h *Handler, c *gin.Context, resp *Resp, err error) {
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindJSON decodes the body into req, reporting a malformed body as InvalidArgument
func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.abort(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}

func (h *Handler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.abort(c, errors.InvalidArgumentf("invalid query: %v", err))
		return false
	}
	return true
}

func ctx(c *gin.Context) context.Context {
	return c.Request.Context()
}
