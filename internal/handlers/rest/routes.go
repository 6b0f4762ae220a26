package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
)

type generationQuery struct {
	Generation int `form:"generation"`
}

type speciesQuery struct {
	Prefix string `form:"prefix"`
	Limit  int    `form:"limit"`
}

// GetCoverage handles POST /coverage
func (h *Handler) GetCoverage(c *gin.Context) {
	var req v1alpha1.GetCoverageRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.GetCoverage(ctx(c), &req)
	respond(h, c, resp, err)
}

// Recommend handles POST /recommend
func (h *Handler) Recommend(c *gin.Context) {
	var req v1alpha1.RecommendRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Recommend(ctx(c), &req)
	respond(h, c, resp, err)
}

// LookupPokemon handles GET /pokemon/:name?generation=
func (h *Handler) LookupPokemon(c *gin.Context) {
	var q generationQuery
	if !h.bindQuery(c, &q) {
		return
	}
	resp, err := h.service.LookupPokemon(ctx(c), &v1alpha1.LookupPokemonRequest{
		Name:       c.Param("name"),
		Generation: q.Generation,
	})
	respond(h, c, resp, err)
}

// LookupMove handles GET /moves/:name
func (h *Handler) LookupMove(c *gin.Context) {
	resp, err := h.service.LookupMove(ctx(c), &v1alpha1.LookupMoveRequest{Name: c.Param("name")})
	respond(h, c, resp, err)
}

// ListSpecies handles GET /species?prefix=&limit=
func (h *Handler) ListSpecies(c *gin.Context) {
	var q speciesQuery
	if !h.bindQuery(c, &q) {
		return
	}
	resp, err := h.service.ListSpecies(ctx(c), &v1alpha1.ListSpeciesRequest{
		Prefix: q.Prefix,
		Limit:  q.Limit,
	})
	respond(h, c, resp, err)
}

// SignIn handles POST /auth/sign-in
func (h *Handler) SignIn(c *gin.Context) {
	var req v1alpha1.SignInRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.SignIn(ctx(c), &req)
	respond(h, c, resp, err)
}

// SignOut handles POST /auth/sign-out
func (h *Handler) SignOut(c *gin.Context) {
	resp, err := h.service.SignOut(ctx(c), &v1alpha1.SignOutRequest{})
	respond(h, c, resp, err)
}

// GetCurrentUser handles GET /auth/me
func (h *Handler) GetCurrentUser(c *gin.Context) {
	resp, err := h.service.GetCurrentUser(ctx(c), &v1alpha1.GetCurrentUserRequest{})
	respond(h, c, resp, err)
}

// DeleteAccount handles DELETE /account
func (h *Handler) DeleteAccount(c *gin.Context) {
	resp, err := h.service.DeleteAccount(ctx(c), &v1alpha1.DeleteAccountRequest{})
	respond(h, c, resp, err)
}

// ListTeams handles GET /teams
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(ctx(c), &v1alpha1.ListTeamsRequest{})
	respond(h, c, resp, err)
}

// SaveTeam handles POST /teams
func (h *Handler) SaveTeam(c *gin.Context) {
	var req v1alpha1.SaveTeamRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.SaveTeam(ctx(c), &req)
	respond(h, c, resp, err)
}

// DeleteTeam handles DELETE /teams/:id
func (h *Handler) DeleteTeam(c *gin.Context) {
	resp, err := h.service.DeleteTeam(ctx(c), &v1alpha1.DeleteTeamRequest{TeamID: c.Param("id")})
	respond(h, c, resp, err)
}

// LoadSnapshot handles GET /snapshots/:key
func (h *Handler) LoadSnapshot(c *gin.Context) {
	resp, err := h.service.LoadSnapshot(ctx(c), &v1alpha1.LoadSnapshotRequest{Key: c.Param("key")})
	respond(h, c, resp, err)
}

// SaveSnapshot handles PUT /snapshots/:key. The key in the path wins over the body.
func (h *Handler) SaveSnapshot(c *gin.Context) {
	var req v1alpha1.SaveSnapshotRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.Key = c.Param("key")
	resp, err := h.service.SaveSnapshot(ctx(c), &req)
	respond(h, c, resp, err)
}
