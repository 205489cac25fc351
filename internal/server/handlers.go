package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
)

// categoryView describes a category and how it is resolved
type categoryView struct {
	model.CategoryInfo
	Policy *resolve.Policy `json:"policy,omitempty"`
	Tiers  []tierView      `json:"tiers,omitempty"`
}

type tierView struct {
	Tier   model.Tier `json:"tier"`
	Source string     `json:"source"`
}

func (s *Server) handleResolve(c *gin.Context) {
	q, err := resolve.ParseQuery(c.Query("category"), c.Query("location"), c.Query("date"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	value, err := s.resolver.ResolveQuery(c.Request.Context(), q)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

func (s *Server) handleCapsule(c *gin.Context) {
	capsule, err := s.batch.Capsule(c.Request.Context(), c.Query("location"), c.Query("date"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, capsule)
}

func (s *Server) handleCategories(c *gin.Context) {
	registry := s.resolver.Registry()

	views := make([]categoryView, 0, len(model.Categories()))
	for _, info := range model.Categories() {
		view := categoryView{CategoryInfo: info}
		if spec, ok := registry.Lookup(info.Category); ok {
			policy := spec.Policy
			view.Policy = &policy
			for _, tier := range spec.Tiers {
				view.Tiers = append(view.Tiers, tierView{Tier: tier.Name, Source: tier.Source.Name()})
			}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"categories": views})
}

// writeError maps caller mistakes to 400; anything else is a 500
func (s *Server) writeError(c *gin.Context, err error) {
	if resolve.IsInvalidInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
