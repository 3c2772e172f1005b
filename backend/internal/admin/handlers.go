package admin

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/graph"
	"digital-garden/backend/pkg/logger"
)

// Invalidator drops cached tier assemblies after a write. The garden
// service satisfies it.
type Invalidator interface {
	Invalidate()
}

// Handlers holds the admin HTTP handlers.
type Handlers struct {
	logger *zap.Logger
	repo   *graph.Repository
	garden Invalidator
	auth   *Auth
}

// NewHandlers wires the admin surface over the repository.
func NewHandlers(repo *graph.Repository, garden Invalidator, auth *Auth) *Handlers {
	return &Handlers{
		logger: logger.Get(),
		repo:   repo,
		garden: garden,
		auth:   auth,
	}
}

// Register mounts the admin routes. Login and logout sit outside the auth
// middleware, everything else behind it.
func (h *Handlers) Register(r gin.IRouter) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	authed := r.Group("", h.auth.Middleware())
	authed.GET("/nodes", h.ListNodes)
	authed.GET("/nodes/:id", h.GetNode)
	authed.PUT("/nodes/:id", h.UpsertNode)
	authed.DELETE("/nodes/:id", h.DeleteNode)
	authed.POST("/edges", h.CreateEdge)
	authed.DELETE("/edges", h.DeleteEdge)
	authed.GET("/stats", h.Stats)
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login verifies the admin password and sets the session cookie.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		h.logger.Warn("Admin login rejected", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.SetCookie(SessionCookie, token, int(SessionTTL.Seconds()), "/", "", false, true)
	h.logger.Info("Admin login", zap.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Logout clears the session cookie. It never fails, even unauthenticated.
func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListNodes returns nodes matching the optional type/cluster/search query
// parameters.
func (h *Handlers) ListNodes(c *gin.Context) {
	filter := graph.ListFilter{
		Type:    content.NodeType(c.Query("type")),
		Cluster: content.Cluster(c.Query("cluster")),
		Search:  c.Query("search"),
	}
	nodes, err := h.repo.ListNodes(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list nodes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list nodes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "count": len(nodes)})
}

// GetNode returns a single node by ID.
func (h *Handlers) GetNode(c *gin.Context) {
	node, err := h.repo.GetNode(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFound graph.ErrNodeNotFound
		if stderrors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "node not found"})
			return
		}
		h.logger.Error("Failed to get node", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get node"})
		return
	}
	c.JSON(http.StatusOK, node)
}

// UpsertNode creates or replaces the node at :id. The body's id field, if
// present, must match the path.
func (h *Handlers) UpsertNode(c *gin.Context) {
	var node content.Node
	if err := c.ShouldBindJSON(&node); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid node payload"})
		return
	}
	id := c.Param("id")
	if node.ID != "" && node.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id in body does not match path"})
		return
	}
	node.ID = id
	node.Type = content.NormalizeType(string(node.Type))
	if !node.Visibility.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visibility tier"})
		return
	}
	if node.Val <= 0 {
		node.Val = 1
	}

	if err := h.repo.UpsertNode(c.Request.Context(), node); err != nil {
		h.logger.Error("Failed to upsert node", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save node"})
		return
	}
	h.garden.Invalidate()
	c.JSON(http.StatusOK, node)
}

// DeleteNode removes a node and all its edges.
func (h *Handlers) DeleteNode(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.DeleteNode(c.Request.Context(), id); err != nil {
		var notFound graph.ErrNodeNotFound
		if stderrors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "node not found"})
			return
		}
		h.logger.Error("Failed to delete node", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete node"})
		return
	}
	h.garden.Invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type edgeRequest struct {
	Source string `json:"source" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// CreateEdge links two existing nodes. Creating an edge that already exists
// in either direction is a no-op.
func (h *Handlers) CreateEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source and target are required"})
		return
	}
	if err := h.repo.CreateEdge(c.Request.Context(), req.Source, req.Target); err != nil {
		var notFound graph.ErrNodeNotFound
		if stderrors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found: " + notFound.ID})
			return
		}
		h.logger.Error("Failed to create edge", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create edge"})
		return
	}
	h.garden.Invalidate()
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// DeleteEdge removes the link between two nodes regardless of direction.
func (h *Handlers) DeleteEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source and target are required"})
		return
	}
	if err := h.repo.DeleteEdge(c.Request.Context(), req.Source, req.Target); err != nil {
		h.logger.Error("Failed to delete edge", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete edge"})
		return
	}
	h.garden.Invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Stats returns node and edge counts grouped by type, cluster, and
// visibility.
func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.repo.FetchStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
