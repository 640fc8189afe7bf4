package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only project routes and the contact form.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/featured", h.featured)
	rg.GET("/projects/:id", h.get)
	rg.POST("/contact", h.contact)
}

// RegisterAdmin attaches the mutating project routes. The caller is expected
// to have put the session middleware on rg already.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/projects", h.createProject)
	rg.PATCH("/projects/:id", h.updateProject)
	rg.DELETE("/projects/:id", h.deleteProject)
}
