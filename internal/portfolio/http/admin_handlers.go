package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

// createProjectReq mirrors the project schema: all copy fields are required,
// featured defaults to false. Order is a pointer so that 0 is a valid value
// while a missing key is rejected. Unknown fields are ignored.
type createProjectReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Challenge    string `json:"challenge" binding:"required"`
	Solution     string `json:"solution" binding:"required"`
	Impact       string `json:"impact" binding:"required"`
	Image        string `json:"image" binding:"required"`
	Featured     bool   `json:"featured"`
	Order        *int   `json:"order" binding:"required"`
	CaseStudyURL string `json:"caseStudyUrl"`
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data"})
		return
	}

	project, err := h.store.CreateProject(c.Request.Context(), domain.InsertProject{
		Title:        req.Title,
		Description:  req.Description,
		Challenge:    req.Challenge,
		Solution:     req.Solution,
		Impact:       req.Impact,
		Image:        req.Image,
		Featured:     req.Featured,
		Order:        *req.Order,
		CaseStudyURL: req.CaseStudyURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// updateProjectReq is the partial form of createProjectReq; absent fields
// leave the stored value untouched.
type updateProjectReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Challenge    *string `json:"challenge"`
	Solution     *string `json:"solution"`
	Impact       *string `json:"impact"`
	Image        *string `json:"image"`
	Featured     *bool   `json:"featured"`
	Order        *int    `json:"order"`
	CaseStudyURL *string `json:"caseStudyUrl"`
}

func (h *Handler) updateProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data"})
		return
	}

	project, err := h.store.UpdateProject(c.Request.Context(), id, domain.ProjectPatch{
		Title:        req.Title,
		Description:  req.Description,
		Challenge:    req.Challenge,
		Solution:     req.Solution,
		Impact:       req.Impact,
		Image:        req.Image,
		Featured:     req.Featured,
		Order:        req.Order,
		CaseStudyURL: req.CaseStudyURL,
	})
	if errors.Is(err, domain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	deleted, err := h.store.DeleteProject(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
