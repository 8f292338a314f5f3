package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/models"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type TemplateHandler struct {
	Service       *service.TemplateService
	ResultService *service.ResultService
}

func NewTemplateHandler(s *service.TemplateService, resultService *service.ResultService) *TemplateHandler {
	return &TemplateHandler{Service: s, ResultService: resultService}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.Service.GetAllTemplates(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var tpl models.MessageTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateTemplate(context.Background(), &tpl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id := c.Param("id")
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateTemplate(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteTemplate(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetPersonalizedMessage selects and renders the coaching message for an
// assessment's result. Render variables come from the query string.
func (h *TemplateHandler) GetPersonalizedMessage(c *gin.Context) {
	assessmentID := c.Param("id")
	result, err := h.ResultService.GetByAssessment(context.Background(), assessmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}

	vars := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			vars[key] = values[0]
		}
	}

	name, message, err := h.Service.SelectMessage(context.Background(), result, vars)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No template matched"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"template": name,
		"message":  message,
	})
}
