package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/models"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	Service *service.AssessmentService
}

func NewAssessmentHandler(s *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Service: s}
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var assessment models.Assessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if assessment.UserID == "" {
		assessment.UserID = c.GetHeader("X-User-ID")
	}
	if assessment.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	if err := h.Service.CreateAssessment(context.Background(), &assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("id")
	assessment, err := h.Service.GetAssessment(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assessment not found"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) GetAssessmentStatus(c *gin.Context) {
	id := c.Param("id")
	assessment, err := h.Service.GetAssessment(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assessment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             assessment.ID,
		"status":         assessment.Status,
		"response_count": assessment.ResponseCount,
	})
}

func (h *AssessmentHandler) GetAssessmentsByUser(c *gin.Context) {
	userID := c.Param("id")
	assessments, err := h.Service.GetByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assessments)
}

func (h *AssessmentHandler) SubmitResponse(c *gin.Context) {
	id := c.Param("id")
	var response models.QuestionnaireResponse
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if response.QuestionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id is required"})
		return
	}
	if err := h.Service.SubmitResponse(context.Background(), id, &response); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AssessmentHandler) GetResponses(c *gin.Context) {
	id := c.Param("id")
	responses, err := h.Service.GetResponses(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

func (h *AssessmentHandler) CompleteAssessment(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.CompleteAssessment(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AssessmentHandler) RecomputeResult(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.RecomputeResult(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
