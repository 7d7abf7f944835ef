package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/middleware"
)

// TestHandlers serves the exam catalogue and submissions
type TestHandlers struct {
	testSvc domain.TestService
	logger  *zap.Logger
}

// NewTestHandlers creates new test handlers
func NewTestHandlers(testSvc domain.TestService, logger *zap.Logger) *TestHandlers {
	return &TestHandlers{testSvc: testSvc, logger: logger}
}

// SubmitRequest represents a test submission
type SubmitRequest struct {
	Answers domain.AnswerSet `json:"answers" binding:"required"`
}

// List returns the dashboard's test summaries
func (h *TestHandlers) List(c *gin.Context) {
	summaries, err := h.testSvc.ListTests(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list tests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tests"})
		return
	}
	if summaries == nil {
		summaries = []domain.TestSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// Get returns one full test document with questions
func (h *TestHandlers) Get(c *gin.Context) {
	testID, ok := pathTestID(c)
	if !ok {
		return
	}

	test, err := h.testSvc.GetTest(c.Request.Context(), testID)
	if err != nil {
		if errors.Is(err, domain.ErrTestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Test not found"})
			return
		}
		h.logger.Error("failed to fetch test", zap.Uint("test_id", testID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch test"})
		return
	}

	c.JSON(http.StatusOK, testDocument(test))
}

// Submit records the answer set for one attempt
func (h *TestHandlers) Submit(c *gin.Context) {
	testID, ok := pathTestID(c)
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Answers are required"})
		return
	}

	if err := h.testSvc.SubmitAnswers(c.Request.Context(), testID, userID, req.Answers); err != nil {
		switch {
		case errors.Is(err, domain.ErrTestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Test not found"})
		case errors.Is(err, domain.ErrDuplicateSubmission):
			c.JSON(http.StatusConflict, gin.H{"message": "Test already submitted"})
		default:
			h.logger.Error("failed to submit test",
				zap.Uint("test_id", testID),
				zap.Uint("user_id", userID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit test"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test submitted successfully"})
}

func pathTestID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid test id"})
		return 0, false
	}
	return uint(id), true
}

// testDocument shapes the wire form the exam-session client consumes
func testDocument(test *domain.Test) gin.H {
	questions := make([]gin.H, 0, len(test.Questions))
	for _, q := range test.Questions {
		question := gin.H{
			"id":      q.ID,
			"section": q.Section,
			"text":    q.Text,
			"type":    q.Type,
		}
		if q.Type == domain.QuestionMCQ {
			question["options"] = q.Options
		}
		questions = append(questions, question)
	}
	return gin.H{
		"id":          test.ID,
		"title":       test.Title,
		"description": test.Description,
		"duration":    test.DurationMinutes,
		"questions":   questions,
	}
}
