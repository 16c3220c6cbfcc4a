package handlers

import (
	"errors"
	"net/http"

	"github.com/formworks/survey-server/src/services"
	"github.com/formworks/survey-server/src/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SurveyHandler handles survey submission and listing
type SurveyHandler struct {
	surveys *services.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveys *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// SurveyRequest represents the request body for a survey submission
type SurveyRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Message     string `json:"message"`
}

// HandleCreate accepts a public survey submission.
func (sh *SurveyHandler) HandleCreate(c *gin.Context) {
	var req SurveyRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	survey, err := sh.surveys.Create(c.Request.Context(), validation.SurveyInput(req))
	if err != nil {
		var missing *validation.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Please fill all required fields",
				"missing": missing.Fields,
			})
		case errors.Is(err, validation.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid email format",
			})
		case errors.Is(err, validation.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid phone number",
			})
		case errors.Is(err, validation.ErrInvalidGender):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Gender must be one of male, female, other",
			})
		default:
			log.Error().Err(err).Msg("failed to store survey")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    survey,
		"message": "Survey submitted successfully",
	})
}

// HandleList returns all submissions, newest first. The auth gate runs
// before this handler.
func (sh *SurveyHandler) HandleList(c *gin.Context) {
	surveys, err := sh.surveys.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list surveys")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    surveys,
	})
}
