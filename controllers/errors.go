package controllers

import (
	"errors"
	"log"
	"net/http"

	"car-rental-backend/services"
	"car-rental-backend/utils"

	"github.com/gin-gonic/gin"
)

func respondInvalidPayload(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid request body: "+err.Error())
}

// respondServiceError maps service errors onto the API's error body. Domain
// failures all answer 400; only bad credentials answer 401.
func respondServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
	case errors.Is(err, services.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "error.slotUnavailable", err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusBadRequest, "error.notFound", err.Error())
	case errors.Is(err, services.ErrDuplicateUsername):
		utils.JSONError(c, http.StatusBadRequest, "error.duplicateUsername", err.Error())
	default:
		log.Printf("%s error: %v", op, err)
		utils.JSONError(c, http.StatusBadRequest, "error.database", err.Error())
	}
}
