package api

import (
	"errors"
	"net/http"

	"github.com/Kendal-dot/racebuddy/internal/service"

	"github.com/gin-gonic/gin"
)

// RaceHandler serves the race catalogue.
type RaceHandler struct {
	raceService service.RaceService
}

// NewRaceHandler creates a new RaceHandler.
func NewRaceHandler(raceService service.RaceService) *RaceHandler {
	return &RaceHandler{raceService: raceService}
}

// ListRaces returns all supported races.
func (h *RaceHandler) ListRaces(c *gin.Context) {
	c.JSON(http.StatusOK, h.raceService.ListRaces())
}

// GetRace returns one race by ID.
func (h *RaceHandler) GetRace(c *gin.Context) {
	race, err := h.raceService.GetRace(c.Param("raceId"))
	if err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve race")
		return
	}
	c.JSON(http.StatusOK, race)
}

// GetRaceTips returns the training and race-day tips for one race.
func (h *RaceHandler) GetRaceTips(c *gin.Context) {
	tips, err := h.raceService.GetTips(c.Param("raceId"))
	if err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve tips")
		return
	}
	c.JSON(http.StatusOK, tips)
}
