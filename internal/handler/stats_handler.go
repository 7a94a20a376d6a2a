package handler

import (
	"net/http"
	"time"

	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/internal/service"
	"coachlab.fr/suivicoach/pkg/apperror"
	"coachlab.fr/suivicoach/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatsHandler exposes the coach-facing read models over an athlete's
// journal and performance history.
type StatsHandler struct {
	journalService     service.JournalService
	performanceService service.PerformanceService
}

func NewStatsHandler(journalService service.JournalService, performanceService service.PerformanceService) *StatsHandler {
	return &StatsHandler{
		journalService:     journalService,
		performanceService: performanceService,
	}
}

func (h *StatsHandler) GetJournalHistory(c *gin.Context) {
	athleteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	points, err := h.journalService.History(c.Request.Context(), athleteID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": points})
}

func (h *StatsHandler) GetExerciseSeries(c *gin.Context) {
	athleteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	filter, err := statsFilter(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	series, err := h.performanceService.ExerciseSeries(c.Request.Context(), athleteID, filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": series})
}

func (h *StatsHandler) GetTonnage(c *gin.Context) {
	athleteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	filter, err := statsFilter(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	tonnage, err := h.performanceService.Tonnage(c.Request.Context(), athleteID, filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tonnage})
}

func (h *StatsHandler) GetWeekOverWeek(c *gin.Context) {
	athleteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	summary, err := h.performanceService.WeekOverWeek(c.Request.Context(), athleteID, c.Query("date"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func statsFilter(c *gin.Context) (repository.PerformanceFilter, error) {
	filter := repository.PerformanceFilter{Exercise: c.Query("exercise")}

	if raw := c.Query("session_id"); raw != "" {
		sessionID, err := uuid.Parse(raw)
		if err != nil {
			return filter, apperror.ErrInvalidInput
		}
		filter.SessionID = &sessionID
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return filter, apperror.ErrInvalidInput
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return filter, apperror.ErrInvalidInput
		}
		filter.To = to
	}

	return filter, nil
}
