package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ayiqazmi/MyCalorie/planner"
	"github.com/ayiqazmi/MyCalorie/services"

	"github.com/gin-gonic/gin"
)

// GetMealPlan returns the plan for ?date=YYYY-MM-DD (default today),
// generating and storing one if the day has no plan yet.
func GetMealPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	planSvc := services.NewPlanService()
	res, err := planSvc.PlanForDate(c.Request.Context(), user, date)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegenerateMealPlan rebuilds today's plan (or ?date=) with a fresh
// timestamp-derived seed, overwriting the stored one.
func RegenerateMealPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	planSvc := services.NewPlanService()
	res, err := planSvc.Regenerate(c.Request.Context(), user, date)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrIncompleteProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "set your health goal and target calories first"})
	case errors.Is(err, services.ErrEmptyPlan):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not build a plan today, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
