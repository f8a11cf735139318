package controllers

import (
	"net/http"

	"github.com/ayiqazmi/MyCalorie/config"
	"github.com/ayiqazmi/MyCalorie/models"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	email := c.GetString("email")
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":                user.Email,
		"full_name":            user.FullName,
		"allergies":            models.SplitCSV(user.Allergies),
		"health_complications": models.SplitCSV(user.HealthComplications),
		"health_goal":          user.HealthGoal,
		"target_calories":      user.TargetCalories,
	})
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		FullName            *string  `json:"full_name"`
		Allergies           []string `json:"allergies"`
		HealthComplications []string `json:"health_complications"`
		HealthGoal          *string  `json:"health_goal"`
		TargetCalories      *float64 `json:"target_calories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.HealthGoal != nil {
		switch *req.HealthGoal {
		case "lose", "maintain", "gain":
			user.HealthGoal = *req.HealthGoal
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "health_goal must be lose, maintain or gain"})
			return
		}
	}
	if req.TargetCalories != nil {
		if *req.TargetCalories <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target_calories must be positive"})
			return
		}
		user.TargetCalories = *req.TargetCalories
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Allergies != nil {
		user.Allergies = models.JoinCSV(req.Allergies)
	}
	if req.HealthComplications != nil {
		user.HealthComplications = models.JoinCSV(req.HealthComplications)
	}

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
