package controllers

import (
	"net/http"

	"github.com/ayiqazmi/MyCalorie/models"
	"github.com/ayiqazmi/MyCalorie/services"
	"github.com/ayiqazmi/MyCalorie/utils"

	"github.com/gin-gonic/gin"
)

func ListFoods(c *gin.Context) {
	catalog := services.NewCatalogService()
	foods, err := catalog.ListFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// SubmitFood adds one regional dish to the catalog. The optional image
// is a data URL, uploaded to S3 before the row is written.
func SubmitFood(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Calories    float64 `json:"calories" binding:"required"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
		VitaminC    float64 `json:"vitaminC"`
		Calcium     float64 `json:"calcium"`
		Iron        float64 `json:"iron"`
		Potassium   float64 `json:"potassium"`
		Fiber       float64 `json:"fiber"`
		Sugar       float64 `json:"sugar"`
		Ingredients string  `json:"ingredients"`
		ImageBase64 string  `json:"image_base64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		VitaminC:    req.VitaminC,
		Calcium:     req.Calcium,
		Iron:        req.Iron,
		Potassium:   req.Potassium,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Ingredients: req.Ingredients,
		SubmittedBy: user.ID,
	}

	if req.ImageBase64 != "" {
		url, err := utils.UploadFoodImage(req.ImageBase64, req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image upload failed: " + err.Error()})
			return
		}
		food.ImageURL = url
	}

	catalog := services.NewCatalogService()
	if err := catalog.SubmitFood(&food); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "could not save food"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"food": food})
}
