package services

import (
	"errors"

	"github.com/ayiqazmi/MyCalorie/config"
	"github.com/ayiqazmi/MyCalorie/models"
	"github.com/ayiqazmi/MyCalorie/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		// sensible defaults until the profile screens fill these in
		HealthGoal:     "maintain",
		TargetCalories: 2000,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}
