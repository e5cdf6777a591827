package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rnp2860/boleh-makan-vo-sub000/config"
	"github.com/rnp2860/boleh-makan-vo-sub000/models"
	"github.com/rnp2860/boleh-makan-vo-sub000/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
		FullName: fullName,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

type ProfileInput struct {
	FullName         string  `json:"full_name"`
	Birthday         string  `json:"birthday"` // YYYY-MM-DD
	Sex              string  `json:"sex"`
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	HealthConditions string  `json:"health_conditions"` // comma-separated
	Onboarded        bool    `json:"onboarded"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}
	bmi, _ := utils.CalculateBMI(user.Height, user.Weight)

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"birthday":          user.Birthday.Format("2006-01-02"),
		"age":               age,
		"sex":               user.Sex,
		"height":            user.Height,
		"weight":            user.Weight,
		"bmi":               bmi,
		"bmi_category":      utils.BMICategory(bmi),
		"health_conditions": user.ActiveConditions(),
		"onboarded":         user.Onboarded,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Sex != "" {
		user.Sex = strings.ToLower(strings.TrimSpace(input.Sex))
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.HealthConditions != "" {
		user.HealthConditions = strings.ToLower(input.HealthConditions)
	}
	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}
