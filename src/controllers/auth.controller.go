package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"vrs/src/db"
	"vrs/src/lib"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthSignup(ctx *gin.Context) (*types.APIResponseUser, int, error) {
	var body types.SignupRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if len(body.Password) < 6 {
		err := types.NewInvalidArgument("password must be at least 6 characters long")
		return nil, err.HTTPStatus(), err
	}

	role := types.ROLE_CUSTOMER
	if body.Role != "" {
		role = types.Role(body.Role)
	}
	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	user := models.User{
		Name:     body.Name,
		Email:    utils.NormalizeEmail(body.Email),
		Password: hashed,
		Phone:    body.Phone,
		Role:     role,
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", user.Email).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return types.NewConflict("user with this email already exists")
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, types.HTTPStatusOf(err), err
	}

	return &types.APIResponseUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  string(user.Role),
	}, http.StatusCreated, nil
}

func AuthSignin(ctx *gin.Context) (*string, *types.APIResponseUser, int, error) {
	var body types.SigninRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	err := db.
		Model(&models.User{}).
		Where("email = ?", utils.NormalizeEmail(body.Email)).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			authErr := types.NewUnauthorized("invalid email or password")
			return nil, nil, authErr.HTTPStatus(), authErr
		}
		log.Printf("Error retrieving user: %s\n", err.Error())
		return nil, nil, http.StatusInternalServerError, err
	}
	if !utils.VerifyPassword(user.Password, body.Password) {
		authErr := types.NewUnauthorized("invalid email or password")
		return nil, nil, authErr.HTTPStatus(), authErr
	}

	token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating JWT token: %s\n", err.Error())
		return nil, nil, http.StatusInternalServerError, err
	}

	resp := &types.APIResponseUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  string(user.Role),
	}
	cacheUser(resp)

	return &token, resp, http.StatusOK, nil
}

func cacheUser(user *types.APIResponseUser) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	payload, _ := json.Marshal(user)
	key := fmt.Sprintf("%d:user", user.ID)
	if err := rd.Set(context.Background(), key, payload, 0).Err(); err != nil {
		log.Printf("[redis] Error updating user cache: %s\n", err.Error())
	}
}
