package common

import (
	"errors"

	"vrs/src/db"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"gorm.io/gorm"
)

func ListUsers() ([]*types.APIResponseUser, error) {
	db := db.GetDb()
	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]*types.APIResponseUser, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return out, nil
}

func GetUser(id uint) (*types.APIResponseUser, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("user not found")
		}
		return nil, err
	}
	return userResponse(&user), nil
}

// UpdateUser merges supplied profile fields; only admins may change roles and
// the password is never updatable through this path.
func UpdateUser(id uint, body types.UpdateUserRequestBody, requestingRole types.Role) (*types.APIResponseUser, error) {
	var user models.User
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("id = ?", id).
			First(&user).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("user not found")
			}
			return err
		}

		if body.Email != nil {
			normalized := utils.NormalizeEmail(*body.Email)
			if normalized != user.Email {
				var count int64
				if err := tx.
					Model(&models.User{}).
					Where("email = ? AND id != ?", normalized, id).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count > 0 {
					return types.NewConflict("user with this email already exists")
				}
				user.Email = normalized
			}
		}
		if body.Name != nil {
			user.Name = *body.Name
		}
		if body.Phone != nil {
			user.Phone = *body.Phone
		}
		if body.Role != nil && requestingRole == types.ROLE_ADMIN {
			user.Role = types.Role(*body.Role)
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return userResponse(&user), nil
}

func DeleteUser(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("user not found")
			}
			return err
		}
		var activeBookings int64
		if err := tx.
			Model(&models.Booking{}).
			Where("customer_id = ? AND status = ?", id, types.BOOKING_ACTIVE).
			Count(&activeBookings).
			Error; err != nil {
			return err
		}
		if activeBookings > 0 {
			return types.NewFailedPrecondition("cannot delete user with active bookings")
		}
		return tx.Delete(&user).Error
	})
}

func userResponse(u *models.User) *types.APIResponseUser {
	return &types.APIResponseUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}
