package repo

import (
	"context"

	"github.com/edupract/exam_platform/internal/models"
)

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByIDAndRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("id = ? AND role = ?", id, role).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) UsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Where("role = ?", role).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserIDExists and UserEmailExists back the uniqueness checks done before
// create and update.
func (r *GormRepo) UserIDExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) UserEmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// UpdateUser rewrites the identity columns of the user currently stored
// under oldID. The ID itself may change; password stays untouched here
// (password changes go through a separate flow).
func (r *GormRepo) UpdateUser(ctx context.Context, oldID int64, user *models.User) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", oldID).
		Updates(map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		}).Error
}

func (r *GormRepo) DeleteUser(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
