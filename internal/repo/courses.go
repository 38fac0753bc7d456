package repo

import (
	"context"

	"github.com/edupract/exam_platform/internal/models"
)

func (r *GormRepo) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.DB.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormRepo) CourseByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *GormRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *GormRepo) UpdateCourse(ctx context.Context, course *models.Course) error {
	return r.DB.WithContext(ctx).Model(&models.Course{}).
		Where("id = ?", course.ID).
		Update("name", course.Name).Error
}

func (r *GormRepo) DeleteCourse(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error
}
