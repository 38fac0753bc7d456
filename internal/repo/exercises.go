package repo

import (
	"context"

	"github.com/edupract/exam_platform/internal/models"
)

func (r *GormRepo) Exercises(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := r.DB.WithContext(ctx).Order("id").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *GormRepo) ExerciseByID(ctx context.Context, id int64) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *GormRepo) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	return r.DB.WithContext(ctx).Create(exercise).Error
}

func (r *GormRepo) UpdateExercise(ctx context.Context, exercise *models.Exercise) error {
	return r.DB.WithContext(ctx).Model(&models.Exercise{}).
		Where("id = ?", exercise.ID).
		Updates(map[string]any{
			"topic_id":       exercise.TopicID,
			"content_type":   exercise.ContentType,
			"content_value":  exercise.ContentValue,
			"answer_options": exercise.AnswerOptions,
			"correct_answer": exercise.CorrectAnswer,
		}).Error
}

func (r *GormRepo) DeleteExercise(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&models.Exercise{}, "id = ?", id).Error
}
