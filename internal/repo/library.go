package repo

import (
	"context"

	"github.com/edupract/exam_platform/internal/models"
)

func (r *GormRepo) ExamQuestions(ctx context.Context) ([]models.ExamQuestion, error) {
	var questions []models.ExamQuestion
	if err := r.DB.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *GormRepo) CreateExamQuestion(ctx context.Context, question *models.ExamQuestion) error {
	return r.DB.WithContext(ctx).Create(question).Error
}

func (r *GormRepo) Videos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := r.DB.WithContext(ctx).Order("id").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *GormRepo) CreateVideo(ctx context.Context, video *models.Video) error {
	return r.DB.WithContext(ctx).Create(video).Error
}
