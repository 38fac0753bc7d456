package repo

import (
	"context"

	"github.com/edupract/exam_platform/internal/models"
)

func (r *GormRepo) Topics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.DB.WithContext(ctx).Order("id").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *GormRepo) TopicByID(ctx context.Context, id int64) (*models.Topic, error) {
	var topic models.Topic
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *GormRepo) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return r.DB.WithContext(ctx).Create(topic).Error
}

func (r *GormRepo) UpdateTopic(ctx context.Context, topic *models.Topic) error {
	return r.DB.WithContext(ctx).Model(&models.Topic{}).
		Where("id = ?", topic.ID).
		Updates(map[string]any{
			"course_id": topic.CourseID,
			"name":      topic.Name,
		}).Error
}

func (r *GormRepo) DeleteTopic(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&models.Topic{}, "id = ?", id).Error
}
