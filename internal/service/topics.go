package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/transport"
)

type TopicService struct {
	Repo *repo.GormRepo
}

func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.Repo.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (s *TopicService) Get(ctx context.Context, id int64) (*models.Topic, error) {
	topic, err := s.Repo.TopicByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: topic", ErrNotFound)
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

func (s *TopicService) Create(ctx context.Context, req transport.TopicRequest) (*models.Topic, error) {
	if req.Name == "" || req.CourseID <= 0 {
		return nil, fmt.Errorf("%w: topic name and course id are required", ErrValidation)
	}
	topic := &models.Topic{CourseID: req.CourseID, Name: req.Name}
	if err := s.Repo.CreateTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}

func (s *TopicService) Update(ctx context.Context, id int64, req transport.TopicRequest) (*models.Topic, error) {
	if req.Name == "" || req.CourseID <= 0 {
		return nil, fmt.Errorf("%w: topic name and course id are required", ErrValidation)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	topic := &models.Topic{ID: id, CourseID: req.CourseID, Name: req.Name}
	if err := s.Repo.UpdateTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}
	return topic, nil
}

func (s *TopicService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteTopic(ctx, id); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}
