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

type CourseService struct {
	Repo *repo.GormRepo
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.Repo.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.Repo.CourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course", ErrNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Create(ctx context.Context, req transport.CourseRequest) (*models.Course, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: course name is required", ErrValidation)
	}
	course := &models.Course{Name: req.Name}
	if err := s.Repo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id int64, req transport.CourseRequest) (*models.Course, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: course name is required", ErrValidation)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	course := &models.Course{ID: id, Name: req.Name}
	if err := s.Repo.UpdateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
