package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/transport"
)

// ExerciseService owns the practice-exercise CRUD. Answer options travel as
// a JSON array on the wire and are stored as one JSON-encoded text column.
type ExerciseService struct {
	Repo *repo.GormRepo
}

func (s *ExerciseService) List(ctx context.Context) ([]transport.ExerciseResponse, error) {
	exercises, err := s.Repo.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	out := make([]transport.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp, err := exerciseToResponse(&exercises[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *ExerciseService) Get(ctx context.Context, id int64) (*transport.ExerciseResponse, error) {
	exercise, err := s.Repo.ExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exercise", ErrNotFound)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return exerciseToResponse(exercise)
}

func (s *ExerciseService) Create(ctx context.Context, req transport.ExerciseRequest) (*transport.ExerciseResponse, error) {
	exercise, err := exerciseFromRequest(0, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exerciseToResponse(exercise)
}

func (s *ExerciseService) Update(ctx context.Context, id int64, req transport.ExerciseRequest) (*transport.ExerciseResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	exercise, err := exerciseFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	return exerciseToResponse(exercise)
}

func (s *ExerciseService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteExercise(ctx, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

func exerciseFromRequest(id int64, req transport.ExerciseRequest) (*models.Exercise, error) {
	if req.TopicID <= 0 || req.ContentType == "" || req.ContentValue == "" {
		return nil, fmt.Errorf("%w: topic id, content type and content value are required", ErrValidation)
	}
	opts, err := json.Marshal(req.AnswerOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: answer options", ErrValidation)
	}
	return &models.Exercise{
		ID:            id,
		TopicID:       req.TopicID,
		ContentType:   req.ContentType,
		ContentValue:  req.ContentValue,
		AnswerOptions: string(opts),
		CorrectAnswer: req.CorrectAnswer,
	}, nil
}

func exerciseToResponse(e *models.Exercise) (*transport.ExerciseResponse, error) {
	var opts []string
	if e.AnswerOptions != "" {
		if err := json.Unmarshal([]byte(e.AnswerOptions), &opts); err != nil {
			return nil, fmt.Errorf("decode answer options for exercise %d: %w", e.ID, err)
		}
	}
	return &transport.ExerciseResponse{
		ID:            e.ID,
		TopicID:       e.TopicID,
		ContentType:   e.ContentType,
		ContentValue:  e.ContentValue,
		AnswerOptions: opts,
		CorrectAnswer: e.CorrectAnswer,
	}, nil
}
