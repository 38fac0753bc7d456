package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/transport"
)

// LibraryService serves the read-only study material: the exam question pool
// and the explainer videos. Both are maintained out of band; the API only
// lists them.
type LibraryService struct {
	Repo *repo.GormRepo
}

func (s *LibraryService) Exams(ctx context.Context) ([]transport.ExamQuestionResponse, error) {
	questions, err := s.Repo.ExamQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exam questions: %w", err)
	}
	out := make([]transport.ExamQuestionResponse, 0, len(questions))
	for i := range questions {
		resp, err := examQuestionToResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *LibraryService) Videos(ctx context.Context) ([]models.Video, error) {
	videos, err := s.Repo.Videos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

func examQuestionToResponse(q *models.ExamQuestion) (*transport.ExamQuestionResponse, error) {
	var opts []string
	if q.AnswerOptions != "" {
		if err := json.Unmarshal([]byte(q.AnswerOptions), &opts); err != nil {
			return nil, fmt.Errorf("decode answer options for exam question %d: %w", q.ID, err)
		}
	}
	return &transport.ExamQuestionResponse{
		ID:            q.ID,
		TopicID:       q.TopicID,
		ContentType:   q.ContentType,
		ContentValue:  q.ContentValue,
		AnswerOptions: opts,
		CorrectAnswer: q.CorrectAnswer,
	}, nil
}
