// Package transport defines the request and response bodies of the HTTP API.
// Bodies are parsed into these typed structs at the boundary before any
// business logic runs.
package transport

import "github.com/edupract/exam_platform/internal/models"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user record.
// The password hash never leaves the server.
type UserResponse struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	CourseID *int64      `json:"course_id,omitempty"`
}

func UserToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		CourseID: u.CourseID,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateUserRequest struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	CourseID *int64      `json:"course_id,omitempty"`
}

type UpdateUserRequest struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type CourseRequest struct {
	Name string `json:"name"`
}

type TopicRequest struct {
	CourseID int64  `json:"course_id"`
	Name     string `json:"name"`
}

type ExerciseRequest struct {
	TopicID       int64    `json:"topic_id"`
	ContentType   string   `json:"content_type"`
	ContentValue  string   `json:"content_value"`
	AnswerOptions []string `json:"answer_options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type ExerciseResponse struct {
	ID            int64    `json:"id"`
	TopicID       int64    `json:"topic_id"`
	ContentType   string   `json:"content_type"`
	ContentValue  string   `json:"content_value"`
	AnswerOptions []string `json:"answer_options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type ExamQuestionResponse struct {
	ID            int64    `json:"id"`
	TopicID       int64    `json:"topic_id"`
	ContentType   string   `json:"content_type"`
	ContentValue  string   `json:"content_value"`
	AnswerOptions []string `json:"answer_options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the error body of every failing endpoint: a single
// human-readable message, never internal detail.
type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
