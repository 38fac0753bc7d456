package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edupract/exam_platform/internal/hash"
	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/tokens"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Topic{},
		&models.Exercise{},
		&models.ExamQuestion{},
		&models.Video{},
	))
	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.New(newTestDB(t))
}

func newTestTokens() *tokens.Service {
	return tokens.NewService([]byte("test-jwt-secret"), 2*time.Hour)
}

func seedUser(t *testing.T, r *repo.GormRepo, id int64, name, email, password string, role models.Role) *models.User {
	t.Helper()

	pwHash, err := hash.Password(password)
	require.NoError(t, err)

	user := &models.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, r.CreateUser(context.Background(), user))
	return user
}
