package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edupract/exam_platform/internal/hash"
	"github.com/edupract/exam_platform/internal/middleware"
	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/service"
	"github.com/edupract/exam_platform/internal/tokens"
	"github.com/edupract/exam_platform/internal/transport"
	"github.com/edupract/exam_platform/internal/upload"
)

type testServer struct {
	echo   *echo.Echo
	repo   *repo.GormRepo
	tokens *tokens.Service
}

func newTestServer(t *testing.T) *testServer {
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

	r := repo.New(db)
	tok := tokens.NewService([]byte("test-jwt-secret"), 2*time.Hour)
	uploadDir := t.TempDir()
	store, err := upload.NewStore(uploadDir)
	require.NoError(t, err)

	e := echo.New()
	Register(e, &Deps{
		Auth:      &AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: tok}},
		Users:     &UserHTTP{Svc: &service.UserService{Repo: r}},
		Courses:   &CourseHTTP{Svc: &service.CourseService{Repo: r}},
		Topics:    &TopicHTTP{Svc: &service.TopicService{Repo: r}},
		Exercises: &ExerciseHTTP{Svc: &service.ExerciseService{Repo: r}, Upload: store},
		Library:   &LibraryHTTP{Svc: &service.LibraryService{Repo: r}},
		AuthMW:    middleware.NewAuth(tok),
		UploadDir: uploadDir,
	})

	return &testServer{echo: e, repo: r, tokens: tok}
}

func (s *testServer) seed(t *testing.T, id int64, name, email, password string, role models.Role) *models.User {
	t.Helper()

	pwHash, err := hash.Password(password)
	require.NoError(t, err)
	user := &models.User{ID: id, Name: name, Email: email, PasswordHash: pwHash, Role: role}
	require.NoError(t, s.repo.CreateUser(context.Background(), user))
	return user
}

func (s *testServer) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := s.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (s *testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.seed(t, 1, "A", "a@x.com", "secret1", models.RoleAdmin)

	rec := srv.request(t, http.MethodPost, "/api/auth/login", "", transport.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[transport.LoginResponse](t, rec)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(1), res.User.ID)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.Equal(t, "A", res.User.Name)
	assert.Equal(t, models.RoleAdmin, res.User.Role)

	// The raw body must never leak the password hash.
	assert.NotContains(t, rec.Body.String(), "password")

	claims, err := srv.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.seed(t, 1, "A", "a@x.com", "secret1", models.RoleAdmin)

	wrongPass := srv.request(t, http.MethodPost, "/api/auth/login", "", transport.LoginRequest{
		Email: "a@x.com", Password: "nope",
	})
	unknownEmail := srv.request(t, http.MethodPost, "/api/auth/login", "", transport.LoginRequest{
		Email: "ghost@x.com", Password: "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Identical bodies: a caller cannot probe which emails exist.
	assert.JSONEq(t, wrongPass.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPass.Body.String(), "invalid email or password")
}

func TestLogin_BadRequests(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.request(t, http.MethodPost, "/api/auth/login", "", transport.LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{broken")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	raw := httptest.NewRecorder()
	srv.echo.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
	assert.Contains(t, raw.Body.String(), "invalid body")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/data/users"},
		{http.MethodGet, "/api/courses/getCourses"},
		{http.MethodGet, "/api/topic/getTopics"},
		{http.MethodGet, "/api/practice/practiceExercises"},
		{http.MethodPost, "/api/user/addUser"},
	}

	for _, p := range paths {
		rec := srv.request(t, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestUserAdmin_RoleGate(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	examinee := srv.seed(t, 2, "E", "e@x.com", "2", models.RoleExaminee)
	teacher := srv.seed(t, 3, "T", "t@x.com", "pw", models.RoleTeacher)

	body := transport.CreateUserRequest{
		ID: 10, Name: "New", Email: "new@x.com", Password: "pw", Role: models.RoleTeacher,
	}

	rec := srv.request(t, http.MethodPost, "/api/user/addUser", srv.tokenFor(t, examinee), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Teachers manage content, not accounts.
	rec = srv.request(t, http.MethodPost, "/api/user/addUser", srv.tokenFor(t, teacher), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserAdmin_CRUDFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	admin := srv.seed(t, 1, "A", "a@x.com", "secret1", models.RoleAdmin)
	adminToken := srv.tokenFor(t, admin)

	rec := srv.request(t, http.MethodPost, "/api/user/addUser", adminToken, transport.CreateUserRequest{
		ID: 5550, Name: "Examinee", Email: "x@x.com", Role: models.RoleExaminee,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[transport.UserResponse](t, rec)
	assert.Equal(t, int64(5550), created.ID)

	// Examinees can log in with their ID number right away.
	login := srv.request(t, http.MethodPost, "/api/auth/login", "", transport.LoginRequest{
		Email: "x@x.com", Password: "5550",
	})
	assert.Equal(t, http.StatusOK, login.Code)

	rec = srv.request(t, http.MethodPut, "/api/user/updateUser/5550", adminToken, transport.UpdateUserRequest{
		ID: 5550, Name: "Renamed", Email: "x@x.com", Role: models.RoleExaminee,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", decodeBody[transport.UserResponse](t, rec).Name)

	rec = srv.request(t, http.MethodGet, "/api/data/examinee/5550", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.request(t, http.MethodDelete, "/api/user/deleteUser/5550", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")

	rec = srv.request(t, http.MethodGet, "/api/data/user/5550", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserAdmin_Conflicts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	admin := srv.seed(t, 1, "A", "a@x.com", "secret1", models.RoleAdmin)
	adminToken := srv.tokenFor(t, admin)

	rec := srv.request(t, http.MethodPost, "/api/user/addUser", adminToken, transport.CreateUserRequest{
		ID: 1, Name: "Dup", Email: "dup@x.com", Password: "pw", Role: models.RoleTeacher,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.request(t, http.MethodPost, "/api/user/addUser", adminToken, transport.CreateUserRequest{
		ID: 2, Name: "Dup", Email: "a@x.com", Password: "pw", Role: models.RoleTeacher,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.request(t, http.MethodPost, "/api/user/addUser", adminToken, transport.CreateUserRequest{
		ID: 3, Name: "Bad", Email: "bad@x.com", Password: "pw", Role: "Janitor",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDataListings(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	admin := srv.seed(t, 1, "A", "a@x.com", "secret1", models.RoleAdmin)
	srv.seed(t, 2, "T", "t@x.com", "pw", models.RoleTeacher)
	examinee := srv.seed(t, 3, "E", "e@x.com", "3", models.RoleExaminee)

	// Any authenticated role can read listings, examinees included.
	token := srv.tokenFor(t, examinee)

	rec := srv.request(t, http.MethodGet, "/api/data/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]transport.UserResponse](t, rec), 3)

	rec = srv.request(t, http.MethodGet, "/api/data/teachers", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	teachers := decodeBody[[]transport.UserResponse](t, rec)
	require.Len(t, teachers, 1)
	assert.Equal(t, int64(2), teachers[0].ID)

	rec = srv.request(t, http.MethodGet, "/api/data/admin/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, admin.Email, decodeBody[transport.UserResponse](t, rec).Email)

	// Admin lookup with an examinee's ID misses.
	rec = srv.request(t, http.MethodGet, "/api/data/admin/3", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/data/practice", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/data/user/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudyLibraryListings(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	examinee := srv.seed(t, 1, "E", "e@x.com", "1", models.RoleExaminee)
	token := srv.tokenFor(t, examinee)
	ctx := context.Background()

	require.NoError(t, srv.repo.CreateExamQuestion(ctx, &models.ExamQuestion{
		TopicID:       1,
		ContentType:   "text",
		ContentValue:  "Simulated exam question",
		AnswerOptions: `["a","b"]`,
		CorrectAnswer: "a",
	}))
	require.NoError(t, srv.repo.CreateVideo(ctx, &models.Video{
		TopicID: 1,
		Title:   "Intro",
		URL:     "https://videos.school.test/intro",
	}))

	// Both listings need a session but no particular role.
	assert.Equal(t, http.StatusUnauthorized, srv.request(t, http.MethodGet, "/api/data/exams", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, srv.request(t, http.MethodGet, "/api/data/videos", "", nil).Code)

	rec := srv.request(t, http.MethodGet, "/api/data/exams", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	exams := decodeBody[[]transport.ExamQuestionResponse](t, rec)
	require.Len(t, exams, 1)
	assert.Equal(t, []string{"a", "b"}, exams[0].AnswerOptions)

	rec = srv.request(t, http.MethodGet, "/api/data/videos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	videos := decodeBody[[]models.Video](t, rec)
	require.Len(t, videos, 1)
	assert.Equal(t, "Intro", videos[0].Title)
}

func TestCourses_RoleGateAndCRUD(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	teacher := srv.seed(t, 1, "T", "t@x.com", "pw", models.RoleTeacher)
	examinee := srv.seed(t, 2, "E", "e@x.com", "2", models.RoleExaminee)
	teacherToken := srv.tokenFor(t, teacher)
	examineeToken := srv.tokenFor(t, examinee)

	rec := srv.request(t, http.MethodPost, "/api/courses/addCourse", examineeToken, transport.CourseRequest{Name: "Nope"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.request(t, http.MethodPost, "/api/courses/addCourse", teacherToken, transport.CourseRequest{Name: "Biology"})
	require.Equal(t, http.StatusCreated, rec.Code)
	course := decodeBody[models.Course](t, rec)

	// Reads are open to examinees.
	rec = srv.request(t, http.MethodGet, "/api/courses/getCourses", examineeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Course](t, rec), 1)

	rec = srv.request(t, http.MethodPut, "/api/courses/updateCourse/"+jsonID(course.ID), teacherToken, transport.CourseRequest{Name: "Bio"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.request(t, http.MethodDelete, "/api/courses/deleteCourse/"+jsonID(course.ID), teacherToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.request(t, http.MethodGet, "/api/courses/getCourse/"+jsonID(course.ID), teacherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopicsAndExercises_Flow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	teacher := srv.seed(t, 1, "T", "t@x.com", "pw", models.RoleTeacher)
	token := srv.tokenFor(t, teacher)

	rec := srv.request(t, http.MethodPost, "/api/courses/addCourse", token, transport.CourseRequest{Name: "Physics"})
	require.Equal(t, http.StatusCreated, rec.Code)
	course := decodeBody[models.Course](t, rec)

	rec = srv.request(t, http.MethodPost, "/api/topic/addTopic", token, transport.TopicRequest{
		CourseID: course.ID, Name: "Optics",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	topic := decodeBody[models.Topic](t, rec)

	rec = srv.request(t, http.MethodPost, "/api/practice/practiceExercise", token, transport.ExerciseRequest{
		TopicID:       topic.ID,
		ContentType:   "text",
		ContentValue:  "What bends light?",
		AnswerOptions: []string{"a lens", "a brick"},
		CorrectAnswer: "a lens",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	exercise := decodeBody[transport.ExerciseResponse](t, rec)
	assert.Equal(t, []string{"a lens", "a brick"}, exercise.AnswerOptions)

	rec = srv.request(t, http.MethodGet, "/api/practice/practiceExercise/"+jsonID(exercise.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "What bends light?", decodeBody[transport.ExerciseResponse](t, rec).ContentValue)

	rec = srv.request(t, http.MethodDelete, "/api/practice/practiceExercise/"+jsonID(exercise.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpload(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	teacher := srv.seed(t, 1, "T", "t@x.com", "pw", models.RoleTeacher)
	token := srv.tokenFor(t, teacher)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "diagram.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/practice/practiceExercise/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[transport.UploadResponse](t, rec)
	assert.Contains(t, res.URL, "/uploads/")
	assert.Contains(t, res.URL, "diagram.png")

	// The stored file is served back under /uploads.
	get := srv.request(t, http.MethodGet, res.URL, "", nil)
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "png-bytes", get.Body.String())
}

func TestUpload_NoFile(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	teacher := srv.seed(t, 1, "T", "t@x.com", "pw", models.RoleTeacher)
	token := srv.tokenFor(t, teacher)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/practice/practiceExercise/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no file uploaded")
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	assert.Equal(t, http.StatusOK, srv.request(t, http.MethodGet, "/health/live", "", nil).Code)
	assert.Equal(t, http.StatusOK, srv.request(t, http.MethodGet, "/health/ready", "", nil).Code)
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}
