package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupract/exam_platform/internal/metrics"
	"github.com/edupract/exam_platform/internal/middleware"
	"github.com/edupract/exam_platform/internal/models"
)

type Deps struct {
	Auth      *AuthHTTP
	Users     *UserHTTP
	Courses   *CourseHTTP
	Topics    *TopicHTTP
	Exercises *ExerciseHTTP
	Library   *LibraryHTTP

	AuthMW  *middleware.Auth
	Metrics *metrics.Metrics

	// UploadDir is served read-only under /uploads.
	UploadDir string
}

// Register wires every route. The paths mirror the mounts of the original
// platform API so existing clients keep working. Reads require a valid
// session; mutations additionally require the right role — the client-side
// guard is advisory and this is the authoritative check.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	e.Static("/uploads", d.UploadDir)

	e.POST("/api/auth/login", d.Auth.Login)

	staff := []models.Role{models.RoleAdmin, models.RoleTeacher}

	// General and per-user data, readable by any authenticated role.
	data := e.Group("/api/data", d.AuthMW.RequireAuth)
	data.GET("/users", d.Users.List)
	data.GET("/admins", d.Users.listByRole(models.RoleAdmin))
	data.GET("/teachers", d.Users.listByRole(models.RoleTeacher))
	data.GET("/examinees", d.Users.listByRole(models.RoleExaminee))
	data.GET("/practice", d.Exercises.List)
	data.GET("/exams", d.Library.Exams)
	data.GET("/videos", d.Library.Videos)
	data.GET("/user/:id", d.Users.Get)
	data.GET("/admin/:id", d.Users.getByRole(models.RoleAdmin))
	data.GET("/teacher/:id", d.Users.getByRole(models.RoleTeacher))
	data.GET("/examinee/:id", d.Users.getByRole(models.RoleExaminee))

	// User administration, admin only.
	users := e.Group("/api/user", d.AuthMW.RequireAuth, d.AuthMW.RequireRoles(models.RoleAdmin))
	users.POST("/addUser", d.Users.Create)
	users.PUT("/updateUser/:id", d.Users.Update)
	users.DELETE("/deleteUser/:id", d.Users.Delete)

	courses := e.Group("/api/courses", d.AuthMW.RequireAuth)
	courses.GET("/getCourses", d.Courses.List)
	courses.GET("/getCourse/:id", d.Courses.Get)
	courseAdmin := courses.Group("", d.AuthMW.RequireRoles(staff...))
	courseAdmin.POST("/addCourse", d.Courses.Create)
	courseAdmin.PUT("/updateCourse/:id", d.Courses.Update)
	courseAdmin.DELETE("/deleteCourse/:id", d.Courses.Delete)

	topics := e.Group("/api/topic", d.AuthMW.RequireAuth)
	topics.GET("/getTopics", d.Topics.List)
	topics.GET("/getTopic/:id", d.Topics.Get)
	topicAdmin := topics.Group("", d.AuthMW.RequireRoles(staff...))
	topicAdmin.POST("/addTopic", d.Topics.Create)
	topicAdmin.PUT("/updateTopic/:id", d.Topics.Update)
	topicAdmin.DELETE("/deleteTopic/:id", d.Topics.Delete)

	practice := e.Group("/api/practice", d.AuthMW.RequireAuth)
	practice.GET("/practiceExercises", d.Exercises.List)
	practice.GET("/practiceExercise/:id", d.Exercises.Get)
	practiceAdmin := practice.Group("", d.AuthMW.RequireRoles(staff...))
	practiceAdmin.POST("/practiceExercise", d.Exercises.Create)
	practiceAdmin.PUT("/practiceExercise/:id", d.Exercises.Update)
	practiceAdmin.DELETE("/practiceExercise/:id", d.Exercises.Delete)
	practiceAdmin.POST("/practiceExercise/upload", d.Exercises.UploadFile)
}
