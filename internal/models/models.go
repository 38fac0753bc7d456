package models

// User is a credential-store record. The ID is an externally assigned
// identity number, not an auto-increment: administrators enter it when
// creating the account, and it may be changed on update.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string `gorm:"not null"                       json:"name"`
	Email        string `gorm:"uniqueIndex;not null"           json:"email"`
	PasswordHash string `gorm:"not null"                       json:"-"`
	Role         Role   `gorm:"not null"                       json:"role"`
	CourseID     *int64 `gorm:"index"                          json:"course_id,omitempty"`
}

type Course struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
}

type Topic struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID int64  `gorm:"index;not null"           json:"course_id"`
	Name     string `gorm:"not null"                 json:"name"`
}

// Exercise is one practice item. AnswerOptions holds a JSON-encoded array;
// the service layer is the only place that marshals or unmarshals it.
type Exercise struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID       int64  `gorm:"index;not null"           json:"topic_id"`
	ContentType   string `gorm:"not null"                 json:"content_type"`
	ContentValue  string `gorm:"not null"                 json:"content_value"`
	AnswerOptions string `gorm:"type:text"                json:"answer_options"`
	CorrectAnswer string `gorm:"not null"                 json:"correct_answer"`
}

// ExamQuestion mirrors Exercise but feeds the exam simulation instead of
// free practice. AnswerOptions is the same JSON-encoded text column.
type ExamQuestion struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID       int64  `gorm:"index;not null"           json:"topic_id"`
	ContentType   string `gorm:"not null"                 json:"content_type"`
	ContentValue  string `gorm:"not null"                 json:"content_value"`
	AnswerOptions string `gorm:"type:text"                json:"answer_options"`
	CorrectAnswer string `gorm:"not null"                 json:"correct_answer"`
}

// Video is an explainer clip shown alongside practice topics.
type Video struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID int64  `gorm:"index;not null"           json:"topic_id"`
	Title   string `gorm:"not null"                 json:"title"`
	URL     string `gorm:"not null"                 json:"url"`
}
