package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/postdeck/internal/db"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

const maxTitleLength = 200

// FieldError describes a single violated constraint on a create request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field constraint so the
// client sees the full list in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid post data: %s", strings.Join(names, ", "))
}

// PostService wraps post related database operations.
type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

// PostInput represents fields accepted when creating a post.
// Likes and comments are not accepted: they only change through
// external engagement simulation.
type PostInput struct {
	Title        string
	Content      string
	Excerpt      *string
	PlatformID   string
	Status       string
	ScheduledFor *time.Time
	PublishedAt  *time.Time
}

// PostUpdate carries a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title        *string
	Content      *string
	Excerpt      *string
	PlatformID   *string
	Status       *string
	Likes        *int
	Comments     *int
	ScheduledFor *time.Time
	PublishedAt  *time.Time
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb, now: time.Now}
}

// WithClock 允许在测试中替换时间源。
func (s *PostService) WithClock(now func() time.Time) *PostService {
	if now != nil {
		s.now = now
	}
	return s
}

// ListAll returns all posts ordered by created time descending.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByPlatform returns posts for one platform, newest first.
func (s *PostService) ListByPlatform(platformID string) ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Where("platform_id = ?", platformID).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByStatus returns posts in one status, newest first.
func (s *PostService) ListByStatus(status string) ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Where("status = ?", status).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id.
func (s *PostService) Get(id string) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create validates the input and persists a new post. Engagement
// counters start at zero and both timestamps are set to the same now.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	post := db.Post{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Content:      input.Content,
		Excerpt:      input.Excerpt,
		PlatformID:   input.PlatformID,
		Status:       input.Status,
		Likes:        0,
		Comments:     0,
		ScheduledFor: input.ScheduledFor,
		PublishedAt:  input.PublishedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update merges the supplied fields onto an existing post. updatedAt is
// bumped even when no field actually changed.
func (s *PostService) Update(id string, update PostUpdate) (*db.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		post.Excerpt = update.Excerpt
	}
	if update.PlatformID != nil {
		post.PlatformID = *update.PlatformID
	}
	if update.Status != nil {
		post.Status = *update.Status
	}
	if update.Likes != nil {
		post.Likes = *update.Likes
	}
	if update.Comments != nil {
		post.Comments = *update.Comments
	}
	if update.ScheduledFor != nil {
		post.ScheduledFor = update.ScheduledFor
	}
	if update.PublishedAt != nil {
		post.PublishedAt = update.PublishedAt
	}
	post.UpdatedAt = s.now()

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and reports whether it existed.
func (s *PostService) Delete(id string) (bool, error) {
	result := s.db.Delete(&db.Post{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func validatePostInput(input PostInput) error {
	var verr ValidationError

	if input.Title == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(input.Title) > maxTitleLength {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", maxTitleLength),
		})
	}
	if input.Content == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "content", Message: "content is required"})
	}
	if input.PlatformID == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "platformId", Message: "platformId is required"})
	}
	if !db.ValidStatus(input.Status) {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   "status",
			Message: "status must be one of draft, published, scheduled, failed",
		})
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}
