package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/postdeck/internal/db"
	"gorm.io/gorm"
)

var ErrPlatformNotFound = errors.New("platform not found")

// PlatformService wraps platform related database operations.
// Platforms have no delete path: once registered a channel stays listed.
type PlatformService struct {
	db *gorm.DB
}

// PlatformInput represents fields accepted when registering a platform.
type PlatformInput struct {
	Name        string
	Type        string
	Color       string
	IsConnected *int
}

// PlatformUpdate carries a partial update; nil fields are left untouched.
type PlatformUpdate struct {
	Name        *string
	Type        *string
	Color       *string
	IsConnected *int
}

// NewPlatformService creates a PlatformService instance.
func NewPlatformService(gdb *gorm.DB) *PlatformService {
	return &PlatformService{db: gdb}
}

// List returns every platform in insertion order.
func (s *PlatformService) List() ([]db.Platform, error) {
	var platforms []db.Platform
	if err := s.db.Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// Get fetches a platform by id.
func (s *PlatformService) Get(id string) (*db.Platform, error) {
	var platform db.Platform
	if err := s.db.First(&platform, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return &platform, nil
}

// Create registers a platform with a fresh id. The connected flag
// defaults to 0 when absent.
func (s *PlatformService) Create(input PlatformInput) (*db.Platform, error) {
	platform := db.Platform{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
	}
	if input.IsConnected != nil {
		platform.IsConnected = *input.IsConnected
	}

	if err := s.db.Create(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

// Update merges the supplied fields onto an existing platform.
func (s *PlatformService) Update(id string, update PlatformUpdate) (*db.Platform, error) {
	platform, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		platform.Name = *update.Name
	}
	if update.Type != nil {
		platform.Type = *update.Type
	}
	if update.Color != nil {
		platform.Color = *update.Color
	}
	if update.IsConnected != nil {
		platform.IsConnected = *update.IsConnected
	}

	if err := s.db.Save(platform).Error; err != nil {
		return nil, err
	}
	return platform, nil
}
