package db

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed-%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&Platform{}, &Post{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestSeedInsertsSampleScenario(t *testing.T) {
	gdb := setupSeedTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := Seed(gdb, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var platforms []Platform
	if err := gdb.Find(&platforms).Error; err != nil {
		t.Fatalf("load platforms: %v", err)
	}
	if len(platforms) != 4 {
		t.Fatalf("expected 4 platforms, got %d", len(platforms))
	}

	ids := map[string]bool{}
	for _, p := range platforms {
		ids[p.ID] = true
	}
	for _, want := range []string{"reddit", "twitter", "medium", "linkedin"} {
		if !ids[want] {
			t.Fatalf("missing seeded platform %q", want)
		}
	}

	var posts []Post
	if err := gdb.Find(&posts).Error; err != nil {
		t.Fatalf("load posts: %v", err)
	}
	if len(posts) != 4 {
		t.Fatalf("expected 4 posts, got %d", len(posts))
	}
	for _, post := range posts {
		if post.UpdatedAt.Before(post.CreatedAt) {
			t.Fatalf("post %q violates updatedAt >= createdAt", post.Title)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := setupSeedTestDB(t)
	now := time.Now()
	if err := Seed(gdb, now); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(gdb, now); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := gdb.Model(&Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected seeding to run once, got %d posts", count)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range PostStatuses {
		if !ValidStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ValidStatus("archived") {
		t.Fatal("expected unknown status to be invalid")
	}
}
