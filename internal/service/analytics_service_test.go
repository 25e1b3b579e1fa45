package service

import (
	"testing"
	"time"

	"github.com/postdeck/internal/db"
)

func TestAnalyticsService_ComputeSeededScenario(t *testing.T) {
	gdb := setupServiceTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := db.Seed(gdb, now); err != nil {
		t.Fatalf("seed database: %v", err)
	}

	svc := NewAnalyticsService(gdb).WithClock(func() time.Time { return now })
	overview, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}

	if overview.TotalPosts != 4 {
		t.Fatalf("expected 4 total posts, got %d", overview.TotalPosts)
	}
	if overview.ScheduledPosts != 1 {
		t.Fatalf("expected 1 scheduled post, got %d", overview.ScheduledPosts)
	}
	if overview.Engagement != 488 {
		t.Fatalf("expected engagement 488, got %d", overview.Engagement)
	}
	if overview.Reach != "2.1K" {
		t.Fatalf("expected reach 2.1K, got %q", overview.Reach)
	}
	if overview.EngagementRate != "24.4%" {
		t.Fatalf("expected engagement rate 24.4%%, got %q", overview.EngagementRate)
	}
	if overview.BestPlatform != "Reddit" {
		t.Fatalf("expected best platform Reddit, got %q", overview.BestPlatform)
	}
	if overview.PostsThisWeek != 4 {
		t.Fatalf("expected 4 posts this week, got %d", overview.PostsThisWeek)
	}
}

func TestAnalyticsService_ComputeEmptyStore(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewAnalyticsService(gdb)

	overview, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}

	if overview.TotalPosts != 0 || overview.ScheduledPosts != 0 || overview.Engagement != 0 {
		t.Fatalf("expected zeroed counters, got %+v", overview)
	}
	if overview.Reach != "0" {
		t.Fatalf("expected reach \"0\", got %q", overview.Reach)
	}
	if overview.EngagementRate != "0%" {
		t.Fatalf("expected rate \"0%%\", got %q", overview.EngagementRate)
	}
	// 没有任何渠道时最佳渠道降级为空字符串
	if overview.BestPlatform != "" {
		t.Fatalf("expected empty best platform, got %q", overview.BestPlatform)
	}
}

func TestAnalyticsService_PostsThisWeekWindow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	posts := []db.Post{
		{ID: "recent", Title: "t", Content: "c", PlatformID: "reddit", Status: db.PostStatusDraft,
			CreatedAt: now.AddDate(0, 0, -6), UpdatedAt: now},
		{ID: "old", Title: "t", Content: "c", PlatformID: "reddit", Status: db.PostStatusDraft,
			CreatedAt: now.AddDate(0, 0, -8), UpdatedAt: now},
	}
	if err := gdb.Create(&posts).Error; err != nil {
		t.Fatalf("insert posts: %v", err)
	}

	svc := NewAnalyticsService(gdb).WithClock(func() time.Time { return now })
	overview, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}
	if overview.PostsThisWeek != 1 {
		t.Fatalf("expected 1 post this week, got %d", overview.PostsThisWeek)
	}
}

func TestAnalyticsService_BestPlatformTieKeepsFirstListed(t *testing.T) {
	gdb := setupServiceTestDB(t)
	platforms := []db.Platform{
		{ID: "a", Name: "Alpha", Type: db.PlatformTypeBlog, Color: "bg-black"},
		{ID: "b", Name: "Beta", Type: db.PlatformTypeBlog, Color: "bg-black"},
	}
	if err := gdb.Create(&platforms).Error; err != nil {
		t.Fatalf("insert platforms: %v", err)
	}

	now := time.Now()
	posts := []db.Post{
		{ID: "p1", Title: "t", Content: "c", PlatformID: "a", Status: db.PostStatusPublished,
			Likes: 10, Comments: 5, CreatedAt: now, UpdatedAt: now},
		{ID: "p2", Title: "t", Content: "c", PlatformID: "b", Status: db.PostStatusPublished,
			Likes: 5, Comments: 10, CreatedAt: now, UpdatedAt: now},
	}
	if err := gdb.Create(&posts).Error; err != nil {
		t.Fatalf("insert posts: %v", err)
	}

	svc := NewAnalyticsService(gdb)
	overview, err := svc.Compute()
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}
	if overview.BestPlatform != "Alpha" {
		t.Fatalf("expected tie to keep first listed platform, got %q", overview.BestPlatform)
	}
}

func TestFormatReach(t *testing.T) {
	tests := []struct {
		reach    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{2115, "2.1K"},
		{15500, "15.5K"},
	}

	for _, tt := range tests {
		if got := formatReach(tt.reach); got != tt.expected {
			t.Fatalf("formatReach(%d) = %q, expected %q", tt.reach, got, tt.expected)
		}
	}
}
