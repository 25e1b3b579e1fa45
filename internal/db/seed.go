package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPlatforms 是启动时注入的固定渠道集合。
var DefaultPlatforms = []Platform{
	{ID: "reddit", Name: "Reddit", Type: PlatformTypeForum, Color: "bg-orange-500", IsConnected: 1},
	{ID: "twitter", Name: "Twitter", Type: PlatformTypeSocial, Color: "bg-blue-400", IsConnected: 1},
	{ID: "medium", Name: "Medium", Type: PlatformTypeBlog, Color: "bg-black", IsConnected: 0},
	{ID: "linkedin", Name: "LinkedIn", Type: PlatformTypeSocial, Color: "bg-blue-600", IsConnected: 1},
}

// Seed 注入固定的示例数据：4 个渠道与 4 条帖子。
// 已有数据时不重复注入，保证每个进程生命周期只播种一次。
func Seed(gdb *gorm.DB, now time.Time) error {
	var count int64
	if err := gdb.Model(&Platform{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := gdb.Create(&DefaultPlatforms).Error; err != nil {
		return err
	}

	samplePosts := samplePosts(now)
	return gdb.Create(&samplePosts).Error
}

func samplePosts(now time.Time) []Post {
	twoHoursAgo := now.Add(-2 * time.Hour)
	dayAgo := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	return []Post{
		{
			ID:          uuid.NewString(),
			Title:       "Understanding Modern Web Development Trends",
			Content:     "A comprehensive look at the latest frameworks and tools shaping web development...",
			Excerpt:     strPtr("A comprehensive look at the latest frameworks and tools..."),
			PlatformID:  "reddit",
			Status:      PostStatusPublished,
			Likes:       234,
			Comments:    42,
			PublishedAt: &twoHoursAgo,
			CreatedAt:   now.Add(-3 * time.Hour),
			UpdatedAt:   twoHoursAgo,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Building Better User Experiences",
			Content:      "Tips and strategies for improving UX design in modern applications...",
			Excerpt:      strPtr("Tips and strategies for improving UX design..."),
			PlatformID:   "twitter",
			Status:       PostStatusScheduled,
			ScheduledFor: &tomorrow,
			CreatedAt:    now.Add(-4 * time.Hour),
			UpdatedAt:    now.Add(-4 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			Title:       "The Future of Remote Work",
			Content:     "Exploring trends and challenges in distributed teams...",
			Excerpt:     strPtr("Exploring trends and challenges in distributed teams..."),
			PlatformID:  "linkedin",
			Status:      PostStatusPublished,
			Likes:       189,
			Comments:    23,
			PublishedAt: &dayAgo,
			CreatedAt:   now.Add(-25 * time.Hour),
			UpdatedAt:   dayAgo,
		},
		{
			ID:         uuid.NewString(),
			Title:      "AI and Machine Learning in 2024",
			Content:    "Key developments and predictions for AI adoption across industries...",
			Excerpt:    strPtr("Key developments and predictions for AI adoption..."),
			PlatformID: "medium",
			Status:     PostStatusDraft,
			CreatedAt:  now.Add(-48 * time.Hour),
			UpdatedAt:  dayAgo,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
