package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/postdeck/internal/db"
	"gorm.io/gorm"
)

// AnalyticsService 负责从帖子集合派生仪表盘统计数据。
// 每次调用都全量扫描重新计算，不做缓存。
type AnalyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// Overview 汇总仪表盘统计卡片所需的全部指标。
type Overview struct {
	TotalPosts     int    `json:"totalPosts"`
	ScheduledPosts int    `json:"scheduledPosts"`
	Engagement     int    `json:"engagement"`
	Reach          string `json:"reach"`
	BestPlatform   string `json:"bestPlatform"`
	EngagementRate string `json:"engagementRate"`
	PostsThisWeek  int    `json:"postsThisWeek"`
}

// NewAnalyticsService 创建 AnalyticsService。
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb, now: time.Now}
}

// WithClock 允许在测试中替换时间源。
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	if now != nil {
		s.now = now
	}
	return s
}

// Compute derives the current overview from full scans of both
// collections. Engagement and reach only count published posts; the
// reach multiplier and the 0.1 rate normalization are simulated values
// carried over from the product mock.
func (s *AnalyticsService) Compute() (*Overview, error) {
	var posts []db.Post
	if err := s.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	var platforms []db.Platform
	if err := s.db.Find(&platforms).Error; err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)

	overview := Overview{TotalPosts: len(posts)}

	var published []db.Post
	totalReach := 0
	for _, post := range posts {
		switch post.Status {
		case db.PostStatusScheduled:
			overview.ScheduledPosts++
		case db.PostStatusPublished:
			published = append(published, post)
			overview.Engagement += post.Likes + post.Comments
			totalReach += post.Likes * 5
		}
		if post.CreatedAt.After(weekAgo) {
			overview.PostsThisWeek++
		}
	}

	overview.Reach = formatReach(totalReach)
	overview.BestPlatform = bestPlatform(platforms, published)
	overview.EngagementRate = formatEngagementRate(overview.Engagement, len(published))

	return &overview, nil
}

// bestPlatform returns the name of the platform whose published posts
// earned the most combined likes and comments. Ties keep the platform
// listed first; no platforms at all yields an empty name.
func bestPlatform(platforms []db.Platform, published []db.Post) string {
	best := ""
	bestEngagement := -1
	for _, platform := range platforms {
		engagement := 0
		for _, post := range published {
			if post.PlatformID == platform.ID {
				engagement += post.Likes + post.Comments
			}
		}
		if engagement > bestEngagement {
			best = platform.Name
			bestEngagement = engagement
		}
	}
	return best
}

func formatReach(reach int) string {
	if reach >= 1000 {
		return fmt.Sprintf("%.1fK", float64(reach)/1000)
	}
	return strconv.Itoa(reach)
}

func formatEngagementRate(engagement, publishedCount int) string {
	if publishedCount == 0 {
		return "0%"
	}
	rate := float64(engagement) / float64(publishedCount) * 0.1
	return fmt.Sprintf("%.1f%%", rate)
}
