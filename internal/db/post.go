package db

import "time"

// 帖子状态枚举。
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusScheduled = "scheduled"
	PostStatusFailed    = "failed"
)

// PostStatuses 列出所有合法的帖子状态。
var PostStatuses = []string{
	PostStatusDraft,
	PostStatusPublished,
	PostStatusScheduled,
	PostStatusFailed,
}

// Post 定义了帖子模型。时间戳由服务层显式维护，
// 这里关闭 gorm 的自动填充以保证 createdAt/updatedAt 语义精确。
type Post struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Excerpt      *string    `gorm:"type:text" json:"excerpt"`
	PlatformID   string     `gorm:"size:64;not null;index" json:"platformId"`
	Status       string     `gorm:"size:20;not null;index" json:"status"`
	Likes        int        `gorm:"not null;default:0" json:"likes"`
	Comments     int        `gorm:"not null;default:0" json:"comments"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	PublishedAt  *time.Time `json:"publishedAt"`
	CreatedAt    time.Time  `gorm:"autoCreateTime:false;index" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// TableName 指定自定义表名。
func (Post) TableName() string {
	return "posts"
}

// ValidStatus 判断给定状态是否为合法枚举值。
func ValidStatus(status string) bool {
	for _, s := range PostStatuses {
		if s == status {
			return true
		}
	}
	return false
}
