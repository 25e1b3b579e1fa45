package db

// Platform 表示一个可发布内容的外部渠道。
// IsConnected 以 0/1 存储，对齐前端序列化格式。
type Platform struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Color       string `gorm:"size:50;not null" json:"color"`
	IsConnected int    `gorm:"not null;default:0" json:"isConnected"`
}

// TableName 指定自定义表名。
func (Platform) TableName() string {
	return "platforms"
}

// 平台类型，用于仪表盘的标签页分组。
const (
	PlatformTypeForum  = "forum"
	PlatformTypeBlog   = "blog"
	PlatformTypeSocial = "social"
)
