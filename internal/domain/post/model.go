package post

import (
	"time"

	"github.com/lib/pq"
)

// Kind separates ordinary rich-text posts from notices, which support
// pinning and live outside the category tree.
const (
	KindPost   = "post"
	KindNotice = "notice"
)

type Post struct {
	PostID      uint           `gorm:"primaryKey;column:post_id;autoIncrement" json:"post_id"`
	CategoryID  *uint          `gorm:"column:c_id;index" json:"category_id"`
	Kind        string         `gorm:"type:post_kind;default:'post';index" json:"kind"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Content     string         `gorm:"type:text" json:"content"` // sanitized editor HTML
	Pinned      bool           `gorm:"default:false" json:"pinned"`
	Published   bool           `gorm:"default:true" json:"published"`
	ViewCount   int            `gorm:"default:0" json:"view_count"`
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments"` // stored object keys
	AuthorID    uint           `gorm:"column:u_id" json:"author_id"`
	CreatedAt   time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Post) TableName() string {
	return "posts"
}
