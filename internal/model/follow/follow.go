package follow

import (
	"time"

	"terminal-terrace/conduit/internal/model/user"
)

// Follow 关注关系（follower 关注 influencer）
// 复合主键保证同一对关系只存在一行
type Follow struct {
	FollowerID   string    `gorm:"primaryKey;type:varchar(36)" json:"follower_id"`
	InfluencerID string    `gorm:"primaryKey;type:varchar(36);index" json:"influencer_id"`
	CreatedAt    time.Time `json:"created_at"`

	Follower   *user.User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Influencer *user.User `gorm:"foreignKey:InfluencerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string { return "follows" }
