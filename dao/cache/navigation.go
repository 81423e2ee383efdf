package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FeedRoot 未访问过信息流时的默认返回地址
const FeedRoot = "/ideas?page=1"

// 与 sid cookie 同寿命
const navTTL = 30 * 24 * time.Hour

// NavigationStorage 会话级"最近一次信息流 URL"存储.
// 每次浏览信息流覆盖写入, 详情页只读, 过期随会话自然失效
type NavigationStorage struct {
	redis *redis.Client
}

func NewNavigationStorage(redis *redis.Client) *NavigationStorage {
	return &NavigationStorage{redis: redis}
}

// SetLastFeedURL 记录会话最近一次浏览的信息流 URL
func (n *NavigationStorage) SetLastFeedURL(ctx context.Context, sid, rawURL string) error {
	if sid == "" {
		return nil
	}
	return n.redis.Set(ctx, n.key(sid), rawURL, navTTL).Err()
}

// LastFeedURL 详情页的返回地址, 没有记录时退回信息流首页
func (n *NavigationStorage) LastFeedURL(ctx context.Context, sid string) string {
	if sid == "" {
		return FeedRoot
	}
	val, err := n.redis.Get(ctx, n.key(sid)).Result()
	if err != nil || val == "" {
		return FeedRoot
	}
	return val
}

func (n *NavigationStorage) key(sid string) string {
	return fmt.Sprintf("nav:feed:%s", sid)
}
