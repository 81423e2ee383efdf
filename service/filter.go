package service

import (
	"errors"
	"strings"

	"voteboard/models"
	"voteboard/types"
)

// 授权失败在解析阶段一次性拦截, 后续的查询与聚合不再做角色判断
var (
	// ErrLoginRequired "My Ideas" 需要登录, 边界层转为跳转登录
	ErrLoginRequired = errors.New("login required")
	// ErrForbidden 垃圾内容视图仅管理员可见, 不降级为无筛选
	ErrForbidden = errors.New("forbidden")
)

// 搜索词最短生效长度
const minSearchLen = 3

// ParseFeedFilter 把原始请求参数解析为校验后的筛选描述. 纯函数:
// 未知的状态/分类名按无筛选处理, 过短的搜索词只回显不生效,
// 身份不满足的模式返回授权错误
func ParseFeedFilter(q types.FeedQuery, caller types.Caller, statuses []*models.Status, categories []*models.Category) (*types.FeedFilter, error) {
	f := &types.FeedFilter{
		Mode: types.FilterNone,
		Page: q.Page,
	}
	if f.Page < 1 {
		f.Page = 1
	}

	// status 参数与 filter 携带状态名等价, filter 优先
	filter := strings.TrimSpace(q.Filter)
	if filter == "" {
		filter = strings.TrimSpace(q.Status)
	}

	switch filter {
	case "", types.FilterLabelAll:
		// 默认
	case types.FilterLabelMyIdeas:
		if caller.Anonymous() {
			return nil, ErrLoginRequired
		}
		f.Mode = types.FilterMyIdeas
	case types.FilterLabelTopVoted:
		f.Mode = types.FilterTopVoted
	case types.FilterLabelSpamIdeas:
		if !caller.IsAdmin {
			return nil, ErrForbidden
		}
		f.Mode = types.FilterSpamIdeas
	case types.FilterLabelSpamComments:
		if !caller.IsAdmin {
			return nil, ErrForbidden
		}
		f.Mode = types.FilterSpamComments
	default:
		// 状态名匹配则为状态筛选, 无法识别的值不产生任何筛选
		for _, s := range statuses {
			if s.Name == filter {
				f.Mode = types.FilterStatus
				f.StatusID = s.ID
				f.StatusName = s.Name
				break
			}
		}
	}

	// 分类/搜索只叠加在默认模式和 My Ideas 之上, 互斥模式下整体重置
	if f.Mode == types.FilterNone || f.Mode == types.FilterMyIdeas {
		if name := strings.TrimSpace(q.Category); name != "" {
			for _, c := range categories {
				if c.Name == name {
					f.CategoryID = c.ID
					f.CategoryName = c.Name
					break
				}
			}
		}

		f.RawSearch = strings.TrimSpace(q.Search)
		if len(f.RawSearch) >= minSearchLen {
			f.Search = f.RawSearch
		}
	}

	return f, nil
}
