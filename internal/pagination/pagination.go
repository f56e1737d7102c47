// Package pagination 首页列表的查询参数
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultAmount = 10
	MinAmount     = 1
	MaxAmount     = 100
)

// Pagination 首页的过滤与分页状态，所有修改方法都返回新值
type Pagination struct {
	Tag    string `form:"tag" json:"tag"`
	MyFeed bool   `form:"my_feed" json:"my_feed"`
	Page   uint32 `form:"page" json:"page"`
	Amount uint32 `form:"amount" json:"amount"`
}

// Default page 0, amount 10, 非个人 feed
func Default() Pagination {
	return Pagination{Amount: DefaultAmount}
}

func clampAmount(amount uint32) uint32 {
	if amount < MinAmount {
		return MinAmount
	}
	if amount > MaxAmount {
		return MaxAmount
	}
	return amount
}

func (p Pagination) SetTag(tag string) Pagination {
	p.Tag = tag
	return p
}

// SetAmount 限制在 1..100
func (p Pagination) SetAmount(amount uint32) Pagination {
	p.Amount = clampAmount(amount)
	return p
}

func (p Pagination) SetMyFeed(feed bool) Pagination {
	p.MyFeed = feed
	return p
}

func (p Pagination) ResetPage() Pagination {
	p.Page = 0
	return p
}

func (p Pagination) NextPage() Pagination {
	if p.Page < ^uint32(0) {
		p.Page++
	}
	return p
}

// PreviousPage 不会小于 0
func (p Pagination) PreviousPage() Pagination {
	if p.Page > 0 {
		p.Page--
	}
	return p
}

// Offset 数据库偏移量 page*amount
func (p Pagination) Offset() int {
	return int(p.Page) * int(p.Limit())
}

// Limit 每页条数，零值视为默认
func (p Pagination) Limit() uint32 {
	if p.Amount == 0 {
		return DefaultAmount
	}
	return p.Amount
}

// String 只输出非默认字段，顺序固定为 tag、my_feed、page、amount
func (p Pagination) String() string {
	var params []string

	if p.Tag != "" {
		params = append(params, "tag="+url.QueryEscape(p.Tag))
	}
	if p.MyFeed {
		params = append(params, "my_feed=true")
	}
	if p.Page > 0 {
		params = append(params, fmt.Sprintf("page=%d", p.Page))
	}
	if amount := p.Limit(); amount != DefaultAmount {
		params = append(params, fmt.Sprintf("amount=%d", amount))
	}

	if len(params) == 0 {
		return "/"
	}
	return "/?" + strings.Join(params, "&")
}

// FromQuery 宽松解析查询参数，非法数字回落到默认值
func FromQuery(values url.Values) Pagination {
	p := Default()
	p.Tag = strings.TrimSpace(values.Get("tag"))

	if feed, err := strconv.ParseBool(values.Get("my_feed")); err == nil {
		p.MyFeed = feed
	}
	if page, err := strconv.ParseUint(values.Get("page"), 10, 32); err == nil {
		p.Page = uint32(page)
	}
	if raw := values.Get("amount"); raw != "" {
		if amount, err := strconv.ParseUint(raw, 10, 32); err == nil {
			p = p.SetAmount(uint32(amount))
		} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > MaxAmount {
			p = p.SetAmount(MaxAmount)
		}
	}

	return p
}
