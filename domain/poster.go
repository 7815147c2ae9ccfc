package domain

import (
	"context"
)

// PosterProvider 海报与简介的外部查询源（仅用于展示，不参与推荐计算）
// 实现必须把查询失败降级为空字符串，不得向调用方传播错误
type PosterProvider interface {
	PosterURL(ctx context.Context, title string) string
	Overview(ctx context.Context, title string) string
}
