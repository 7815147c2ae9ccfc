package domain

import (
	"errors"
	"fmt"
)

// 推荐核心的错误分类：
// ErrEmptyCorpus 语料为空，初始化致命错误，向上报告且不自动重试
// ErrMovieNotFound 查询的影片不在语料或目录中，可恢复，对外表现为空结果
var (
	ErrEmptyCorpus   = errors.New("影片语料为空，无法建立推荐索引")
	ErrMovieNotFound = errors.New("影片不存在")
)

// InitializationError 包装 加载->向量化->相似度 流水线中的任意失败
// 发生后会话保持"未就绪"，下次调用可安全重试
type InitializationError struct {
	Cause error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("推荐服务初始化失败: %v", e.Cause)
}

func (e *InitializationError) Unwrap() error {
	return e.Cause
}
