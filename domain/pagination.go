package domain

// Pagination 列表查询的分页参数，Page从1开始
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// Skip 转换为文档偏移量
func (p Pagination) Skip() int64 {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
