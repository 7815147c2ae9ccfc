package domain_util

// RecCandidate 推荐候选项，排序键为（相似度，评分）
type RecCandidate struct {
	Index       int
	Similarity  float64
	VoteAverage float64
}

// RecCandidateHeap 最小堆实现 (基于container/heap)，堆顶为当前最差候选
// 用于流式筛选TopN，避免对全量候选排序
type RecCandidateHeap []RecCandidate

func (h RecCandidateHeap) Len() int { return len(h) }
func (h RecCandidateHeap) Less(i, j int) bool {
	if h[i].Similarity != h[j].Similarity {
		return h[i].Similarity < h[j].Similarity
	}
	return h[i].VoteAverage < h[j].VoteAverage
}
func (h RecCandidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *RecCandidateHeap) Push(x interface{}) { *h = append(*h, x.(RecCandidate)) }
func (h *RecCandidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
