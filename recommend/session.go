package recommend

import (
	"container/heap"
	"strings"

	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/domain/domain_util"
)

// CorpusMovie 参与相似度计算的影片快照（拟合期间不可变）
type CorpusMovie struct {
	MovieID     int
	Title       string
	Genres      string
	VoteAverage float64
	Popularity  float64
}

// Recommendation 单条推荐结果，相似度作为独立字段返回，不回写影片对象
type Recommendation struct {
	MovieID     int
	Title       string
	Genres      string
	VoteAverage float64
	Similarity  float64
}

// Session 一次拟合产生的只读状态：语料、词表、TF-IDF矩阵与相似度矩阵
// 四者行索引严格对齐；拟合成功后不再修改
type Session struct {
	corpus       []CorpusMovie
	foldedTitles []string
	vectors      *VectorMatrix
	sims         [][]float64
}

// Fit 依次执行 去重 -> 规范化 -> TF-IDF -> 相似度矩阵，失败时不产生部分状态
func Fit(movies []CorpusMovie) (*Session, error) {
	if len(movies) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// 1. 按标题去重，保留首次出现（语料已按评分降序，首个即最优）
	seen := make(map[string]bool, len(movies))
	corpus := make([]CorpusMovie, 0, len(movies))
	for _, movie := range movies {
		if seen[movie.Title] {
			continue
		}
		seen[movie.Title] = true
		corpus = append(corpus, movie)
	}

	// 2. 规范化类型文本并向量化
	docs := make([]string, len(corpus))
	for i, movie := range corpus {
		docs[i] = NormalizeGenres(movie.Genres)
	}
	vectors, err := FitTransform(docs)
	if err != nil {
		return nil, err
	}

	// 3. 相似度矩阵（超限时截断），语料同步截断以保持行索引对齐
	sims := SimilarityMatrix(vectors)
	if len(corpus) > len(sims) {
		corpus = corpus[:len(sims)]
		vectors.Rows = vectors.Rows[:len(sims)]
	}

	folded := make([]string, len(corpus))
	for i, movie := range corpus {
		folded[i] = FoldTitle(movie.Title)
	}

	return &Session{
		corpus:       corpus,
		foldedTitles: folded,
		vectors:      vectors,
		sims:         sims,
	}, nil
}

// Size 语料规模（已截断）
func (s *Session) Size() int {
	return len(s.corpus)
}

// VocabularySize 词表规模
func (s *Session) VocabularySize() int {
	return len(s.vectors.Vocab)
}

// Similarity 行i与行j的相似度，供测试与诊断使用
func (s *Session) Similarity(i, j int) float64 {
	return s.sims[i][j]
}

// MovieAt 语料中第i部影片
func (s *Session) MovieAt(i int) CorpusMovie {
	return s.corpus[i]
}

// ResolveTitle 标题解析：精确匹配优先，否则做折叠后的子串匹配并取首个命中
func (s *Session) ResolveTitle(title string) (string, bool) {
	for i := range s.corpus {
		if s.corpus[i].Title == title {
			return title, true
		}
	}
	foldedQuery := FoldTitle(title)
	if foldedQuery == "" {
		return "", false
	}
	for i, folded := range s.foldedTitles {
		if strings.Contains(folded, foldedQuery) {
			return s.corpus[i].Title, true
		}
	}
	return "", false
}

// Recommend 返回与指定影片最相似的至多topN部影片
// 排序键为（相似度降序，评分降序）；不含影片自身；候选不足时返回全部
// topN由调用方限定在合理范围，本方法不做钳制
func (s *Session) Recommend(title string, topN int) ([]Recommendation, error) {
	row := -1
	for i := range s.corpus {
		if s.corpus[i].Title == title {
			row = i
			break
		}
	}
	if row < 0 {
		return nil, domain.ErrMovieNotFound
	}

	// 最小堆流式筛选TopN，堆顶始终是当前最差候选
	candidates := &domain_util.RecCandidateHeap{}
	heap.Init(candidates)
	for j := range s.corpus {
		if j == row {
			continue
		}
		heap.Push(candidates, domain_util.RecCandidate{
			Index:       j,
			Similarity:  s.sims[row][j],
			VoteAverage: s.corpus[j].VoteAverage,
		})
		if candidates.Len() > topN {
			heap.Pop(candidates)
		}
	}

	// 逆序弹出得到（相似度，评分）双键降序结果
	results := make([]Recommendation, candidates.Len())
	for i := len(results) - 1; i >= 0; i-- {
		candidate := heap.Pop(candidates).(domain_util.RecCandidate)
		movie := s.corpus[candidate.Index]
		results[i] = Recommendation{
			MovieID:     movie.MovieID,
			Title:       movie.Title,
			Genres:      movie.Genres,
			VoteAverage: movie.VoteAverage,
			Similarity:  candidate.Similarity,
		}
	}
	return results, nil
}
