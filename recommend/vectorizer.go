package recommend

import (
	"math"
	"strings"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

// Vocabulary 词表：token -> 列索引，fit时一次性构建，之后只读
type Vocabulary map[string]int

// SparseVector 稀疏行向量：列索引 -> 权重
type SparseVector map[int]float64

// VectorMatrix TF-IDF矩阵，Rows[i]与输入语料第i篇文档一一对应
type VectorMatrix struct {
	Rows  []SparseVector
	Vocab Vocabulary
}

// RowCount 矩阵行数
func (m *VectorMatrix) RowCount() int {
	return len(m.Rows)
}

// FitTransform 对已规范化的文档序列做标准TF-IDF变换
// 词频按文档内原始计数，idf = ln((1+N)/(1+df)) + 1（平滑），行向量L2归一化
// 空语料返回 domain.ErrEmptyCorpus；单文档语料合法
func FitTransform(docs []string) (*VectorMatrix, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// 1. 分词并统计词频与文档频率，词表按首次出现顺序编号（保证确定性）
	vocab := make(Vocabulary)
	docFrequency := make(map[int]int)
	termCounts := make([]map[int]int, len(docs))

	for i, doc := range docs {
		counts := make(map[int]int)
		for _, token := range strings.Fields(doc) {
			col, ok := vocab[token]
			if !ok {
				col = len(vocab)
				vocab[token] = col
			}
			counts[col]++
		}
		for col := range counts {
			docFrequency[col]++
		}
		termCounts[i] = counts
	}

	// 2. 计算平滑idf
	total := float64(len(docs))
	idf := make([]float64, len(vocab))
	for col, df := range docFrequency {
		idf[col] = math.Log((1+total)/(1+float64(df))) + 1
	}

	// 3. tf×idf并按行L2归一化；全空文档产生零向量
	rows := make([]SparseVector, len(docs))
	for i, counts := range termCounts {
		row := make(SparseVector, len(counts))
		var sumSquares float64
		for col, count := range counts {
			weight := float64(count) * idf[col]
			row[col] = weight
			sumSquares += weight * weight
		}
		if sumSquares > 0 {
			invNorm := 1 / math.Sqrt(sumSquares)
			for col := range row {
				row[col] *= invNorm
			}
		}
		rows[i] = row
	}

	return &VectorMatrix{Rows: rows, Vocab: vocab}, nil
}
