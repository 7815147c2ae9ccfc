package recommend

// MaxCorpusSize 参与相似度计算的最大影片数，限制稠密矩阵的内存与CPU开销
const MaxCorpusSize = 5000

// SimilarityMatrix 计算行向量间的余弦相似度矩阵
// 行数超过 MaxCorpusSize 时截断为前 MaxCorpusSize 行，调用方必须对语料做同样截断
// 行向量已L2归一化，余弦相似度即点积；零向量与任何向量（含自身）的相似度为0
func SimilarityMatrix(matrix *VectorMatrix) [][]float64 {
	rows := matrix.Rows
	if len(rows) > MaxCorpusSize {
		rows = rows[:MaxCorpusSize]
	}

	sims := make([][]float64, len(rows))
	for i := range sims {
		sims[i] = make([]float64, len(rows))
	}

	// 对称矩阵只计算上三角
	for i := 0; i < len(rows); i++ {
		for j := i; j < len(rows); j++ {
			s := dotSparse(rows[i], rows[j])
			sims[i][j] = s
			sims[j][i] = s
		}
	}
	return sims
}

func dotSparse(a, b SparseVector) float64 {
	// 遍历较小的向量
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for col, weight := range a {
		dot += weight * b[col]
	}
	return dot
}
