package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, docs []string) *VectorMatrix {
	t.Helper()
	matrix, err := FitTransform(docs)
	require.NoError(t, err)
	return matrix
}

func TestSimilarityMatrix_Properties(t *testing.T) {
	docs := []string{
		"horror thriller",
		"horror",
		"comedy",
		"horror thriller mystery",
	}
	sims := SimilarityMatrix(buildMatrix(t, docs))
	require.Len(t, sims, len(docs))

	for i := range sims {
		require.Len(t, sims[i], len(docs))
		// 非零向量与自身相似度为1
		assert.InDelta(t, 1.0, sims[i][i], 1e-12, "对角线元素 %d", i)
		for j := range sims[i] {
			// 对称且值域落在[0,1]
			assert.InDelta(t, sims[j][i], sims[i][j], 1e-12)
			assert.GreaterOrEqual(t, sims[i][j], 0.0)
			assert.LessOrEqual(t, sims[i][j], 1.0+1e-12)
		}
	}

	// 无共同词的文档相似度为0
	assert.Zero(t, sims[0][2])
	assert.Zero(t, sims[1][2])

	// 共享horror与thriller的文档比只共享horror的更相似
	assert.Greater(t, sims[0][3], sims[0][1])
}

func TestSimilarityMatrix_ZeroVector(t *testing.T) {
	sims := SimilarityMatrix(buildMatrix(t, []string{"horror", ""}))

	// 零向量与任何向量的相似度为0，包括自身
	assert.Zero(t, sims[1][0])
	assert.Zero(t, sims[0][1])
	assert.Zero(t, sims[1][1])
	assert.InDelta(t, 1.0, sims[0][0], 1e-12)
}

func TestSimilarityMatrix_Deterministic(t *testing.T) {
	docs := []string{"horror thriller", "horror comedy", "thriller mystery"}

	first := SimilarityMatrix(buildMatrix(t, docs))
	second := SimilarityMatrix(buildMatrix(t, docs))

	for i := range first {
		for j := range first[i] {
			assert.Equal(t, first[i][j], second[i][j])
		}
	}
}

func TestDotSparse_IdenticalRegardlessOfOrder(t *testing.T) {
	a := SparseVector{0: 0.5, 1: 0.5}
	b := SparseVector{0: 0.2, 1: 0.3, 2: 0.9}

	assert.InDelta(t, dotSparse(a, b), dotSparse(b, a), 1e-15)
	assert.InDelta(t, 0.25, dotSparse(a, b), 1e-12)
}
