package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

func TestFitTransform_EmptyCorpus(t *testing.T) {
	matrix, err := FitTransform(nil)
	assert.Nil(t, matrix)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestFitTransform_SingleDocument(t *testing.T) {
	matrix, err := FitTransform([]string{"horror thriller"})
	require.NoError(t, err)
	require.Equal(t, 1, matrix.RowCount())
	assert.Len(t, matrix.Vocab, 2)

	// 单文档语料中所有词idf相同，L2归一化后各分量相等
	row := matrix.Rows[0]
	require.Len(t, row, 2)
	for _, weight := range row {
		assert.InDelta(t, 1/math.Sqrt2, weight, 1e-12)
	}
}

func TestFitTransform_RowsAreL2Normalized(t *testing.T) {
	docs := []string{
		"horror thriller",
		"horror",
		"comedy romance drama",
		"horror horror thriller",
	}
	matrix, err := FitTransform(docs)
	require.NoError(t, err)
	require.Equal(t, len(docs), matrix.RowCount())

	for i, row := range matrix.Rows {
		var sumSquares float64
		for _, weight := range row {
			sumSquares += weight * weight
		}
		assert.InDelta(t, 1.0, sumSquares, 1e-12, "行%d未归一化", i)
	}
}

func TestFitTransform_SmoothedIDF(t *testing.T) {
	// horror出现在两篇文档、thriller一篇：idf = ln((1+N)/(1+df)) + 1
	matrix, err := FitTransform([]string{"horror thriller", "horror"})
	require.NoError(t, err)

	horrorCol, ok := matrix.Vocab["horror"]
	require.True(t, ok)
	thrillerCol, ok := matrix.Vocab["thriller"]
	require.True(t, ok)

	idfHorror := math.Log(3.0/3.0) + 1
	idfThriller := math.Log(3.0/2.0) + 1
	norm := math.Sqrt(idfHorror*idfHorror + idfThriller*idfThriller)

	row := matrix.Rows[0]
	assert.InDelta(t, idfHorror/norm, row[horrorCol], 1e-12)
	assert.InDelta(t, idfThriller/norm, row[thrillerCol], 1e-12)

	// 仅含horror的文档归一化后权重为1
	assert.InDelta(t, 1.0, matrix.Rows[1][horrorCol], 1e-12)
}

func TestFitTransform_EmptyDocumentYieldsZeroVector(t *testing.T) {
	matrix, err := FitTransform([]string{"horror", ""})
	require.NoError(t, err)
	require.Equal(t, 2, matrix.RowCount())
	assert.Empty(t, matrix.Rows[1])
}

func TestFitTransform_Deterministic(t *testing.T) {
	docs := []string{"horror thriller", "comedy horror", "drama"}

	first, err := FitTransform(docs)
	require.NoError(t, err)
	second, err := FitTransform(docs)
	require.NoError(t, err)

	// 词表按首次出现顺序编号，两次拟合结果必须逐项一致
	assert.Equal(t, first.Vocab, second.Vocab)
	require.Equal(t, first.RowCount(), second.RowCount())
	for i := range first.Rows {
		require.Len(t, second.Rows[i], len(first.Rows[i]))
		for col, weight := range first.Rows[i] {
			assert.InDelta(t, weight, second.Rows[i][col], 0)
		}
	}
}
