package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

func horrorCorpus() []CorpusMovie {
	return []CorpusMovie{
		{MovieID: 1, Title: "The Shining", Genres: "Horror|Thriller", VoteAverage: 8.4, Popularity: 90},
		{MovieID: 2, Title: "Halloween", Genres: "Horror", VoteAverage: 7.5, Popularity: 60},
		{MovieID: 3, Title: "Airplane!", Genres: "Comedy", VoteAverage: 7.0, Popularity: 40},
		{MovieID: 4, Title: "Psycho", Genres: "Horror|Thriller", VoteAverage: 8.5, Popularity: 85},
	}
}

func TestFit_EmptyCorpus(t *testing.T) {
	session, err := Fit(nil)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestFit_DeduplicatesByTitle(t *testing.T) {
	movies := []CorpusMovie{
		{MovieID: 1, Title: "Alien", Genres: "Horror", VoteAverage: 8.5},
		{MovieID: 2, Title: "Alien", Genres: "Comedy", VoteAverage: 3.0},
		{MovieID: 3, Title: "The Thing", Genres: "Horror", VoteAverage: 8.2},
	}

	session, err := Fit(movies)
	require.NoError(t, err)

	// 重复标题保留首次出现的记录
	assert.Equal(t, 2, session.Size())
	assert.Equal(t, 1, session.MovieAt(0).MovieID)
	assert.Equal(t, "Horror", session.MovieAt(0).Genres)
}

func TestSession_Recommend_OrdersBySimilarity(t *testing.T) {
	session, err := Fit(horrorCorpus())
	require.NoError(t, err)

	results, err := session.Recommend("The Shining", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Psycho题材完全一致排第一，Halloween共享horror排第二，Comedy垫底
	assert.Equal(t, "Psycho", results[0].Title)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-12)
	assert.Equal(t, "Halloween", results[1].Title)
	assert.Greater(t, results[1].Similarity, 0.0)
	assert.Equal(t, "Airplane!", results[2].Title)
	assert.Zero(t, results[2].Similarity)

	// 不含查询影片自身
	for _, rec := range results {
		assert.NotEqual(t, "The Shining", rec.Title)
	}
}

func TestSession_Recommend_TieBrokenByVoteAverage(t *testing.T) {
	movies := []CorpusMovie{
		{MovieID: 1, Title: "Scream", Genres: "Horror", VoteAverage: 7.2},
		{MovieID: 2, Title: "The Exorcist", Genres: "Horror", VoteAverage: 9.0},
		{MovieID: 3, Title: "Candyman", Genres: "Horror", VoteAverage: 7.0},
	}

	session, err := Fit(movies)
	require.NoError(t, err)

	results, err := session.Recommend("Scream", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 相似度相同时按评分降序
	assert.Equal(t, "The Exorcist", results[0].Title)
	assert.Equal(t, "Candyman", results[1].Title)
	assert.InDelta(t, results[0].Similarity, results[1].Similarity, 1e-12)
}

func TestSession_Recommend_FewerCandidatesThanTopN(t *testing.T) {
	session, err := Fit(horrorCorpus()[:2])
	require.NoError(t, err)

	results, err := session.Recommend("Halloween", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSession_Recommend_UnknownTitle(t *testing.T) {
	session, err := Fit(horrorCorpus())
	require.NoError(t, err)

	results, err := session.Recommend("Nonexistent", 5)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestSession_ResolveTitle(t *testing.T) {
	session, err := Fit([]CorpusMovie{
		{MovieID: 1, Title: "Léon: The Professional", Genres: "Thriller", VoteAverage: 8.5},
		{MovieID: 2, Title: "The Shining", Genres: "Horror", VoteAverage: 8.4},
		{MovieID: 3, Title: "Shin Godzilla", Genres: "Horror", VoteAverage: 7.7},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     string
		want      string
		wantFound bool
	}{
		{name: "exact match", query: "The Shining", want: "The Shining", wantFound: true},
		{name: "case insensitive substring", query: "shining", want: "The Shining", wantFound: true},
		{name: "diacritics folded", query: "leon", want: "Léon: The Professional", wantFound: true},
		{name: "substring takes first hit", query: "shin", want: "The Shining", wantFound: true},
		{name: "no match", query: "zodiac", want: "", wantFound: false},
		{name: "empty query", query: "", want: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := session.ResolveTitle(tt.query)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFit_TruncatesToMaxCorpusSize(t *testing.T) {
	const overflow = 10
	movies := make([]CorpusMovie, 0, MaxCorpusSize+overflow)
	for i := 1; i <= MaxCorpusSize+overflow; i++ {
		movies = append(movies, CorpusMovie{
			MovieID:     i,
			Title:       fmt.Sprintf("Movie %d", i),
			Genres:      "Horror",
			VoteAverage: 10 - float64(i)/float64(MaxCorpusSize+overflow),
		})
	}

	session, err := Fit(movies)
	require.NoError(t, err)

	// 语料、向量矩阵、相似度矩阵截断后行数一致
	assert.Equal(t, MaxCorpusSize, session.Size())
	assert.Equal(t, MaxCorpusSize, session.vectors.RowCount())
	assert.Len(t, session.sims, MaxCorpusSize)
	assert.Len(t, session.foldedTitles, MaxCorpusSize)

	// 截断边界之外的影片不可查询
	_, err = session.Recommend(fmt.Sprintf("Movie %d", MaxCorpusSize+1), 3)
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)

	// 边界内最后一部可查询，且推荐结果不含截断外的影片
	results, err := session.Recommend(fmt.Sprintf("Movie %d", MaxCorpusSize), 5)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, rec := range results {
		assert.LessOrEqual(t, rec.MovieID, MaxCorpusSize)
	}
}

func TestSession_SimilarityAlignedWithCorpus(t *testing.T) {
	session, err := Fit(horrorCorpus())
	require.NoError(t, err)

	require.Equal(t, 4, session.Size())
	assert.Greater(t, session.VocabularySize(), 0)

	// The Shining与Psycho题材相同，相似度为1且对称
	assert.InDelta(t, 1.0, session.Similarity(0, 3), 1e-12)
	assert.InDelta(t, session.Similarity(3, 0), session.Similarity(0, 3), 1e-12)
}
