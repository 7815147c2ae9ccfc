package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

// importMockRepository 记录写入与清空调用的目录桩
type importMockRepository struct {
	mockMovieRepository
	upserted     []*domain.Movie
	deleteCalled bool
}

func (m *importMockRepository) BulkUpsertByTitle(_ context.Context, movies []*domain.Movie) (int, error) {
	m.upserted = append(m.upserted, movies...)
	return len(movies), nil
}

func (m *importMockRepository) DeleteAll(_ context.Context) (int64, error) {
	m.deleteCalled = true
	return int64(len(m.movies)), nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVImportUsecase_SemicolonSeparated(t *testing.T) {
	csvContent := "id;title;genre_names;vote_average;popularity;original_language\n" +
		"27205;The Shining;Horror|Thriller;8.4;90.5;en\n" +
		"11;Halloween;Horror;7.5;60.1;en\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	count, err := importer.ImportFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.False(t, repo.deleteCalled)

	require.Len(t, repo.upserted, 2)
	first := repo.upserted[0]
	assert.Equal(t, 27205, first.MovieID)
	assert.Equal(t, "The Shining", first.Title)
	assert.Equal(t, "Horror|Thriller", first.Genres)
	assert.InDelta(t, 8.4, first.VoteAverage, 1e-9)
	assert.InDelta(t, 90.5, first.Popularity, 1e-9)
	assert.Equal(t, "en", first.OriginalLanguage)
}

func TestCSVImportUsecase_CommaFallback(t *testing.T) {
	csvContent := "movie_id,title,genres,vote_average\n" +
		"5,Psycho,Horror|Thriller,8.5\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	count, err := importer.ImportFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, repo.upserted, 1)
	assert.Equal(t, 5, repo.upserted[0].MovieID)
	assert.Equal(t, "Psycho", repo.upserted[0].Title)
}

func TestCSVImportUsecase_SkipsRowsWithoutTitle(t *testing.T) {
	csvContent := "id;title;genre_names\n" +
		"1;Alien;Horror\n" +
		"2;;Horror\n" +
		"3;The Thing;Horror\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	count, err := importer.ImportFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCSVImportUsecase_RowNumberFallbackID(t *testing.T) {
	csvContent := "title;genre_names\n" +
		"Alien;Horror\n" +
		"The Thing;Horror\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	_, err := importer.ImportFile(context.Background(), path, false)
	require.NoError(t, err)

	require.Len(t, repo.upserted, 2)
	assert.Equal(t, 1, repo.upserted[0].MovieID)
	assert.Equal(t, 2, repo.upserted[1].MovieID)
}

func TestCSVImportUsecase_ClearBeforeImport(t *testing.T) {
	csvContent := "id;title;genre_names\n1;Alien;Horror\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	_, err := importer.ImportFile(context.Background(), path, true)
	require.NoError(t, err)
	assert.True(t, repo.deleteCalled)
}

func TestCSVImportUsecase_MissingTitleColumn(t *testing.T) {
	csvContent := "id;name\n1;Alien\n"
	path := writeTempCSV(t, csvContent)

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	_, err := importer.ImportFile(context.Background(), path, false)
	assert.Error(t, err)
	assert.Empty(t, repo.upserted)
}

func TestCSVImportUsecase_EmptyFile(t *testing.T) {
	// ';'读取失败时回退','再试一次，两次都失败才报错
	path := writeTempCSV(t, "")

	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	_, err := importer.ImportFile(context.Background(), path, false)
	assert.Error(t, err)
	assert.Empty(t, repo.upserted)
}

func TestCSVImportUsecase_MissingFile(t *testing.T) {
	repo := &importMockRepository{}
	importer := NewCSVImportUsecase(repo, 10*time.Second)

	_, err := importer.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), false)
	assert.Error(t, err)
}
