package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

const importBatchSize = 500

// CSVImportUsecase 从CSV文件导入影片目录（命令行工具使用）
// 分隔符优先按';'解析，表头中找不到标题列时回退为','
type CSVImportUsecase struct {
	movieRepository domain.MovieRepository
	timeout         time.Duration
}

func NewCSVImportUsecase(movieRepository domain.MovieRepository, timeout time.Duration) *CSVImportUsecase {
	return &CSVImportUsecase{
		movieRepository: movieRepository,
		timeout:         timeout,
	}
}

// ImportFile 导入CSV文件，clear为true时先清空现有目录；返回写入的影片数
func (u *CSVImportUsecase) ImportFile(ctx context.Context, path string, clear bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	header, records, err := readCSV(path, ';')
	if err != nil || columnIndex(header, "title") < 0 {
		// ';'读取失败或解析不出标题列，尝试','分隔
		header, records, err = readCSV(path, ',')
	}
	if err != nil {
		return 0, fmt.Errorf("CSV文件读取失败: %w", err)
	}
	if columnIndex(header, "title") < 0 {
		return 0, fmt.Errorf("CSV缺少title列，可用列: %v", header)
	}

	if clear {
		deleted, err := u.movieRepository.DeleteAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("目录清空失败: %w", err)
		}
		log.Printf("已清空%d条现有影片记录", deleted)
	}

	if err := u.movieRepository.EnsureIndexes(ctx); err != nil {
		return 0, err
	}

	movies := parseMovies(header, records)
	if len(movies) == 0 {
		return 0, domain.ErrEmptyCorpus
	}

	// 分批写入
	written := 0
	for start := 0; start < len(movies); start += importBatchSize {
		end := start + importBatchSize
		if end > len(movies) {
			end = len(movies)
		}
		count, err := u.movieRepository.BulkUpsertByTitle(ctx, movies[start:end])
		if err != nil {
			return written, err
		}
		written += count
	}
	return written, nil
}

func readCSV(path string, comma rune) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("空文件")
	}
	return rows[0], rows[1:], nil
}

// columnIndex 按列名定位（不区分大小写），兼容genre_names/genres等别名
func columnIndex(header []string, names ...string) int {
	for _, name := range names {
		for i, column := range header {
			if strings.EqualFold(strings.TrimSpace(column), name) {
				return i
			}
		}
	}
	return -1
}

func parseMovies(header []string, records [][]string) []*domain.Movie {
	titleCol := columnIndex(header, "title")
	idCol := columnIndex(header, "id", "movie_id")
	genresCol := columnIndex(header, "genre_names", "genres")
	overviewCol := columnIndex(header, "overview")
	voteAvgCol := columnIndex(header, "vote_average")
	voteCountCol := columnIndex(header, "vote_count")
	releaseCol := columnIndex(header, "release_date")
	popularityCol := columnIndex(header, "popularity")
	runtimeCol := columnIndex(header, "runtime")
	budgetCol := columnIndex(header, "budget")
	revenueCol := columnIndex(header, "revenue")
	languageCol := columnIndex(header, "original_language")

	movies := make([]*domain.Movie, 0, len(records))
	for rowNum, record := range records {
		title := strings.TrimSpace(field(record, titleCol))
		if title == "" {
			continue
		}

		movie := &domain.Movie{
			Title:            title,
			Overview:         field(record, overviewCol),
			Genres:           field(record, genresCol),
			VoteAverage:      parseFloat(field(record, voteAvgCol)),
			VoteCount:        parseInt(field(record, voteCountCol)),
			ReleaseDate:      field(record, releaseCol),
			Popularity:       parseFloat(field(record, popularityCol)),
			Runtime:          parseInt(field(record, runtimeCol)),
			Budget:           parseInt64(field(record, budgetCol)),
			Revenue:          parseInt64(field(record, revenueCol)),
			OriginalLanguage: field(record, languageCol),
		}

		movie.MovieID = parseInt(field(record, idCol))
		if movie.MovieID == 0 {
			// 源数据无ID时按行号生成
			movie.MovieID = rowNum + 1
		}

		movies = append(movies, movie)
	}
	return movies
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseInt(value string) int {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int(parsed)
}

func parseInt64(value string) int64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int64(parsed)
}
