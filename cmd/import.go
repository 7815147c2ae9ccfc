package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Super-Badmen-Viper/CineSong/bootstrap"
	"github.com/Super-Badmen-Viper/CineSong/repository"
	"github.com/Super-Badmen-Viper/CineSong/usecase"
)

var (
	importCSVPath string
	importClear   bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "从CSV文件导入影片目录",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := bootstrap.App()
		defer app.CloseDBConnection()

		env := app.Env
		db := app.Mongo.Database(env.DBName)

		// 导入允许比接口更长的超时
		movieRepo := repository.NewMovieRepository(db)
		importUsecase := usecase.NewCSVImportUsecase(movieRepo, 5*time.Minute)

		count, err := importUsecase.ImportFile(context.Background(), importCSVPath, importClear)
		if err != nil {
			return err
		}

		log.Printf("导入完成，共写入%d部影片", count)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "horror_movies.csv", "CSV文件路径")
	importCmd.Flags().BoolVar(&importClear, "clear", false, "导入前清空现有目录")
	rootCmd.AddCommand(importCmd)
}
