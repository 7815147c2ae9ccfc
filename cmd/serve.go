package cmd

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Super-Badmen-Viper/CineSong/api/route"
	"github.com/Super-Badmen-Viper/CineSong/bootstrap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP推荐服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := bootstrap.App()
		defer app.CloseDBConnection()

		env := app.Env
		timeout := time.Duration(env.ContextTimeout) * time.Second
		db := app.Mongo.Database(env.DBName)

		if env.AppEnv == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		engine := gin.Default()
		route.Setup(env, timeout, db, app.Poster, engine)

		log.Printf("服务监听于 %s", env.ServerAddress)
		return engine.Run(env.ServerAddress)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
