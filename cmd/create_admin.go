package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/Super-Badmen-Viper/CineSong/bootstrap"
	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/repository"
)

var (
	adminName     string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "创建管理员账号（用于管理端接口登录）",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminName == "" || adminPassword == "" {
			return fmt.Errorf("必须同时提供--name和--password")
		}

		app := bootstrap.App()
		defer app.CloseDBConnection()

		db := app.Mongo.Database(app.Env.DBName)
		userRepo := repository.NewUserRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if existing, err := userRepo.GetByName(ctx, adminName); err != nil {
			return fmt.Errorf("账号查询失败: %w", err)
		} else if existing != nil {
			return fmt.Errorf("账号%s已存在", adminName)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("密码加密失败: %w", err)
		}

		user := &domain.User{
			Name:     adminName,
			Password: string(hashed),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("账号创建失败: %w", err)
		}

		log.Printf("管理员账号%s创建成功", adminName)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "管理员用户名")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "管理员密码")
	rootCmd.AddCommand(createAdminCmd)
}
