package bootstrap

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Env 服务运行所需的全部环境配置
type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	TMDBApiKey            string `mapstructure:"TMDB_API_KEY"`
	RedisURL              string `mapstructure:"REDIS_URL"`
}

func NewEnv() *Env {
	viper.SetConfigFile(".env")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("DB_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "cinesong")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_HOUR", 2)

	// .env缺失时回退到环境变量
	if err := viper.ReadInConfig(); err != nil {
		log.Println("未找到.env文件，使用环境变量和默认配置")
	}

	env := Env{}
	if err := viper.Unmarshal(&env); err != nil {
		log.Fatal("环境配置解析失败: ", err)
	}

	if env.AccessTokenSecret == "" {
		log.Println("警告: 未配置ACCESS_TOKEN_SECRET，管理端接口将无法通过鉴权")
	}
	if env.AppEnv == "development" {
		log.Println("应用以开发模式运行")
	}

	return &env
}
