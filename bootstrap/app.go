package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/mongo"
	"github.com/Super-Badmen-Viper/CineSong/tmdb"
)

// Application 聚合服务运行期的共享资源
type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Poster *tmdb.Client
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)
	app.Poster = newPosterClient(app.Env)
	return *app
}

// newPosterClient 优先使用Redis缓存，连接失败时降级为内存缓存
func newPosterClient(env *Env) *tmdb.Client {
	var cache tmdb.Cache
	if env.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisCache, err := tmdb.NewRedisCache(ctx, env.RedisURL)
		if err != nil {
			log.Println("Redis连接失败，海报缓存降级为内存模式: ", err)
		} else {
			cache = redisCache
		}
	}
	if cache == nil {
		cache = tmdb.NewMemoryCache(0)
	}

	if env.TMDBApiKey == "" {
		log.Println("未配置TMDB_API_KEY，推荐结果将不包含海报链接")
	}
	return tmdb.NewClient(env.TMDBApiKey, cache)
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
