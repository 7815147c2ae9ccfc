package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBUri)
	if err != nil {
		log.Fatal(fmt.Errorf("创建MongoDB客户端失败: %w", err))
	}

	if err = client.Connect(ctx); err != nil {
		log.Fatal(fmt.Errorf("连接MongoDB失败: %w", err))
	}

	if err = client.Ping(ctx); err != nil {
		log.Fatal(fmt.Errorf("MongoDB心跳检测失败: %w", err))
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	if err := client.Disconnect(context.Background()); err != nil {
		log.Fatal(err)
	}

	log.Println("MongoDB连接已关闭")
}
