package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ninesong/wordcloud/mongo"
)

const connectTimeout = 10 * time.Second

func NewMongoDatabase(env *Env) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.NewClient(env.DBURI)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}

	if err = client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	if err = client.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client, nil
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	if err := client.Disconnect(context.TODO()); err != nil {
		log.Printf("mongo disconnect failed: %v", err)
		return
	}

	log.Println("Connection to MongoDB closed.")
}
