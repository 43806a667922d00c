package repository_word_cloud

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
	"github.com/ninesong/wordcloud/mongo"
)

type wordCloudRepository struct {
	db         mongo.Database
	collection string
}

func NewWordCloudRepository(db mongo.Database, collection string) word_cloud_interface.WordCloudRepository {
	return &wordCloudRepository{
		db:         db,
		collection: collection,
	}
}

func (w *wordCloudRepository) DropAllIndex(ctx context.Context) error {
	coll := w.db.Collection(w.collection)

	// 1. 检测索引是否存在（排除默认_id索引）
	indexes, err := coll.Indexes().ListSpecifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	// 2. 若仅有默认_id索引，直接返回
	if len(indexes) <= 1 {
		return nil
	}

	// 3. 存在非默认索引时才执行删除
	if _, err = coll.Indexes().DropAll(ctx); err != nil {
		return fmt.Errorf("failed to drop indexes: %w", err)
	}
	return nil
}

func (w *wordCloudRepository) CreateIndex(ctx context.Context, fieldName string, unique bool) error {
	coll := w.db.Collection(w.collection)
	indexModel := driver.IndexModel{
		Keys:    bson.D{{Key: fieldName, Value: 1}},
		Options: options.Index().SetUnique(unique),
	}
	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index (%s): %w", fieldName, err)
	}
	return nil
}

func (w *wordCloudRepository) BulkUpsert(ctx context.Context, entries []*word_cloud_models.WordCloudMetadata) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	coll := w.db.Collection(w.collection)
	bulk := coll.BulkWrite()

	for _, entry := range entries {
		filter := bson.M{"_id": entry.ID}
		model := driver.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": entry}).
			SetUpsert(true)
		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert failed: %w", err)
	}

	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}

func (w *wordCloudRepository) AllDelete(ctx context.Context) error {
	coll := w.db.Collection(w.collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear word cloud: %w", err)
	}
	return nil
}

func (w *wordCloudRepository) GetAll(ctx context.Context) ([]*word_cloud_models.WordCloudMetadata, error) {
	coll := w.db.Collection(w.collection)
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query word cloud: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*word_cloud_models.WordCloudMetadata
	for cursor.Next(ctx) {
		var item word_cloud_models.WordCloudMetadata
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode word cloud entry: %w", err)
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("word cloud cursor failed: %w", err)
	}

	return results, nil
}
