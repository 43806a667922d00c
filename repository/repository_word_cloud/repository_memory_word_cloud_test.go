package repository_word_cloud

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

func TestMemoryWordCloudRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWordCloudRepository()

	entries := sampleEntries(time.Now().UTC())
	n, err := repo.BulkUpsert(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fox", got[0].Name)
	assert.Equal(t, "Quick", got[1].Name)

	// 返回的是副本
	got[0].Name = "changed"
	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fox", again[0].Name)

	require.NoError(t, repo.CreateIndex(ctx, "name", true))
	_, err = repo.BulkUpsert(ctx, []*word_cloud_models.WordCloudMetadata{
		{ID: primitive.NewObjectID(), Name: "fox", Count: 9, Rank: 3},
	})
	assert.Error(t, err, "unique name index rejects duplicates")

	require.NoError(t, repo.DropAllIndex(ctx))
	require.NoError(t, repo.AllDelete(ctx))
	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryWordCloudRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryWordCloudRepository()
	_, err := repo.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
