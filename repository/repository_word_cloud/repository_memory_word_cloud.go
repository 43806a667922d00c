package repository_word_cloud

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// memoryWordCloudRepository 未配置数据库时 serve 模式使用的内存实现
type memoryWordCloudRepository struct {
	mu      sync.RWMutex
	entries map[primitive.ObjectID]word_cloud_models.WordCloudMetadata
	unique  map[string]bool
}

func NewMemoryWordCloudRepository() word_cloud_interface.WordCloudRepository {
	return &memoryWordCloudRepository{
		entries: make(map[primitive.ObjectID]word_cloud_models.WordCloudMetadata),
		unique:  make(map[string]bool),
	}
}

func (m *memoryWordCloudRepository) BulkUpsert(ctx context.Context, entries []*word_cloud_models.WordCloudMetadata) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if m.unique["name"] && m.hasOtherName(entry.ID, entry.Name) {
			return 0, fmt.Errorf("duplicate name %q violates unique index", entry.Name)
		}
		m.entries[entry.ID] = *entry
	}
	return len(entries), nil
}

func (m *memoryWordCloudRepository) hasOtherName(id primitive.ObjectID, name string) bool {
	for otherID, other := range m.entries {
		if otherID != id && other.Name == name {
			return true
		}
	}
	return false
}

func (m *memoryWordCloudRepository) AllDelete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[primitive.ObjectID]word_cloud_models.WordCloudMetadata)
	return nil
}

func (m *memoryWordCloudRepository) DropAllIndex(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unique = make(map[string]bool)
	return nil
}

func (m *memoryWordCloudRepository) CreateIndex(ctx context.Context, fieldName string, unique bool) error {
	if fieldName != "name" {
		return fmt.Errorf("failed to create index (%s): unsupported field", fieldName)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if unique {
		seen := make(map[string]bool, len(m.entries))
		for _, entry := range m.entries {
			if seen[entry.Name] {
				return fmt.Errorf("failed to create index (%s): duplicate %q", fieldName, entry.Name)
			}
			seen[entry.Name] = true
		}
	}
	m.unique[fieldName] = unique
	return nil
}

func (m *memoryWordCloudRepository) GetAll(ctx context.Context) ([]*word_cloud_models.WordCloudMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*word_cloud_models.WordCloudMetadata, 0, len(m.entries))
	for _, entry := range m.entries {
		item := entry
		results = append(results, &item)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results, nil
}
