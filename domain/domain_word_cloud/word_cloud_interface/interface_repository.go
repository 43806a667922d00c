package word_cloud_interface

import (
	"context"
	"io"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

type WordCloudRepository interface {
	BulkUpsert(ctx context.Context, entries []*word_cloud_models.WordCloudMetadata) (int, error)
	AllDelete(ctx context.Context) error
	DropAllIndex(ctx context.Context) error
	CreateIndex(ctx context.Context, fieldName string, unique bool) error
	GetAll(ctx context.Context) ([]*word_cloud_models.WordCloudMetadata, error)
}

// SourceRepository 打开输入并返回 UTF-8 文本流
type SourceRepository interface {
	Open(ctx context.Context, path string) (*word_cloud_models.Source, error)
	Load(ctx context.Context, r io.ReadSeeker, label string) (*word_cloud_models.Source, error)
}

// PageRepository 原子地写出生成的页面，render 失败时不留下任何文件
type PageRepository interface {
	Write(ctx context.Context, path string, render func(w io.Writer) error) error
}
