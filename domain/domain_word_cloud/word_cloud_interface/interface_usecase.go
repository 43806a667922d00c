package word_cloud_interface

import (
	"context"
	"io"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

type WordCloudUsecase interface {
	GenerateWordCloud(
		ctx context.Context, inputPath, outputPath string, wordLimit int,
	) ([]word_cloud_models.CloudEntry, error)

	BuildWordCloud(
		ctx context.Context, r io.ReadSeeker, label string, wordLimit int, w io.Writer,
	) ([]word_cloud_models.CloudEntry, error)

	GetAllWordCloudSearch(
		ctx context.Context,
	) ([]word_cloud_models.WordCloudMetadata, error)

	GetHighFrequencyWordCloudSearch(
		ctx context.Context, wordLimit int,
	) ([]word_cloud_models.WordCloudMetadata, error)
}
