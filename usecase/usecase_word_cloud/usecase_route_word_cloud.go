package usecase_word_cloud

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_util"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

type wordCloudUsecase struct {
	repoSource    word_cloud_interface.SourceRepository
	repoPage      word_cloud_interface.PageRepository
	repoWordCloud word_cloud_interface.WordCloudRepository
	renderer      *Renderer
	timeout       time.Duration

	// saveMu 串行化词云替换（删索引 → 清空 → 写入 → 建索引）
	saveMu sync.Mutex
}

// NewWordCloudUsecase wires the pipeline. repoWordCloud may be nil, in which
// case generated clouds are not persisted.
func NewWordCloudUsecase(
	repoSource word_cloud_interface.SourceRepository,
	repoPage word_cloud_interface.PageRepository,
	repoWordCloud word_cloud_interface.WordCloudRepository,
	renderer *Renderer,
	timeout time.Duration,
) word_cloud_interface.WordCloudUsecase {
	return &wordCloudUsecase{
		repoSource:    repoSource,
		repoPage:      repoPage,
		repoWordCloud: repoWordCloud,
		renderer:      renderer,
		timeout:       timeout,
	}
}

func (w *wordCloudUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.timeout)
}

func (w *wordCloudUsecase) GenerateWordCloud(
	ctx context.Context, inputPath, outputPath string, wordLimit int,
) ([]word_cloud_models.CloudEntry, error) {
	// 命令行生成不设超时，只有持久化受 timeout 约束

	// 1. 读取输入并统计词频
	source, err := w.repoSource.Open(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	table, err := countSource(source, inputPath)
	if err != nil {
		return nil, err
	}

	// 2. 选出前 N 个词
	entries, err := SelectWords(table, wordLimit)
	if err != nil {
		return nil, err
	}

	// 3. 渲染并写出页面
	var painted []word_cloud_models.CloudEntry
	err = w.repoPage.Write(ctx, outputPath, func(out io.Writer) error {
		var renderErr error
		painted, renderErr = w.renderer.Render(out, source.Label, entries)
		return renderErr
	})
	if err != nil {
		return nil, err
	}

	// 4. 保存词云（失败不影响结果）
	w.saveWordCloud(ctx, source.Label, painted)

	return painted, nil
}

func (w *wordCloudUsecase) BuildWordCloud(
	ctx context.Context, r io.ReadSeeker, label string, wordLimit int, out io.Writer,
) ([]word_cloud_models.CloudEntry, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	source, err := w.repoSource.Load(ctx, r, label)
	if err != nil {
		return nil, err
	}
	table, err := countSource(source, label)
	if err != nil {
		return nil, err
	}

	entries, err := SelectWords(table, wordLimit)
	if err != nil {
		return nil, err
	}

	painted, err := w.renderer.Render(out, source.Label, entries)
	if err != nil {
		return nil, err
	}

	w.saveWordCloud(ctx, source.Label, painted)

	return painted, nil
}

func countSource(source *word_cloud_models.Source, path string) (word_cloud_models.FrequencyTable, error) {
	table, err := CountWords(source)
	if closeErr := source.Close(); closeErr != nil {
		log.Printf("failed to close input %s: %v", path, closeErr)
	}
	if err != nil {
		return nil, &domain.InputReadError{Path: path, Err: err}
	}
	return table, nil
}

func (w *wordCloudUsecase) saveWordCloud(
	ctx context.Context, sourceLabel string, entries []word_cloud_models.CloudEntry,
) {
	if w.repoWordCloud == nil || len(entries) == 0 {
		return
	}

	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	// 1. 删除现有索引
	if err := w.repoWordCloud.DropAllIndex(ctx); err != nil {
		// 非致命错误，记录日志但继续执行
		log.Printf("word cloud index drop failed: %v", err)
	}

	// 2. 清空当前词云数据
	if err := w.repoWordCloud.AllDelete(ctx); err != nil {
		log.Printf("word cloud clear failed: %v", err)
		return
	}

	// 3. 构建最终结果集（rank 为字母序位置）
	createdAt := time.Now().UTC()
	results := make([]*word_cloud_models.WordCloudMetadata, 0, len(entries))
	for i, entry := range entries {
		results = append(results, &word_cloud_models.WordCloudMetadata{
			ID:        primitive.NewObjectID(),
			Name:      entry.Word,
			Count:     entry.Count,
			Rank:      i + 1,
			FontSize:  entry.FontSize,
			Color:     entry.Color,
			Source:    sourceLabel,
			CreatedAt: createdAt,
		})
	}

	// 4. 批量保存
	if _, err := w.repoWordCloud.BulkUpsert(ctx, results); err != nil {
		log.Printf("word cloud save failed: %v", err)
		return
	}

	// 5. 重建索引
	if err := w.repoWordCloud.CreateIndex(ctx, "name", true); err != nil {
		log.Printf("word cloud index rebuild warning: %v", err)
	}
}

func (w *wordCloudUsecase) GetAllWordCloudSearch(
	ctx context.Context,
) ([]word_cloud_models.WordCloudMetadata, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	results, err := w.loadWordCloud(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results, nil
}

func (w *wordCloudUsecase) GetHighFrequencyWordCloudSearch(
	ctx context.Context, wordLimit int,
) ([]word_cloud_models.WordCloudMetadata, error) {
	if wordLimit < 1 {
		return nil, domain.ErrInvalidLimit
	}

	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	results, err := w.loadWordCloud(ctx)
	if err != nil {
		return nil, err
	}

	// 按词频降序排序（高频词优先）
	sort.Slice(results, func(i, j int) bool {
		return domain_util.DecreasingLess(
			word_cloud_models.WordCount{Word: results[i].Name, Count: results[i].Count},
			word_cloud_models.WordCount{Word: results[j].Name, Count: results[j].Count},
		)
	})

	topN := wordLimit
	if len(results) < topN {
		topN = len(results)
	}
	results = results[:topN]

	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

func (w *wordCloudUsecase) loadWordCloud(ctx context.Context) ([]word_cloud_models.WordCloudMetadata, error) {
	if w.repoWordCloud == nil {
		return []word_cloud_models.WordCloudMetadata{}, nil
	}

	ptrResults, err := w.repoWordCloud.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("word cloud query failed: %w", err)
	}

	results := make([]word_cloud_models.WordCloudMetadata, 0, len(ptrResults))
	for _, ptr := range ptrResults {
		if ptr == nil {
			continue
		}
		results = append(results, *ptr)
	}
	return results, nil
}
