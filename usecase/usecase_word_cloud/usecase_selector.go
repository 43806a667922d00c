package usecase_word_cloud

import (
	"sort"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_util"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// SelectWords 选出 n 个高频词并按字母序返回，同时计算字号档位
func SelectWords(table word_cloud_models.FrequencyTable, n int) ([]word_cloud_models.CloudEntry, error) {
	// 1. 参数校验：n 必须落在 [1, 不同词数] 内
	if n < 1 {
		return nil, &domain.SelectionError{Requested: n, Available: len(table), Err: domain.ErrInvalidLimit}
	}
	if n > len(table) {
		return nil, &domain.SelectionError{Requested: n, Available: len(table), Err: domain.ErrNotEnoughWords}
	}

	// 2. 按词频降序取前 n 个
	top := domain_util.TopN(table.Pairs(), n)

	// 3. 重新按字母序排序
	sort.Slice(top, func(i, j int) bool {
		return domain_util.AlphabeticalLess(top[i], top[j])
	})

	// 4. 计算字号
	minCount, maxCount := countRange(top)
	entries := make([]word_cloud_models.CloudEntry, 0, len(top))
	for _, wc := range top {
		entries = append(entries, word_cloud_models.CloudEntry{
			Word:     wc.Word,
			Count:    wc.Count,
			FontSize: FontSize(wc.Count, minCount, maxCount),
		})
	}

	return entries, nil
}

// FontSize maps count linearly onto [MinFontSize, MaxFontSize].
// When every selected count is equal the minimum size is used.
func FontSize(count, minCount, maxCount int) int {
	if maxCount == minCount {
		return word_cloud_models.MinFontSize
	}
	size := word_cloud_models.MinFontSize +
		word_cloud_models.NumFontSizes*(count-minCount)/(maxCount-minCount)
	if size > word_cloud_models.MaxFontSize {
		return word_cloud_models.MaxFontSize
	}
	return size
}

func countRange(words []word_cloud_models.WordCount) (int, int) {
	if len(words) == 0 {
		return 0, 0
	}
	minCount, maxCount := words[0].Count, words[0].Count
	for _, wc := range words[1:] {
		if wc.Count < minCount {
			minCount = wc.Count
		}
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}
	return minCount, maxCount
}
