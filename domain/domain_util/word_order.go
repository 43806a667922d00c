package domain_util

import (
	"strings"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// FoldWord 仅用于排序比较的小写形式，不影响存储的键
func FoldWord(word string) string {
	return strings.ToLower(word)
}

// DecreasingLess 按词频降序，词频相同时按小写字母升序，再按原始字节序
func DecreasingLess(a, b word_cloud_models.WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	fa, fb := FoldWord(a.Word), FoldWord(b.Word)
	if fa != fb {
		return fa < fb
	}
	return a.Word < b.Word
}

// AlphabeticalLess 按小写字母升序，相同时按词频升序，再按原始字节序
func AlphabeticalLess(a, b word_cloud_models.WordCount) bool {
	fa, fb := FoldWord(a.Word), FoldWord(b.Word)
	if fa != fb {
		return fa < fb
	}
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Word < b.Word
}
