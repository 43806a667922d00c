package domain_util

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

func TestDecreasingLess(t *testing.T) {
	fox := word_cloud_models.WordCount{Word: "fox", Count: 3}
	upper := word_cloud_models.WordCount{Word: "Quick", Count: 1}
	lower := word_cloud_models.WordCount{Word: "quick", Count: 1}
	the := word_cloud_models.WordCount{Word: "the", Count: 1}

	assert.True(t, DecreasingLess(fox, upper), "higher count comes first")
	assert.True(t, DecreasingLess(upper, the), "case-folded order breaks count ties")
	assert.True(t, DecreasingLess(upper, lower), "raw byte order breaks folded ties")
	assert.False(t, DecreasingLess(lower, upper))
}

func TestAlphabeticalLess(t *testing.T) {
	a := word_cloud_models.WordCount{Word: "Apple", Count: 5}
	b := word_cloud_models.WordCount{Word: "banana", Count: 1}
	assert.True(t, AlphabeticalLess(a, b))
	assert.False(t, AlphabeticalLess(b, a))

	// 相同小写形式时按词频升序
	low := word_cloud_models.WordCount{Word: "Go", Count: 1}
	high := word_cloud_models.WordCount{Word: "go", Count: 2}
	assert.True(t, AlphabeticalLess(low, high))
}

func TestTopNMatchesSortAndSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"a", "A", "b", "B", "c", "delta", "Delta", "echo", "fox", "golf", "Hotel", "hotel", "india"}

	pairs := make([]word_cloud_models.WordCount, 0, len(words))
	for _, w := range words {
		pairs = append(pairs, word_cloud_models.WordCount{Word: w, Count: 1 + rng.Intn(4)})
	}

	sorted := append([]word_cloud_models.WordCount(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool { return DecreasingLess(sorted[i], sorted[j]) })

	for n := 0; n <= len(pairs); n++ {
		top := TopN(pairs, n)
		require.Len(t, top, n)
		assert.Equal(t, sorted[:n], top, "n=%d", n)
	}
}

func TestTopNEmpty(t *testing.T) {
	assert.Empty(t, TopN(nil, 0))
	assert.Empty(t, TopN(nil, 3))
}
