package domain_util

import (
	"container/heap"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// MinHeap 最小堆实现 (基于container/heap)
// 堆顶是按 DecreasingLess 排序时最靠后的词，用于保留前 N 个高频词
type MinHeap []word_cloud_models.WordCount

func (h MinHeap) Len() int            { return len(h) }
func (h MinHeap) Less(i, j int) bool  { return DecreasingLess(h[j], h[i]) }
func (h MinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *MinHeap) Push(x interface{}) { *h = append(*h, x.(word_cloud_models.WordCount)) }
func (h *MinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopN returns the n best pairs under DecreasingLess, best first.
// n must be within [0, len(pairs)].
func TopN(pairs []word_cloud_models.WordCount, n int) []word_cloud_models.WordCount {
	if n <= 0 {
		return []word_cloud_models.WordCount{}
	}

	h := make(MinHeap, 0, n+1)
	for _, p := range pairs {
		if h.Len() < n {
			heap.Push(&h, p)
			continue
		}
		if DecreasingLess(p, h[0]) {
			h[0] = p
			heap.Fix(&h, 0)
		}
	}

	top := make([]word_cloud_models.WordCount, h.Len())
	for i := len(top) - 1; i >= 0; i-- {
		top[i] = heap.Pop(&h).(word_cloud_models.WordCount)
	}
	return top
}
