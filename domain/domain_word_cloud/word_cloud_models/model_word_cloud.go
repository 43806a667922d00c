package word_cloud_models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NumFontSizes = 37
	MinFontSize  = 11
	MaxFontSize  = MinFontSize + NumFontSizes - 1

	// BigCloudThreshold 达到该词数时使用 bigCloud 容器
	BigCloudThreshold = 75

	StylesheetName  = "tagcloud.css"
	BigCloudClass   = "bigCloud"
	SmallCloudClass = "smallCloud"
)

// Colors 词云可用的五种颜色类
var Colors = [...]string{"col1", "col2", "col3", "col4", "col5"}

// IsColor reports whether c is one of the palette labels.
func IsColor(c string) bool {
	for _, col := range Colors {
		if col == c {
			return true
		}
	}
	return false
}

type WordCount struct {
	Word  string
	Count int
}

// FrequencyTable 词 -> 出现次数，键区分大小写
type FrequencyTable map[string]int

// Pairs materializes the table in unspecified order.
func (t FrequencyTable) Pairs() []WordCount {
	pairs := make([]WordCount, 0, len(t))
	for word, count := range t {
		pairs = append(pairs, WordCount{Word: word, Count: count})
	}
	return pairs
}

// CloudEntry 选中用于渲染的词；Color 在渲染时才分配
type CloudEntry struct {
	Word     string `json:"word"`
	Count    int    `json:"count"`
	FontSize int    `json:"font_size"`
	Color    string `json:"color,omitempty"`
}

// FontClass is the stylesheet class for the entry's size bucket.
func (e CloudEntry) FontClass() string {
	return "f" + strconv.Itoa(e.FontSize)
}

// Tooltip is the literal occurrence text shown on hover.
func (e CloudEntry) Tooltip() string {
	return strconv.Itoa(e.Count) + " occurrences"
}

// CloudClass picks the container class for n rendered words.
func CloudClass(n int) string {
	if n >= BigCloudThreshold {
		return BigCloudClass
	}
	return SmallCloudClass
}

// WordCloudMetadata 持久化的词云条目
type WordCloudMetadata struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Count     int                `bson:"count" json:"count"`
	Rank      int                `bson:"rank" json:"rank"`
	FontSize  int                `bson:"font_size" json:"font_size"`
	Color     string             `bson:"color" json:"color"`
	Source    string             `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
