package usecase_word_cloud

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// maxTokenSize 单个空白分隔词的最大字节数
const maxTokenSize = 1 << 20

// CountWords 按空白切分输入，去掉非 ASCII 字母数字字符后统计词频。
// 清洗后为空的词不计入。
func CountWords(r io.Reader) (word_cloud_models.FrequencyTable, error) {
	table := make(word_cloud_models.FrequencyTable)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(scanWords)

	for scanner.Scan() {
		word := NormalizeToken(scanner.Bytes())
		if word == "" {
			continue
		}
		table[word]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan words: %w", err)
	}

	return table, nil
}

// NormalizeToken keeps only ASCII letters and digits, preserving case.
func NormalizeToken(token []byte) string {
	buf := make([]byte, 0, len(token))
	for _, b := range token {
		if isASCIIAlnum(b) {
			buf = append(buf, b)
		}
	}
	return string(buf)
}

func isASCIIAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// isSeparator 分词用的空白字符：ASCII 控制空白、U+001C..U+001F、U+0085，
// 以及 Unicode 空格/行/段分隔符，但不含不换行空格 U+00A0、U+2007、U+202F。
func isSeparator(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1F, 0x85:
		return true
	case 0xA0, 0x2007, 0x202F:
		return false
	}
	if r < utf8.RuneSelf {
		return r == ' '
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// scanWords is bufio.ScanWords with isSeparator as the delimiter set.
func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}

	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
