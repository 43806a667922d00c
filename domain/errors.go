package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLimit     = errors.New("word limit must be a positive integer")
	ErrNotEnoughWords   = errors.New("word limit exceeds the number of distinct words")
	ErrUnsupportedInput = errors.New("input is not a text file")
)

// UsageError 命令行参数错误，在任何工作开始前返回
type UsageError struct {
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("usage error: %s: %v", e.Message, e.Err)
	}
	return "usage error: " + e.Message
}

func (e *UsageError) Unwrap() error { return e.Err }

// InputReadError 输入文件缺失、不可读或不是文本
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read input %q: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// SelectionError 请求的词数无法从频率表中选出
type SelectionError struct {
	Requested int
	Available int
	Err       error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("cannot select %d words from %d distinct words: %v", e.Requested, e.Available, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// OutputWriteError 目标页面无法创建或写入
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output %q: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
