package word_cloud_models

import (
	"io"

	"github.com/ninesong/wordcloud/domain/domain_file_entity"
)

// Source 已解码为 UTF-8 的输入文本
type Source struct {
	Label  string
	Kind   domain_file_entity.FileTypeNo
	Reader io.Reader
	Closer io.Closer
}

func (s *Source) Read(p []byte) (int, error) {
	return s.Reader.Read(p)
}

func (s *Source) Close() error {
	if s.Closer == nil {
		return nil
	}
	return s.Closer.Close()
}
