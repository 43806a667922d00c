package repository_word_cloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dhowden/tag"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_file_entity"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

type sourceFileRepository struct {
	detector     domain_file_entity.FileDetector
	encoding     encoding.Encoding
	showProgress bool
}

// NewSourceFileRepository builds a repository that decodes text inputs with
// the named WHATWG encoding ("" means UTF-8). A byte order mark always wins.
func NewSourceFileRepository(
	detector domain_file_entity.FileDetector,
	encodingName string,
	showProgress bool,
) (word_cloud_interface.SourceRepository, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &sourceFileRepository{
		detector:     detector,
		encoding:     enc,
		showProgress: showProgress,
	}, nil
}

func LookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported input encoding %q: %w", name, err)
	}
	return enc, nil
}

func (s *sourceFileRepository) Open(ctx context.Context, path string) (*word_cloud_models.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.InputReadError{Path: path, Err: err}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.InputReadError{Path: path, Err: err}
	}

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		err = errors.New("input is a directory")
	}
	if err != nil {
		_ = file.Close()
		return nil, &domain.InputReadError{Path: path, Err: err}
	}

	source, err := s.load(file, filepath.Base(path), info.Size())
	if err != nil {
		_ = file.Close()
		return nil, &domain.InputReadError{Path: path, Err: err}
	}

	source.Closer = chainCloser(source.Closer, file)
	return source, nil
}

func (s *sourceFileRepository) Load(ctx context.Context, r io.ReadSeeker, label string) (*word_cloud_models.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.InputReadError{Path: label, Err: err}
	}

	source, err := s.load(r, label, -1)
	if err != nil {
		return nil, &domain.InputReadError{Path: label, Err: err}
	}
	return source, nil
}

func (s *sourceFileRepository) load(r io.ReadSeeker, label string, size int64) (*word_cloud_models.Source, error) {
	// 1. 读取文件头并识别类型
	header := make([]byte, domain_file_entity.HeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	kind := s.detector.DetectMediaType(header[:n])

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind input: %w", err)
	}

	// 2. 按类型构建文本流
	switch kind {
	case domain_file_entity.Audio:
		text, err := readAudioText(r)
		if err != nil {
			return nil, err
		}
		return &word_cloud_models.Source{
			Label:  label,
			Kind:   kind,
			Reader: strings.NewReader(text),
		}, nil

	case domain_file_entity.Text:
		var raw io.Reader = r
		var closer io.Closer
		if s.showProgress && size > 0 {
			bar := pb.New64(size).SetTemplate(pb.Full).Set(pb.Bytes, true).Start()
			raw = bar.NewProxyReader(r)
			closer = progressCloser{bar: bar}
		}
		return &word_cloud_models.Source{
			Label:  label,
			Kind:   kind,
			Reader: transform.NewReader(raw, unicode.BOMOverride(s.encoding.NewDecoder())),
			Closer: closer,
		}, nil

	default:
		return nil, fmt.Errorf("%w: detected %s content", domain.ErrUnsupportedInput, kind)
	}
}

// readAudioText 提取音频标签中的文本字段（标题、艺术家、歌词等）
func readAudioText(r io.ReadSeeker) (string, error) {
	metadata, err := tag.ReadFrom(r)
	if err != nil {
		return "", fmt.Errorf("failed to read audio tags: %w", err)
	}

	fields := []string{
		metadata.Title(),
		metadata.Artist(),
		metadata.Album(),
		metadata.AlbumArtist(),
		metadata.Composer(),
		metadata.Genre(),
		metadata.Comment(),
		metadata.Lyrics(),
	}

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, "\n"), nil
}

type progressCloser struct {
	bar *pb.ProgressBar
}

func (p progressCloser) Close() error {
	p.bar.Finish()
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func chainCloser(first, second io.Closer) io.Closer {
	if first == nil {
		return second
	}
	return closerFunc(func() error {
		return multierr.Append(first.Close(), second.Close())
	})
}
