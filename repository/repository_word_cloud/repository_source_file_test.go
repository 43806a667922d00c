package repository_word_cloud

import (
	"context"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_file_entity"
)

func newSourceRepo(t *testing.T, encodingName string) *sourceFileRepository {
	t.Helper()
	repo, err := NewSourceFileRepository(domain_file_entity.NewFileDetector(), encodingName, false)
	require.NoError(t, err)
	return repo.(*sourceFileRepository)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestSourceOpenPlainText(t *testing.T) {
	texts := map[string]string{
		"scenario": "the Quick, quick fox! fox fox.",
		"bmp-like": "BMW builds cars and BMW sells cars",
		"exe-like": "MZ is the code of the airport in the file",
		"id3-like": "ID3 tags are metadata stored in mp3 files",
	}

	repo := newSourceRepo(t, "")
	for name, text := range texts {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "speech.txt", []byte(text))

			source, err := repo.Open(context.Background(), path)
			require.NoError(t, err)
			defer source.Close()

			assert.Equal(t, "speech.txt", source.Label)
			assert.Equal(t, domain_file_entity.Text, source.Kind)
			assert.Equal(t, text, readAll(t, source))
		})
	}
}

func TestSourceOpenMissingFile(t *testing.T) {
	repo := newSourceRepo(t, "")

	_, err := repo.Open(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	var readErr *domain.InputReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSourceOpenDirectory(t *testing.T) {
	repo := newSourceRepo(t, "")

	_, err := repo.Open(context.Background(), t.TempDir())
	var readErr *domain.InputReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestSourceOpenRejectsBinary(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
	path := writeFile(t, "image.txt", png)
	repo := newSourceRepo(t, "")

	_, err := repo.Open(context.Background(), path)
	var readErr *domain.InputReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, domain.ErrUnsupportedInput)
}

func TestSourceOpenConfiguredEncoding(t *testing.T) {
	// windows-1252 的 0xA0 解码为不换行空格 U+00A0
	path := writeFile(t, "latin.txt", []byte("alpha\xA0beta"))

	source, err := newSourceRepo(t, "windows-1252").Open(context.Background(), path)
	require.NoError(t, err)
	defer source.Close()
	assert.Equal(t, "alpha\u00A0beta", readAll(t, source))

	// 默认 UTF-8 将非法字节替换为 U+FFFD
	source, err = newSourceRepo(t, "").Open(context.Background(), path)
	require.NoError(t, err)
	defer source.Close()
	assert.Equal(t, "alpha\uFFFDbeta", readAll(t, source))
}

func TestSourceOpenUTF16WithBOM(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := encoder.Bytes([]byte("alpha\u3000beta"))
	require.NoError(t, err)
	path := writeFile(t, "wide.txt", data)

	source, err := newSourceRepo(t, "").Open(context.Background(), path)
	require.NoError(t, err)
	defer source.Close()
	assert.Equal(t, "alpha\u3000beta", readAll(t, source))
}

func TestSourceUnknownEncoding(t *testing.T) {
	_, err := NewSourceFileRepository(domain_file_entity.NewFileDetector(), "klingon", false)
	assert.Error(t, err)
}

func TestSourceLoadReader(t *testing.T) {
	repo := newSourceRepo(t, "")

	source, err := repo.Load(context.Background(), strings.NewReader("upload body"), "upload.txt")
	require.NoError(t, err)
	assert.Equal(t, "upload.txt", source.Label)
	assert.Equal(t, "upload body", readAll(t, source))
	assert.NoError(t, source.Close())
}

func TestSourceLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSourceRepo(t, "").Load(ctx, strings.NewReader("x"), "x.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

// id3v2Title 构造只含 TIT2 帧的 ID3v2.3 标签
func id3v2Title(title string) []byte {
	payload := append([]byte{0x00}, title...)

	frame := []byte("TIT2")
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(payload)))
	frame = append(frame, size...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, payload...)

	n := len(frame)
	header := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(n >> 21 & 0x7F), byte(n >> 14 & 0x7F), byte(n >> 7 & 0x7F), byte(n & 0x7F)}
	return append(header, frame...)
}

func TestSourceOpenAudioTags(t *testing.T) {
	path := writeFile(t, "track.mp3", id3v2Title("Hello World Hello"))

	source, err := newSourceRepo(t, "").Open(context.Background(), path)
	require.NoError(t, err)
	defer source.Close()

	assert.Equal(t, domain_file_entity.Audio, source.Kind)
	assert.Equal(t, "Hello World Hello", readAll(t, source))
}
