package repository_word_cloud

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
)

const pageFileMode = 0o644

type pageFileRepository struct{}

func NewPageFileRepository() word_cloud_interface.PageRepository {
	return &pageFileRepository{}
}

// Write renders into a temporary file next to path and renames it into place
// only after the content was flushed and the file closed.
func (p *pageFileRepository) Write(ctx context.Context, path string, render func(w io.Writer) error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &domain.OutputWriteError{Path: path, Err: ctxErr}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			log.Printf("failed to remove temporary page %s: %v", tmpPath, removeErr)
		}
		err = &domain.OutputWriteError{Path: path, Err: err}
	}()

	// 无论写入是否成功都要关闭文件
	err = multierr.Append(writePage(tmp, render), tmp.Close())
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, pageFileMode); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func writePage(w io.Writer, render func(w io.Writer) error) error {
	buf := bufio.NewWriter(w)
	if err := render(buf); err != nil {
		return err
	}
	return buf.Flush()
}
