package domain_file_entity

import (
	"bytes"
	"unicode/utf8"

	"github.com/h2non/filetype"
)

type FileTypeNo int

const (
	Audio FileTypeNo = iota + 1
	Video
	Image
	Text
	Document
	Archive
	Executable
	Font
	Unknown
)

func (t FileTypeNo) String() string {
	switch t {
	case Audio:
		return "audio"
	case Video:
		return "video"
	case Image:
		return "image"
	case Text:
		return "text"
	case Document:
		return "document"
	case Archive:
		return "archive"
	case Executable:
		return "executable"
	case Font:
		return "font"
	default:
		return "unknown"
	}
}

// HeaderSize 内容嗅探所需的文件头长度
const HeaderSize = 262

type FileDetector interface {
	DetectMediaType(header []byte) FileTypeNo
}

type FileDetectorImpl struct{}

func NewFileDetector() FileDetector {
	return &FileDetectorImpl{}
}

// DetectMediaType 按文件头魔数识别类型，无法识别的内容视为文本。
// 文件头本身像文本时不信任魔数匹配（"BMW ..."、"MZ ..."、"ID3 ..."）。
func (fd *FileDetectorImpl) DetectMediaType(header []byte) FileTypeNo {
	if len(header) == 0 || looksLikeText(header) {
		return Text
	}

	switch {
	case filetype.IsAudio(header):
		return Audio
	case filetype.IsVideo(header):
		return Video
	case filetype.IsImage(header):
		return Image
	case filetype.IsFont(header):
		return Font
	case filetype.IsDocument(header):
		return Document
	case filetype.IsArchive(header):
		return Archive
	case filetype.IsApplication(header), fd.isExecutable(header):
		return Executable
	}
	return Text
}

// 可执行文件检测
func (fd *FileDetectorImpl) isExecutable(buf []byte) bool {
	// PE文件签名（Windows）
	if len(buf) > 40 && bytes.Equal(buf[:2], []byte{0x4D, 0x5A}) {
		return true
	}
	// ELF文件签名（Linux）
	if len(buf) > 4 && bytes.Equal(buf[:4], []byte{0x7F, 0x45, 0x4C, 0x46}) {
		return true
	}
	// Mach-O签名（macOS）
	if len(buf) > 4 && bytes.Equal(buf[:4], []byte{0xFE, 0xED, 0xFA, 0xCF}) {
		return true
	}
	return false
}

var textBOMs = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// looksLikeText reports whether header starts with a BOM, or is valid UTF-8
// free of NUL and control bytes other than \t \n \v \f \r.
func looksLikeText(header []byte) bool {
	for _, bom := range textBOMs {
		if bytes.HasPrefix(header, bom) {
			return true
		}
	}

	for i := 0; i < len(header); {
		b := header[i]
		if b < utf8.RuneSelf {
			if (b < 0x20 && (b < '\t' || b > '\r')) || b == 0x7F {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(header[i:])
		if r == utf8.RuneError && size == 1 {
			// 文件头截断在多字节字符中间
			return !utf8.FullRune(header[i:])
		}
		i += size
	}
	return true
}
