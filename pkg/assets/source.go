package assets

import (
	"bytes"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// Source is a binary asset handle: something with a name, a content type, and
// bytes behind it. Upload widgets hand sources to the codec; the codec reads
// them fully when encoding.
type Source interface {
	Name() string
	ContentType() string
	Open() (io.ReadCloser, error)
}

type bytesSource struct {
	name        string
	contentType string
	data        []byte
}

func (s bytesSource) Name() string {
	return s.name
}

func (s bytesSource) ContentType() string {
	return s.contentType
}

func (s bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// FromBytes wraps an in-memory payload as a Source. The payload is copied so
// the caller can reuse its buffer.
func FromBytes(name, contentType string, data []byte) Source {
	if contentType == "" {
		contentType = defaultContentType
	}
	return bytesSource{
		name:        name,
		contentType: contentType,
		data:        append([]byte(nil), data...),
	}
}

type fileSource struct {
	path string
}

func (s fileSource) Name() string {
	return filepath.Base(s.path)
}

func (s fileSource) ContentType() string {
	if ct := mime.TypeByExtension(filepath.Ext(s.path)); ct != "" {
		return ct
	}
	return defaultContentType
}

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

// FromFile wraps an on-disk file as a Source. The content type derives from
// the file extension; unknown extensions fall back to octet-stream.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}
