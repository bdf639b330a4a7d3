package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	defaultContentType = "application/octet-stream"
	dataURLPrefix      = "data:"
)

// Record is the storage representation of a binary asset: metadata plus the
// payload as a base64 data URL. The Data field is self-describing and can be
// used directly as an image/object source.
type Record struct {
	Name     string `json:"name"`
	MimeType string `json:"type"`
	Size     int64  `json:"size"`
	Data     string `json:"data"`
}

// Encode reads the source fully and produces its storage record. Read
// failures surface as *ReadError.
func Encode(ctx context.Context, src Source) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if src == nil {
		return Record{}, &ReadError{Err: fmt.Errorf("source is nil")}
	}

	reader, err := src.Open()
	if err != nil {
		return Record{}, &ReadError{Name: src.Name(), Err: err}
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return Record{}, &ReadError{Name: src.Name(), Err: err}
	}

	contentType := src.ContentType()
	if contentType == "" {
		contentType = defaultContentType
	}

	return Record{
		Name:     src.Name(),
		MimeType: contentType,
		Size:     int64(len(data)),
		Data:     EncodeDataURL(contentType, data),
	}, nil
}

// EncodeAll encodes a batch of sources. Nil/empty input yields nil; any other
// input always yields a list, even for a single source. Sources are read
// concurrently but the result order matches the input order regardless of
// completion order.
func EncodeAll(ctx context.Context, sources []Source) ([]Record, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	records := make([]Record, len(sources))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		group.Go(func() error {
			record, err := Encode(groupCtx, src)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// EncodeDataURL builds the data-URL form of a payload. Zero-length payloads
// encode to a valid URL with an empty base64 section.
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = defaultContentType
	}
	return dataURLPrefix + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DisplayURL returns a reference suitable for displaying the record, e.g. as
// an image source. The stored encoding is already a data URL, so this is a
// documented pass-through, not a re-encoding.
func DisplayURL(record Record) string {
	return record.Data
}

// DecodeBytes reverses the data-URL encoding back to the original byte
// sequence. Corrupt input fails with *MalformedDataError. For any payload,
// DecodeBytes(EncodeDataURL(ct, b)) == b, including empty payloads and
// payloads whose length is not a multiple of the base64 block size.
func DecodeBytes(data string) ([]byte, error) {
	if !strings.HasPrefix(data, dataURLPrefix) {
		return nil, &MalformedDataError{Reason: "missing data URL prefix"}
	}
	comma := strings.IndexByte(data, ',')
	if comma < 0 {
		return nil, &MalformedDataError{Reason: "missing payload separator"}
	}
	header := data[len(dataURLPrefix):comma]
	if !strings.HasSuffix(header, ";base64") {
		return nil, &MalformedDataError{Reason: "unsupported encoding " + header}
	}

	decoded, err := base64.StdEncoding.DecodeString(data[comma+1:])
	if err != nil {
		return nil, &MalformedDataError{Reason: "invalid base64 payload", Err: err}
	}
	return decoded, nil
}

// DecodeRecord reverses a record's Data field back to raw bytes.
func DecodeRecord(record Record) ([]byte, error) {
	return DecodeBytes(record.Data)
}
