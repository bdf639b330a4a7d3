package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Sizes straddling the read-chunk and base64 block boundaries.
	sizes := []int{0, 1, 3, 511, 512, 513, 4096}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			payload := make([]byte, size)
			for i := range payload {
				payload[i] = byte(i % 251)
			}

			record, err := Encode(context.Background(), FromBytes("blob.bin", "application/octet-stream", payload))
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if record.Size != int64(size) {
				t.Fatalf("size = %d, want %d", record.Size, size)
			}

			decoded, err := DecodeRecord(record)
			if err != nil {
				t.Fatalf("DecodeRecord: %v", err)
			}
			if !bytes.Equal(payload, decoded) {
				t.Fatalf("payload mismatch after round trip (%d bytes)", size)
			}
		})
	}
}

func TestEncodeRecordShape(t *testing.T) {
	record, err := Encode(context.Background(), FromBytes("photo.png", "image/png", []byte{1, 2, 3}))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if record.Name != "photo.png" {
		t.Fatalf("name = %q, want photo.png", record.Name)
	}
	if record.MimeType != "image/png" {
		t.Fatalf("mime = %q, want image/png", record.MimeType)
	}
	wantPrefix := "data:image/png;base64,"
	if len(record.Data) <= len(wantPrefix) || record.Data[:len(wantPrefix)] != wantPrefix {
		t.Fatalf("data = %q, want prefix %q", record.Data, wantPrefix)
	}
}

func TestEncodeDefaultsContentType(t *testing.T) {
	record, err := Encode(context.Background(), FromBytes("mystery", "", []byte("x")))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if record.MimeType != "application/octet-stream" {
		t.Fatalf("mime = %q, want application/octet-stream", record.MimeType)
	}
}

func TestEncodeAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input yields nil", func(t *testing.T) {
		records, err := EncodeAll(ctx, nil)
		if err != nil {
			t.Fatalf("EncodeAll: %v", err)
		}
		if records != nil {
			t.Fatalf("records = %v, want nil", records)
		}
	})

	t.Run("single source yields list", func(t *testing.T) {
		records, err := EncodeAll(ctx, []Source{FromBytes("a.txt", "text/plain", []byte("a"))})
		if err != nil {
			t.Fatalf("EncodeAll: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("records = %d, want 1", len(records))
		}
	})

	t.Run("order matches input", func(t *testing.T) {
		sources := make([]Source, 8)
		for i := range sources {
			sources[i] = FromBytes(fmt.Sprintf("file-%d.txt", i), "text/plain", []byte{byte(i)})
		}

		records, err := EncodeAll(ctx, sources)
		if err != nil {
			t.Fatalf("EncodeAll: %v", err)
		}

		names := make([]string, len(records))
		for i, record := range records {
			names[i] = record.Name
		}
		want := []string{
			"file-0.txt", "file-1.txt", "file-2.txt", "file-3.txt",
			"file-4.txt", "file-5.txt", "file-6.txt", "file-7.txt",
		}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Fatalf("record order mismatch (-want +got):\n%s", diff)
		}

		// Each record must round-trip independently of its neighbors.
		for i, record := range records {
			decoded, err := DecodeRecord(record)
			if err != nil {
				t.Fatalf("DecodeRecord(%d): %v", i, err)
			}
			if !bytes.Equal(decoded, []byte{byte(i)}) {
				t.Fatalf("record %d payload mismatch", i)
			}
		}
	})
}

func TestDecodeBytesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no prefix", input: "image/png;base64,AAAA"},
		{name: "no separator", input: "data:image/png;base64"},
		{name: "unsupported encoding", input: "data:image/png;hex,deadbeef"},
		{name: "invalid base64", input: "data:image/png;base64,@@@@"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeBytes(tc.input)
			var malformed *MalformedDataError
			if !errors.As(err, &malformed) {
				t.Fatalf("DecodeBytes = %v, want *MalformedDataError", err)
			}
		})
	}
}

func TestDisplayURLIsPassThrough(t *testing.T) {
	record := Record{Data: "data:image/png;base64,AAAA"}
	if got := DisplayURL(record); got != record.Data {
		t.Fatalf("DisplayURL = %q, want %q", got, record.Data)
	}
}

func TestEncodeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Encode(ctx, FromBytes("a", "text/plain", []byte("a"))); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
