package assets

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// assetBearing lists the element types whose values hold binary assets and
// therefore need codec treatment on the way to storage. Additional types
// register here and nowhere else.
var assetBearing = map[schema.ElementType]struct{}{
	schema.ElementTypeFile:      {},
	schema.ElementTypeSignature: {},
}

// IsAssetBearing reports whether values of the given element type carry
// binary assets.
func IsAssetBearing(elementType schema.ElementType) bool {
	_, ok := assetBearing[elementType]
	return ok
}

// PrepareForStorage transforms a live value map into its storage-ready form:
// file-type fields have their sources encoded to records (in selection
// order), signature fields pass through because capture widgets already emit
// data URLs, and every other field is copied unchanged. The input map is
// never mutated; the result is a fresh map.
//
// This is the convergence point of the submission pipeline: the renderer
// emits live values, this function yields the persistable payload.
func PrepareForStorage(ctx context.Context, values map[string]any, elements []schema.FormElement) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}

	for _, element := range elements {
		if element.Type != schema.ElementTypeFile {
			continue
		}
		key := element.FieldKey()
		value, ok := values[key]
		if !ok || value == nil {
			continue
		}

		sources, err := coerceSources(value)
		if err != nil {
			return nil, fmt.Errorf("assets: prepare field %q: %w", key, err)
		}
		records, err := EncodeAll(ctx, sources)
		if err != nil {
			return nil, err
		}
		if records == nil {
			out[key] = nil
			continue
		}
		out[key] = records
	}

	return out, nil
}

// PrepareForDisplay transforms previously stored values into a map suitable
// for seeding a new render session. The stored representation already equals
// the live display representation for the current asset types, so today this
// only copies. It exists as the single seam where future asset formats get
// converted back.
func PrepareForDisplay(stored map[string]any, elements []schema.FormElement) map[string]any {
	if stored == nil {
		return nil
	}
	out := make(map[string]any, len(stored))
	for key, value := range stored {
		out[key] = value
	}
	return out
}

func coerceSources(value any) ([]Source, error) {
	switch typed := value.(type) {
	case Source:
		return []Source{typed}, nil
	case []Source:
		return typed, nil
	case []any:
		sources := make([]Source, 0, len(typed))
		for _, entry := range typed {
			src, ok := entry.(Source)
			if !ok {
				return nil, fmt.Errorf("unexpected value of type %T", entry)
			}
			sources = append(sources, src)
		}
		return sources, nil
	default:
		return nil, fmt.Errorf("unexpected value of type %T", value)
	}
}
