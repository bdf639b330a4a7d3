package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formkit/pkg/assets"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/renderer"
	"github.com/goliatone/go-formkit/pkg/renderers/html"
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/toolkits/tui"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema path (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to import a schema from")
	operation := flag.String("operation", "", "operation ID to import (with -openapi)")
	fill := flag.Bool("fill", false, "fill the form interactively and print the submission")
	preview := flag.Bool("preview", false, "print an HTML preview of the form")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	form, err := loadSchema(ctx, *schemaPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	var out []byte
	switch {
	case *fill:
		out, err = fillForm(ctx, form)
	case *preview:
		out, err = previewForm(ctx, form)
	default:
		out, err = form.MarshalJSONDocument()
	}
	if err != nil {
		log.Fatalf("Failed: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func loadSchema(ctx context.Context, schemaPath, openapiPath, operation string) (schema.FormSchema, error) {
	switch {
	case schemaPath != "":
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return schema.ParseDocument(data)
	case openapiPath != "":
		if operation == "" {
			return schema.FormSchema{}, fmt.Errorf("-operation is required with -openapi")
		}
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return openapi.New().Import(ctx, data, operation)
	default:
		return schema.FormSchema{}, fmt.Errorf("provide -schema or -openapi")
	}
}

// fillForm walks the form in the terminal and prints the storage-ready
// submission values as JSON.
func fillForm(ctx context.Context, form schema.FormSchema) ([]byte, error) {
	toolkit := tui.New()
	session, err := renderer.New(form, renderer.WithToolkit(toolkit))
	if err != nil {
		return nil, err
	}

	values, err := toolkit.Fill(ctx, session)
	if err != nil {
		return nil, err
	}

	stored, err := assets.PrepareForStorage(ctx, values, form.Elements)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(stored, "", "  ")
}

func previewForm(ctx context.Context, form schema.FormSchema) ([]byte, error) {
	rend, err := html.New()
	if err != nil {
		return nil, err
	}
	markup, err := rend.Render(ctx, form, nil)
	if err != nil {
		return nil, err
	}
	return []byte(markup), nil
}
