package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-formkit/pkg/assets"
	"github.com/goliatone/go-formkit/pkg/elements"
	"github.com/goliatone/go-formkit/pkg/renderer"
)

// Option configures the toolkit.
type Option func(*Toolkit)

// WithPromptDriver overrides the prompt driver. Tests inject a scripted fake.
func WithPromptDriver(driver PromptDriver) Option {
	return func(t *Toolkit) {
		if driver != nil {
			t.driver = driver
		}
	}
}

// Toolkit implements the renderer widget-toolkit boundary on top of terminal
// prompts. Controls are created per element in schema order; Fill walks them
// sequentially, feeding answers into the session and re-prompting rejected
// fields until the submission passes or the user aborts.
type Toolkit struct {
	driver   PromptDriver
	controls []*promptControl
}

// New constructs a toolkit with the survey-backed driver.
func New(options ...Option) *Toolkit {
	t := &Toolkit{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Instantiate satisfies renderer.Toolkit. The returned control keeps the
// prompt configuration so Fill can ask for the value later; widget change
// events flow through emit into the session.
func (t *Toolkit) Instantiate(kind string, props map[string]any, initial any, emit func(value any)) (renderer.Control, error) {
	control := &promptControl{
		kind:    kind,
		props:   props,
		value:   initial,
		emit:    emit,
		toolkit: t,
	}
	t.controls = append(t.controls, control)
	return control, nil
}

// Fill prompts for every control in schema order, then submits. Fields
// rejected by validation are re-prompted with their message until the
// submission is valid. The valid outcome's live values are returned.
func (t *Toolkit) Fill(ctx context.Context, session *renderer.Session) (map[string]any, error) {
	for _, control := range t.controls {
		if err := control.ask(ctx); err != nil {
			return nil, err
		}
	}

	for {
		outcome, err := session.Submit()
		if err != nil {
			return nil, err
		}
		if outcome.Valid {
			return outcome.Values, nil
		}

		for _, control := range t.controls {
			if control.lastError == "" {
				continue
			}
			_ = t.driver.Info(ctx, fmt.Sprintf("✗ %s: %s", control.label(), control.lastError))
			if err := control.ask(ctx); err != nil {
				return nil, err
			}
		}
	}
}

type promptControl struct {
	kind      string
	props     map[string]any
	value     any
	emit      func(any)
	toolkit   *Toolkit
	lastError string
}

// ShowError implements renderer.Control; the message is replayed before the
// field's next prompt.
func (c *promptControl) ShowError(message string) {
	c.lastError = message
}

// ClearError implements renderer.Control.
func (c *promptControl) ClearError() {
	c.lastError = ""
}

func (c *promptControl) label() string {
	if label := stringProp(c.props, "label"); label != "" {
		return label
	}
	return c.kind
}

func (c *promptControl) help() string {
	return stringProp(c.props, "helpText")
}

func (c *promptControl) ask(ctx context.Context) error {
	driver := c.toolkit.driver

	switch c.kind {
	case elements.ComponentTextField, elements.ComponentDatePicker:
		cfg := InputConfig{
			Message: c.label(),
			Default: stringValue(c.value),
			Help:    c.help(),
		}
		if c.kind == elements.ComponentDatePicker && cfg.Help == "" {
			cfg.Help = "YYYY-MM-DD"
		}
		response, err := driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		c.set(response)
		return nil

	case elements.ComponentTextarea:
		response, err := driver.TextArea(ctx, TextAreaConfig{
			Message: c.label(),
			Default: stringValue(c.value),
			Help:    c.help(),
		})
		if err != nil {
			return err
		}
		c.set(response)
		return nil

	case elements.ComponentNumberField:
		for {
			response, err := driver.Input(ctx, InputConfig{
				Message: c.label(),
				Default: stringValue(c.value),
				Help:    c.help(),
			})
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(response)
			if trimmed == "" {
				c.set(nil)
				return nil
			}
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				_ = driver.Info(ctx, fmt.Sprintf("Invalid number %q", trimmed))
				continue
			}
			c.set(parsed)
			return nil
		}

	case elements.ComponentCheckbox:
		current, _ := c.value.(bool)
		response, err := driver.Confirm(ctx, ConfirmConfig{
			Message: c.label(),
			Default: current,
			Help:    c.help(),
		})
		if err != nil {
			return err
		}
		c.set(response)
		return nil

	case elements.ComponentSelect, elements.ComponentRadioGroup:
		options := optionsProp(c.props)
		if len(options) == 0 {
			return fmt.Errorf("tui: %s %q has no options", c.kind, c.label())
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      c.label(),
			Options:      options,
			DefaultIndex: indexOf(options, stringValue(c.value)),
			Help:         c.help(),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(options) {
			c.set(options[idx])
		}
		return nil

	case elements.ComponentFileInput:
		response, err := driver.Input(ctx, InputConfig{
			Message: c.label(),
			Help:    "comma-separated file paths; empty to skip",
		})
		if err != nil {
			return err
		}
		paths := splitPaths(response)
		if len(paths) == 0 {
			c.set(nil)
			return nil
		}
		sources := make([]assets.Source, 0, len(paths))
		for _, path := range paths {
			sources = append(sources, assets.FromFile(path))
		}
		c.set(sources)
		return nil

	case elements.ComponentSignaturePad:
		// Signature capture falls back to an image file; the live value is a
		// data URL either way.
		response, err := driver.Input(ctx, InputConfig{
			Message: c.label(),
			Help:    "path to a signature image; empty to skip",
		})
		if err != nil {
			return err
		}
		path := strings.TrimSpace(response)
		if path == "" {
			c.set("")
			return nil
		}
		record, err := assets.Encode(ctx, assets.FromFile(path))
		if err != nil {
			_ = driver.Info(ctx, fmt.Sprintf("Cannot read %q: %v", path, err))
			c.set("")
			return nil
		}
		c.set(record.Data)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedComponent, c.kind)
	}
}

func (c *promptControl) set(value any) {
	c.value = value
	if c.emit != nil {
		c.emit(value)
	}
}

func stringProp(props map[string]any, key string) string {
	if props == nil {
		return ""
	}
	if value, ok := props[key].(string); ok {
		return value
	}
	return ""
}

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

func optionsProp(props map[string]any) []string {
	if props == nil {
		return nil
	}
	switch typed := props["options"].(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, option := range typed {
			out = append(out, fmt.Sprint(option))
		}
		return out
	default:
		return nil
	}
}

func splitPaths(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if expanded, err := expandHome(trimmed); err == nil {
			trimmed = expanded
		}
		out = append(out, trimmed)
	}
	return out
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path, err
	}
	return home + path[1:], nil
}
