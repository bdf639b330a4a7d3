package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// ErrUnknownRule is returned when an element enables a rule name that has no
// registered evaluator. Unknown rules fail loudly instead of being skipped so
// a typo in a schema cannot silently disable a check.
var ErrUnknownRule = errors.New("validation: unknown rule")

// RuleFunc evaluates one rule against a field value. A nil return means the
// value passes; any error is surfaced as the field's message.
type RuleFunc func(value any, param any) error

// Rules maps rule names onto their evaluators. The set is closed at wiring
// time: dispatch happens by name and unregistered names are an error.
type Rules struct {
	evaluators map[string]RuleFunc
}

// DefaultRules returns the builtin evaluator set: required, email,
// minLength/maxLength, min/max, and pattern.
func DefaultRules() *Rules {
	r := &Rules{evaluators: make(map[string]RuleFunc)}
	r.Register(schema.RuleRequired, evaluateRequired)
	r.Register(schema.RuleEmail, evaluateEmail)
	r.Register(schema.RuleMinLength, evaluateMinLength)
	r.Register(schema.RuleMaxLength, evaluateMaxLength)
	r.Register(schema.RuleMin, evaluateMin)
	r.Register(schema.RuleMax, evaluateMax)
	r.Register(schema.RulePattern, evaluatePattern)
	return r
}

// Register adds or replaces an evaluator for a rule name.
func (r *Rules) Register(name string, fn RuleFunc) {
	if r == nil || fn == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	if r.evaluators == nil {
		r.evaluators = make(map[string]RuleFunc)
	}
	r.evaluators[trimmed] = fn
}

// Evaluate runs every enabled rule on the element against the value and
// returns the failure messages in deterministic (sorted rule name) order.
// Length rules are skipped for empty optional values: an empty field only
// fails when required is enabled too.
func (r *Rules) Evaluate(element schema.FormElement, value any) ([]string, error) {
	if r == nil || len(element.ValidationRules) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(element.ValidationRules))
	for name, state := range element.ValidationRules {
		if state.Enabled {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	requiredEnabled := element.ValidationRules[schema.RuleRequired].Enabled

	var messages []string
	for _, name := range names {
		fn, ok := r.evaluators[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		if name != schema.RuleRequired && isEmptyValue(value) && !requiredEnabled {
			continue
		}
		if err := fn(value, element.ValidationRules[name].Value); err != nil {
			messages = append(messages, err.Error())
		}
	}
	return messages, nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func evaluateRequired(value any, _ any) error {
	if isEmptyValue(value) {
		return errors.New("this field is required")
	}
	return nil
}

func evaluateEmail(value any, _ any) error {
	text, ok := value.(string)
	if !ok || text == "" {
		return nil
	}
	if !emailPattern.MatchString(text) {
		return errors.New("must be a valid email address")
	}
	return nil
}

func evaluateMinLength(value any, param any) error {
	limit, ok := intParam(param)
	if !ok {
		return nil
	}
	if text, isString := value.(string); isString && len([]rune(text)) < limit {
		return fmt.Errorf("must be at least %d characters", limit)
	}
	return nil
}

func evaluateMaxLength(value any, param any) error {
	limit, ok := intParam(param)
	if !ok {
		return nil
	}
	if text, isString := value.(string); isString && len([]rune(text)) > limit {
		return fmt.Errorf("must be at most %d characters", limit)
	}
	return nil
}

func evaluateMin(value any, param any) error {
	bound, ok := floatParam(param)
	if !ok {
		return nil
	}
	number, ok := floatValue(value)
	if !ok {
		return nil
	}
	if number < bound {
		return fmt.Errorf("must be at least %v", param)
	}
	return nil
}

func evaluateMax(value any, param any) error {
	bound, ok := floatParam(param)
	if !ok {
		return nil
	}
	number, ok := floatValue(value)
	if !ok {
		return nil
	}
	if number > bound {
		return fmt.Errorf("must be at most %v", param)
	}
	return nil
}

func evaluatePattern(value any, param any) error {
	expr, ok := param.(string)
	if !ok || expr == "" {
		return nil
	}
	text, ok := value.(string)
	if !ok || text == "" {
		return nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("invalid pattern %q", expr)
	}
	if !re.MatchString(text) {
		return errors.New("does not match the required pattern")
	}
	return nil
}

func isEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case bool:
		// An unchecked required checkbox is a missing value.
		return !typed
	case []any:
		return len(typed) == 0
	case []string:
		return len(typed) == 0
	default:
		// Asset lists arrive as typed slices (e.g. []assets.Source).
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
			return rv.Len() == 0
		}
		return false
	}
}

func intParam(param any) (int, bool) {
	switch typed := param.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		return int(typed), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		return parsed, err == nil
	default:
		return 0, false
	}
}

func floatParam(param any) (float64, bool) {
	switch typed := param.(type) {
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case float64:
		return typed, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func floatValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case float64:
		return typed, true
	case string:
		if typed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
