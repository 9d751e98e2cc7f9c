package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the time unit a key rule assigns to matched values.
type Unit string

const (
	Milliseconds Unit = "ms"
	Seconds      Unit = "s"
	Minutes      Unit = "m"
	Hours        Unit = "h"
)

// Rule binds a key-name pattern to the unit its values are measured in.
// Rules are evaluated in order and the first match wins for a given leaf,
// so new report schemas are supported by appending rules rather than by
// branching inside the walk.
type Rule struct {
	Pattern *regexp.Regexp
	Unit    Unit
}

// DefaultRules covers the key spellings observed across report schema
// variants: the long "total ... worked/tracked ... <unit>" forms first,
// then the shorter "worked/tracked <unit>" forms.
var DefaultRules = []Rule{
	{Pattern: regexp.MustCompile(`(?i)total.*(work|track).*(millisecond|ms)`), Unit: Milliseconds},
	{Pattern: regexp.MustCompile(`(?i)total.*(work|track).*(second|sec)`), Unit: Seconds},
	{Pattern: regexp.MustCompile(`(?i)total.*(work|track).*(minute|min)`), Unit: Minutes},
	{Pattern: regexp.MustCompile(`(?i)total.*(work|track).*(hour|hr)`), Unit: Hours},
	{Pattern: regexp.MustCompile(`(?i)(worked|tracked).*milliseconds?`), Unit: Milliseconds},
	{Pattern: regexp.MustCompile(`(?i)(worked|tracked).*seconds?`), Unit: Seconds},
	{Pattern: regexp.MustCompile(`(?i)(worked|tracked).*minutes?`), Unit: Minutes},
	{Pattern: regexp.MustCompile(`(?i)(worked|tracked).*hours?`), Unit: Hours},
}

// ToMilliseconds converts a value expressed in unit to milliseconds.
func ToMilliseconds(value float64, unit Unit) float64 {
	switch unit {
	case Milliseconds:
		return value
	case Seconds:
		return value * 1000
	case Minutes:
		return value * 60 * 1000
	case Hours:
		return value * 60 * 60 * 1000
	default:
		return 0
	}
}

// Extractor scans arbitrarily-shaped report payloads for the largest
// plausible "total time worked" reading. The report endpoint's schema is not
// contractually fixed, so the extractor is heuristic by design.
type Extractor struct {
	rules []Rule
}

// NewExtractor builds an extractor over the given rule list; with no rules
// it uses DefaultRules.
func NewExtractor(rules ...Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Extractor{rules: rules}
}

// Extract returns the best-effort total worked duration in milliseconds.
// It never fails; a payload with no recognizable signal yields 0.
func (e *Extractor) Extract(payload any) float64 {
	return e.walk(payload, "", 0)
}

func (e *Extractor) walk(value any, key string, best float64) float64 {
	switch v := value.(type) {
	case nil:
		return best
	case float64, int, int64:
		n := asFloat(v)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return best
		}
		if unit, ok := e.match(key); ok {
			return math.Max(best, ToMilliseconds(n, unit))
		}
		return best
	case string:
		if unit, ok := e.match(key); ok {
			if n, ok := leadingFloat(v); ok {
				return math.Max(best, ToMilliseconds(n, unit))
			}
		}
		if ms, ok := Parse(v); ok {
			return math.Max(best, ms)
		}
		return best
	case []any:
		for _, item := range v {
			best = e.walk(item, key, best)
		}
		return best
	case map[string]any:
		for k, nested := range v {
			best = e.walk(nested, k, best)
		}
		return best
	default:
		return best
	}
}

// match returns the unit of the first rule whose pattern matches the key.
func (e *Extractor) match(key string) (Unit, bool) {
	if key == "" {
		return "", false
	}
	for _, r := range e.rules {
		if r.Pattern.MatchString(key) {
			return r.Unit, true
		}
	}
	return "", false
}

var leadingFloatPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// leadingFloat reads a number from the start of s, tolerating trailing text
// like "7.5 hrs". Requiring a digit prefix keeps strconv's "NaN" and "Inf"
// spellings out of the running maximum; the extracted value must be finite.
func leadingFloat(s string) (float64, bool) {
	m := leadingFloatPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return math.NaN()
}
