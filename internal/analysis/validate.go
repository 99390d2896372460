package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

var validate = validator.New()

// Enumeration tags checked with validate.Var.
const (
	contextTag    = "omitempty,oneof=document presentation reference"
	importanceTag = "omitempty,oneof=high medium low"
)

// ParseInput validates raw decoded JSON and returns the typed Input. The
// first violation found is returned as an *InputError; no partial result
// is ever produced.
func ParseInput(raw any) (*Input, error) {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return nil, inputErrorf("Input must be a JSON object")
	}

	rawItems, hasItems := present(obj, "items")
	rawSections, hasSections := present(obj, "sections")

	switch {
	case hasItems && hasSections:
		return nil, inputErrorf("Cannot use both `items` and `sections`; provide one or the other")
	case !hasItems && !hasSections:
		return nil, inputErrorf("Input must include either `items` or `sections`")
	}

	in := &Input{Context: ContextDocument}

	if hasItems {
		items, err := parseItemList(rawItems, "items")
		if err != nil {
			return nil, err
		}
		in.Items = items
	} else {
		sections, err := parseSections(rawSections)
		if err != nil {
			return nil, err
		}
		in.Sections = sections
	}

	ctx, err := parseContext(obj["context"], "context")
	if err != nil {
		return nil, err
	}
	if ctx != "" {
		in.Context = ctx
	}

	return in, nil
}

// ParseInputJSON decodes data and validates it with ParseInput.
func ParseInputJSON(data []byte) (*Input, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, inputErrorf("Input is not valid JSON: %v", err)
	}
	return ParseInput(raw)
}

// present reports whether key exists with a non-null value.
func present(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func parseSections(raw any) ([]Section, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, inputErrorf("`sections` must be an array")
	}
	if len(list) == 0 {
		return nil, inputErrorf("`sections` must contain at least one section")
	}

	sections := make([]Section, 0, len(list))
	for i, rs := range list {
		path := fmt.Sprintf("sections[%d]", i)

		obj, ok := rs.(map[string]any)
		if !ok {
			return nil, inputErrorf("%s must be an object", path)
		}

		title, _ := obj["title"].(string)
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, inputErrorf("%s must have a non-empty `title`", path)
		}

		rawItems, ok := present(obj, "items")
		if !ok {
			return nil, inputErrorf("%s (%q) must have a non-empty `items` array", path, title)
		}
		if l, isList := rawItems.([]any); isList && len(l) == 0 {
			return nil, inputErrorf("%s (%q) must have a non-empty `items` array", path, title)
		}
		items, err := parseItemList(rawItems, path+".items")
		if err != nil {
			return nil, err
		}

		ctx, err := parseContext(obj["context"], path+".context")
		if err != nil {
			return nil, err
		}

		sections = append(sections, Section{Title: title, Items: items, Context: ctx})
	}
	return sections, nil
}

// parseItemList validates a non-empty array of items at path.
func parseItemList(raw any, path string) ([]Item, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, inputErrorf("`%s` must be an array", path)
	}
	if len(list) == 0 {
		return nil, inputErrorf("`%s` must contain at least one bullet", path)
	}
	return parseItems(list, path)
}

func parseItems(list []any, path string) ([]Item, error) {
	items := make([]Item, 0, len(list))
	for i, ri := range list {
		item, err := parseItem(ri, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseItem validates one node recursively. A bare string is shorthand
// for {"text": s}.
func parseItem(raw any, path string) (Item, error) {
	if s, ok := raw.(string); ok {
		text := normalizeText(s)
		if text == "" {
			return Item{}, inputErrorf("%s must have non-empty text", path)
		}
		return Item{Text: text}, nil
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return Item{}, inputErrorf("%s must be an object with a `text` field", path)
	}

	s, _ := obj["text"].(string)
	text := normalizeText(s)
	if text == "" {
		return Item{}, inputErrorf("%s must have non-empty text", path)
	}
	item := Item{Text: text}

	if rawChildren, ok := present(obj, "children"); ok {
		list, isList := rawChildren.([]any)
		if !isList {
			return Item{}, inputErrorf("%s.children must be an array", path)
		}
		children, err := parseItems(list, path+".children")
		if err != nil {
			return Item{}, err
		}
		if len(children) > 0 {
			item.Children = children
		}
	}

	if rawImportance, ok := present(obj, "importance"); ok {
		imp, isString := rawImportance.(string)
		if !isString || validate.Var(imp, importanceTag) != nil {
			return Item{}, inputErrorf("%s.importance must be one of high, medium, low (got %v)", path, rawImportance)
		}
		item.Importance = Importance(imp)
	}

	return item, nil
}

// parseContext returns "" when raw is absent so callers can apply their
// own default.
func parseContext(raw any, path string) (Context, error) {
	if raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok || validate.Var(s, contextTag) != nil {
		return "", inputErrorf("`%s` must be one of document, presentation, reference (got %v)", path, raw)
	}
	return Context(s), nil
}

// normalizeText trims surrounding whitespace and composes Unicode so that
// visually identical strings measure the same length.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
