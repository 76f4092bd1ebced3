package etl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/EdmundsEcho/data-join-ui-sub004/utils"
)

// --- Level YAML methods ---

// UnmarshalYAML decodes a level from a [value, count] pair.
// The value may be any scalar; it is kept as written.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return errors.New("expected level as [value, count]")
	}

	valueNode, countNode := utils.Unpack2(node.Content)
	if valueNode.Kind != yaml.ScalarNode {
		return fmt.Errorf("level value must be a scalar, got %v", valueNode.Kind)
	}

	var count int

	err := countNode.Decode(&count)
	if err != nil {
		return fmt.Errorf("invalid count for level %q: %w", valueNode.Value, err)
	}

	*l = Level{Value: valueNode.Value, Count: count}

	return nil
}

// MarshalYAML encodes a level as a [value, count] pair.
func (l Level) MarshalYAML() (any, error) {
	return []any{l.Value, l.Count}, nil
}

// --- Level JSON methods ---

// UnmarshalJSON decodes a level from a [value, count] pair.
func (l *Level) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage

	err := json.Unmarshal(data, &pair)
	if err != nil {
		return err
	}

	if len(pair) != 2 {
		return errors.New("expected level as [value, count]")
	}

	rawValue, rawCount := utils.Unpack2(pair)

	var value any
	if err := json.Unmarshal(rawValue, &value); err != nil {
		return err
	}

	var count int
	if err := json.Unmarshal(rawCount, &count); err != nil {
		return fmt.Errorf("invalid count for level %s: %w", rawValue, err)
	}

	*l = Level{Value: scalarString(value), Count: count}

	return nil
}

// MarshalJSON encodes a level as a [value, count] pair.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{l.Value, l.Count})
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// --- Enabled defaults ---

// UnmarshalYAML decodes a source; a field without an explicit enabled flag
// is enabled.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	type plain Source

	decoded := plain{Enabled: true}
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	*s = Source(decoded)

	return nil
}

// UnmarshalYAML decodes a header view; a file without an explicit enabled
// flag is enabled.
func (hv *HeaderView) UnmarshalYAML(node *yaml.Node) error {
	type plain HeaderView

	decoded := plain{Enabled: true}
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	*hv = HeaderView(decoded)

	return nil
}
