package dt

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tychoish/chain/ers"
)

// MarshalJSON produces a JSON array representing the items in the
// list. By supporting json.Marshaler and json.Unmarshaler, lists can
// behave as arrays in larger json objects, and can be the
// output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) { return json.Marshal(l.Slice()) }

// UnmarshalJSON reads a JSON array and appends its values to the
// list. If there are elements in the list, they are not removed. The
// list is not modified when the input cannot be decoded.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	var items []T
	if err := json.Unmarshal(in, &items); err != nil {
		return ers.Wrap(ers.Join(ErrInvalidConstruction, err), "decoding json list")
	}

	l.Append(items...)
	return nil
}

// MarshalYAML produces a YAML sequence representing the items in the
// list, for use with gopkg.in/yaml.v3.
func (l *List[T]) MarshalYAML() (any, error) { return l.Slice(), nil }

// UnmarshalYAML reads a YAML sequence and appends its values to the
// list, with the same semantics as UnmarshalJSON.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return ers.Wrapf(ErrInvalidConstruction, "decoding yaml list from line %d", value.Line)
	}

	var items []T
	if err := value.Decode(&items); err != nil {
		return ers.Wrap(ers.Join(ErrInvalidConstruction, err), "decoding yaml list")
	}

	l.Append(items...)
	return nil
}
