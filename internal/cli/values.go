package cli

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tychoish/chain/dt"
	"github.com/tychoish/chain/ers"
)

// readList decodes a YAML (or JSON, which YAML accepts) array of
// scalars. An empty document produces an empty list.
func readList(r io.Reader) (*dt.List[any], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	out := &dt.List[any]{}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, err
	}

	for idx, item := range out.All() {
		if err := checkScalar(item); err != nil {
			return nil, fmt.Errorf("element %d, %w", idx, err)
		}
	}

	return out, nil
}

func readListFile(path string, stdin io.Reader) (*dt.List[any], error) {
	if path == "-" {
		return readList(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readList(f)
}

// parseValue decodes a command line argument as a YAML scalar, so
// that "3" is an int, "true" a bool, and "a" a string.
func parseValue(in string) (any, error) {
	var out any
	if err := yaml.Unmarshal([]byte(in), &out); err != nil {
		return nil, ers.Wrapf(ers.Join(ers.ErrInvalidInput, err), "value %q", in)
	}

	if err := checkScalar(out); err != nil {
		return nil, err
	}

	return out, nil
}

func parseIndex(in string) (int, error) {
	idx, err := strconv.Atoi(in)
	if err != nil {
		return 0, ers.Wrapf(ers.Join(ers.ErrInvalidInput, err), "index %q", in)
	}
	return idx, nil
}

func isSpan(in string) bool { return strings.Contains(in, ":") }

// checkScalar rejects values that cannot be compared for equality,
// such as maps and sequences.
func checkScalar(in any) error {
	if in == nil || reflect.TypeOf(in).Comparable() {
		return nil
	}

	return ers.Wrapf(ers.Join(dt.ErrInvalidConstruction, ers.ErrInvalidRuntimeType), "%T is not a comparable scalar", in)
}
