package cli

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/chain/dt"
	"github.com/tychoish/chain/ers"
	"github.com/tychoish/chain/testt"
)

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(testt.Context(t), args, strings.NewReader(input), &stdout, &stderr)
	t.Cleanup(func() { testt.Logf(t, "chain %v logged:\n%s", args, stderr.String()) })
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		args     []string
		expected string
	}{
		{name: "Show", input: "[1, 2, 3]", args: []string{"show"}, expected: ">1, 2, 3<\n"},
		{name: "ShowEmpty", input: "", args: []string{"show"}, expected: "><\n"},
		{name: "ShowMixed", input: "[1, a, true, 1.5, null]", args: []string{"show"}, expected: ">1, a, true, 1.5, <nil><\n"},
		{name: "Len", input: "[1, 2, 3]", args: []string{"len"}, expected: "3\n"},
		{name: "Get", input: "[1, 2, 3]", args: []string{"get", "1"}, expected: "2\n"},
		{name: "GetNegative", input: "[1, 2, 3]", args: []string{"get", "--", "-1"}, expected: "3\n"},
		{name: "Set", input: "[1, 2, 3]", args: []string{"set", "0", "9"}, expected: ">9, 2, 3<\n"},
		{name: "Slice", input: "[1, 2, 3, 4, 5]", args: []string{"slice", "1:4"}, expected: ">2, 3, 4<\n"},
		{name: "SliceStep", input: "[1, 2, 3, 4, 5]", args: []string{"slice", "::2"}, expected: ">1, 3, 5<\n"},
		{name: "SliceNegative", input: "[1, 2, 3, 4, 5]", args: []string{"slice", "--", "-2:"}, expected: ">4, 5<\n"},
		{name: "Delete", input: "[1, 2, 3]", args: []string{"delete", "0"}, expected: ">2, 3<\n"},
		{name: "DeleteSpan", input: "[1, 2, 3, 4, 5, 6, 7]", args: []string{"delete", "::3"}, expected: ">2, 3, 5, 6<\n"},
		{name: "Insert", input: "[1, 2, 3]", args: []string{"insert", "1", "x"}, expected: ">1, x, 2, 3<\n"},
		{name: "InsertPastEnd", input: "[1, 2, 3]", args: []string{"insert", "100", "4"}, expected: ">1, 2, 3, 4<\n"},
		{name: "PushFront", input: "[1, 2]", args: []string{"push-front", "0"}, expected: ">0, 1, 2<\n"},
		{name: "PushBack", input: "[1, 2]", args: []string{"push-back", "3"}, expected: ">1, 2, 3<\n"},
		{name: "Pop", input: "[1, 2, 3]", args: []string{"pop"}, expected: "3\n"},
		{name: "PopAt", input: "[1, 2, 3]", args: []string{"pop", "0"}, expected: "1\n"},
		{name: "Remove", input: "[1, 2, 3, 2]", args: []string{"remove", "2"}, expected: ">1, 3, 2<\n"},
		{name: "Count", input: "[1, 1, 2]", args: []string{"count", "1"}, expected: "2\n"},
		{name: "CountTyped", input: "[1, \"1\", 1]", args: []string{"count", "'1'"}, expected: "1\n"},
		{name: "Index", input: "[a, b, c]", args: []string{"index", "c"}, expected: "2\n"},
		{name: "Contains", input: "[1, 2, 3]", args: []string{"contains", "4"}, expected: "false\n"},
		{name: "Reverse", input: "[1, 2, 3]", args: []string{"reverse"}, expected: ">3, 2, 1<\n"},
		{name: "Copy", input: "[1, 2, 3]", args: []string{"copy"}, expected: ">1, 2, 3<\n"},
		{name: "Clear", input: "[1, 2, 3]", args: []string{"clear"}, expected: "><\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(t, tc.input, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stdout)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		args     []string
		expected error
	}{
		{name: "GetOutOfBounds", input: "[1, 2, 3]", args: []string{"get", "3"}, expected: dt.ErrIndexOutOfBounds},
		{name: "PopEmpty", input: "[]", args: []string{"pop"}, expected: dt.ErrIndexOutOfBounds},
		{name: "BadIndex", input: "[1]", args: []string{"get", "one"}, expected: ers.ErrInvalidInput},
		{name: "BadSpan", input: "[1]", args: []string{"slice", "a:b"}, expected: ers.ErrInvalidInput},
		{name: "ZeroStep", input: "[1]", args: []string{"slice", "::0"}, expected: dt.ErrInvalidStep},
		{name: "NegativeStep", input: "[1]", args: []string{"delete", "--", "::-1"}, expected: dt.ErrInvalidStep},
		{name: "SetSpan", input: "[1, 2, 3]", args: []string{"set", "0:2", "9"}, expected: dt.ErrUnsupportedOperation},
		{name: "RemoveMissing", input: "[1, 2, 3]", args: []string{"remove", "9"}, expected: dt.ErrValueNotFound},
		{name: "IndexMissing", input: "[1, 2, 3]", args: []string{"index", "9"}, expected: dt.ErrValueNotFound},
		{name: "NestedInput", input: "[[1], 2]", args: []string{"show"}, expected: dt.ErrInvalidConstruction},
		{name: "MappingInput", input: `{"a": 1}`, args: []string{"show"}, expected: dt.ErrInvalidConstruction},
		{name: "NestedValue", input: "[1]", args: []string{"push-back", "[1]"}, expected: ers.ErrInvalidRuntimeType},
		{name: "MissingFile", input: "[1]", args: []string{"equal", "/does/not/exist"}, expected: fs.ErrNotExist},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tc.input, tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "command failed")
		})
	}
	t.Run("UnknownCommand", func(t *testing.T) {
		_, _, err := run(t, "", "frobnicate")
		assert.Error(t, err)
	})
	t.Run("ArgumentCount", func(t *testing.T) {
		_, _, err := run(t, "[1]", "get")
		assert.Error(t, err)

		_, _, err = run(t, "[1]", "len", "1")
		assert.Error(t, err)
	})
}

func TestOutput(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := run(t, "[1, 2, 3]", "-o", "json", "slice", "1:")
		require.NoError(t, err)
		assert.Equal(t, "[2,3]\n", stdout)

		stdout, _, err = run(t, "[1, 2, 3]", "--output", "json", "get", "0")
		require.NoError(t, err)
		assert.Equal(t, "1\n", stdout)

		stdout, _, err = run(t, "[]", "-o", "json", "show")
		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout)
	})
	t.Run("YAML", func(t *testing.T) {
		stdout, _, err := run(t, "[1, 2, 3]", "-o", "yaml", "show")
		require.NoError(t, err)
		assert.Equal(t, "- 1\n- 2\n- 3\n", stdout)

		stdout, _, err = run(t, "[1, 2, 3]", "-o", "yaml", "contains", "2")
		require.NoError(t, err)
		assert.Equal(t, "true\n", stdout)
	})
	t.Run("Invalid", func(t *testing.T) {
		stdout, stderr, err := run(t, "[1]", "-o", "xml", "show")
		require.Error(t, err)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "command failed")
	})
}

func TestInputFiles(t *testing.T) {
	t.Run("InputFlag", func(t *testing.T) {
		path := testt.WriteFile(t, "list.yaml", "- a\n- b\n")
		stdout, _, err := run(t, "", "-i", path, "show")
		require.NoError(t, err)
		assert.Equal(t, ">a, b<\n", stdout)
	})
	t.Run("JSONInput", func(t *testing.T) {
		path := testt.WriteFile(t, "list.json", `["a", "b", 3]`)
		stdout, _, err := run(t, "", "--input", path, "len")
		require.NoError(t, err)
		assert.Equal(t, "3\n", stdout)
	})
	t.Run("Equal", func(t *testing.T) {
		same := testt.WriteFile(t, "same.json", "[1, 2, 3]")
		other := testt.WriteFile(t, "other.json", "[1, 2]")

		stdout, _, err := run(t, "[1, 2, 3]", "equal", same)
		require.NoError(t, err)
		assert.Equal(t, "true\n", stdout)

		stdout, _, err = run(t, "[1, 2, 3]", "equal", other)
		require.NoError(t, err)
		assert.Equal(t, "false\n", stdout)
	})
}

func TestConfiguration(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		input := testt.WriteFile(t, "list.yaml", "[1, 2]\n")
		conf := testt.WriteFile(t, "config.yaml", "output: json\ninput: "+input+"\n")

		stdout, _, err := run(t, "", "-c", conf, "show")
		require.NoError(t, err)
		assert.Equal(t, "[1,2]\n", stdout)
	})
	t.Run("FlagsOverrideFile", func(t *testing.T) {
		conf := testt.WriteFile(t, "config.yaml", "output: json\n")

		stdout, _, err := run(t, "[1, 2]", "-c", conf, "-o", "text", "show")
		require.NoError(t, err)
		assert.Equal(t, ">1, 2<\n", stdout)
	})
	t.Run("UnknownKey", func(t *testing.T) {
		conf := testt.WriteFile(t, "config.yaml", "colour: red\n")

		_, _, err := run(t, "[1]", "-c", conf, "show")
		assert.Error(t, err)
	})
	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := run(t, "[1]", "-c", filepath.Join(t.TempDir(), "absent.yaml"), "show")
		assert.Error(t, err)
	})
	t.Run("Environment", func(t *testing.T) {
		t.Setenv("CHAIN_OUTPUT", "yaml")

		stdout, _, err := run(t, "[1, 2]", "show")
		require.NoError(t, err)
		assert.Equal(t, "- 1\n- 2\n", stdout)

		stdout, _, err = run(t, "[1, 2]", "-o", "json", "show")
		require.NoError(t, err)
		assert.Equal(t, "[1,2]\n", stdout)
	})
	t.Run("EnvironmentLogLevel", func(t *testing.T) {
		t.Setenv("CHAIN_LOG_LEVEL", "debug")

		_, stderr, err := run(t, "[1, 2]", "len")
		require.NoError(t, err)
		assert.Contains(t, stderr, "list loaded")
	})
}

func TestLogging(t *testing.T) {
	t.Run("DefaultLevel", func(t *testing.T) {
		_, stderr, err := run(t, "[1, 2]", "len")
		require.NoError(t, err)
		assert.Empty(t, stderr)

		_, stderr, err = run(t, "[1, 2]", "delete", "0")
		require.NoError(t, err)
		assert.Contains(t, stderr, "deleted element")
		assert.Contains(t, stderr, `"index":0`)
	})
	t.Run("Debug", func(t *testing.T) {
		_, stderr, err := run(t, "[1, 2]", "--log-level", "debug", "len")
		require.NoError(t, err)
		assert.Contains(t, stderr, "configuration loaded")
		assert.Contains(t, stderr, "list loaded")
		assert.Contains(t, stderr, "operation complete")
	})
	t.Run("Quiet", func(t *testing.T) {
		_, stderr, err := run(t, "[1, 2]", "--log-level", "error", "delete", "0:1")
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
	t.Run("InvalidLevel", func(t *testing.T) {
		_, stderr, err := run(t, "[1, 2]", "--log-level", "loud", "len")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, stderr, "command failed")
	})
	t.Run("NewLogger", func(t *testing.T) {
		var buf bytes.Buffer
		lg, err := newLogger("", &buf)
		require.NoError(t, err)

		lg.Debug("hidden")
		lg.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})
}

func TestValues(t *testing.T) {
	t.Run("ParseValue", func(t *testing.T) {
		for in, expected := range map[string]any{
			"3":     3,
			"-3":    -3,
			"1.5":   1.5,
			"true":  true,
			"a":     "a",
			"'3'":   "3",
			`"x y"`: "x y",
			"null":  nil,
		} {
			t.Run(in, func(t *testing.T) {
				out, err := parseValue(in)
				require.NoError(t, err)
				assert.Equal(t, expected, out)
			})
		}
	})
	t.Run("ParseValueErrors", func(t *testing.T) {
		_, err := parseValue("[1, 2]")
		assert.ErrorIs(t, err, ers.ErrInvalidRuntimeType)

		_, err = parseValue("{a: 1}")
		assert.ErrorIs(t, err, dt.ErrInvalidConstruction)

		_, err = parseValue("'open")
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("ParseIndex", func(t *testing.T) {
		idx, err := parseIndex("-2")
		require.NoError(t, err)
		assert.Equal(t, -2, idx)

		_, err = parseIndex("1.5")
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("IsSpan", func(t *testing.T) {
		assert.True(t, isSpan(":"))
		assert.True(t, isSpan("1:2"))
		assert.False(t, isSpan("-1"))
	})
	t.Run("ReadList", func(t *testing.T) {
		l, err := readList(strings.NewReader("- 1\n- two\n"))
		require.NoError(t, err)
		assert.Equal(t, []any{1, "two"}, l.Slice())

		l, err = readList(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, l.Len())

		_, err = readList(strings.NewReader("- {a: 1}\n"))
		assert.ErrorIs(t, err, dt.ErrInvalidConstruction)
		assert.Contains(t, err.Error(), "element 0")
	})
	t.Run("Validate", func(t *testing.T) {
		conf := Config{}
		require.NoError(t, conf.Validate())
		assert.Equal(t, "-", conf.Input)
		assert.Equal(t, outputText, conf.Output)

		conf = Config{Output: "csv"}
		assert.ErrorIs(t, conf.Validate(), ers.ErrInvalidInput)
	})
}
