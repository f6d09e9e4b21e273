package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tychoish/chain/dt"
)

// operation applies one command to the loaded list, returning the
// value to render.
type operation func(l *dt.List[any], args []string) (any, error)

func (s *session) command(use, short string, nargs cobra.PositionalArgs, op operation) *cobra.Command {
	return &cobra.Command{
		Use:                   use,
		Short:                 short,
		Args:                  nargs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readListFile(s.conf.Input, s.stdin)
			if err != nil {
				return fmt.Errorf("failed to load input, %w", err)
			}
			s.logger.Debug("list loaded", zap.String("input", s.conf.Input), zap.Int("length", l.Len()))

			result, err := op(l, args)
			if err != nil {
				return fmt.Errorf("%s failed, %w", cmd.Name(), err)
			}
			s.logger.Debug("operation complete", zap.String("command", cmd.Name()), zap.Int("length", l.Len()))

			return s.render(result)
		},
	}
}

func (s *session) commands() []*cobra.Command {
	return []*cobra.Command{
		s.command("show", "Print the list.", cobra.NoArgs, func(l *dt.List[any], _ []string) (any, error) {
			return l, nil
		}),
		s.command("len", "Print the length of the list.", cobra.NoArgs, func(l *dt.List[any], _ []string) (any, error) {
			return l.Len(), nil
		}),
		s.command("get <index>", "Print the element at an index.", cobra.ExactArgs(1), opGet),
		s.command("set <index|span> <value>", "Overwrite the element at an index.", cobra.ExactArgs(2), opSet),
		s.command("slice <span>", "Print the elements of a span.", cobra.ExactArgs(1), opSlice),
		s.command("delete <index|span>", "Delete an element or span, and print the list.", cobra.ExactArgs(1), s.opDelete),
		s.command("insert <index> <value>", "Insert a value at an index.", cobra.ExactArgs(2), opInsert),
		s.command("push-front <value>", "Insert a value at the front.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			l.PushFront(v)
			return l, nil
		})),
		s.command("push-back <value>", "Insert a value at the back.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			l.PushBack(v)
			return l, nil
		})),
		s.command("pop [index]", "Remove and print an element, the last by default.", cobra.MaximumNArgs(1), opPop),
		s.command("remove <value>", "Remove the first element equal to a value.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			if err := l.Remove(v); err != nil {
				return nil, err
			}
			return l, nil
		})),
		s.command("count <value>", "Count the elements equal to a value.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			return l.Count(v), nil
		})),
		s.command("index <value>", "Print the position of the first element equal to a value.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			return l.Index(v)
		})),
		s.command("contains <value>", "Report whether any element equals a value.", cobra.ExactArgs(1), withValue(func(l *dt.List[any], v any) (any, error) {
			return l.Contains(v), nil
		})),
		s.command("reverse", "Print the list in reverse order.", cobra.NoArgs, func(l *dt.List[any], _ []string) (any, error) {
			l.Reverse()
			return l, nil
		}),
		s.command("copy", "Print a copy of the list.", cobra.NoArgs, func(l *dt.List[any], _ []string) (any, error) {
			return l.Copy(), nil
		}),
		s.command("clear", "Print the list after removing every element.", cobra.NoArgs, func(l *dt.List[any], _ []string) (any, error) {
			l.Clear()
			return l, nil
		}),
		s.command("equal <file>", "Report whether the list equals the list in another file.", cobra.ExactArgs(1), s.opEqual),
	}
}

func withValue(op func(*dt.List[any], any) (any, error)) operation {
	return func(l *dt.List[any], args []string) (any, error) {
		v, err := parseValue(args[0])
		if err != nil {
			return nil, err
		}
		return op(l, v)
	}
}

func opGet(l *dt.List[any], args []string) (any, error) {
	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}
	return l.Get(idx)
}

func opSet(l *dt.List[any], args []string) (any, error) {
	v, err := parseValue(args[1])
	if err != nil {
		return nil, err
	}

	if isSpan(args[0]) {
		span, err := dt.ParseSpan(args[0])
		if err != nil {
			return nil, err
		}
		return nil, l.SetSpan(span, v)
	}

	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}

	if err := l.Set(idx, v); err != nil {
		return nil, err
	}
	return l, nil
}

func opSlice(l *dt.List[any], args []string) (any, error) {
	span, err := dt.ParseSpan(args[0])
	if err != nil {
		return nil, err
	}
	return l.GetSpan(span)
}

func (s *session) opDelete(l *dt.List[any], args []string) (any, error) {
	if isSpan(args[0]) {
		span, err := dt.ParseSpan(args[0])
		if err != nil {
			return nil, err
		}

		removed, err := l.DeleteSpan(span)
		if err != nil {
			return nil, err
		}
		s.logger.Info("deleted span", zap.Stringer("span", span), zap.Int("removed", removed.Len()))
		return l, nil
	}

	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}

	removed, err := l.Delete(idx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("deleted element", zap.Int("index", idx), zap.Any("value", removed))
	return l, nil
}

func opInsert(l *dt.List[any], args []string) (any, error) {
	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}

	v, err := parseValue(args[1])
	if err != nil {
		return nil, err
	}

	l.Insert(idx, v)
	return l, nil
}

func opPop(l *dt.List[any], args []string) (any, error) {
	if len(args) == 0 {
		return l.Pop()
	}

	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}
	return l.PopAt(idx)
}

func (s *session) opEqual(l *dt.List[any], args []string) (any, error) {
	other, err := readListFile(args[0], s.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s, %w", args[0], err)
	}
	return l.Equal(other), nil
}
