package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes the result of an operation in the configured
// format. Lists render as ">a, b<" in text form and as arrays
// otherwise.
func (s *session) render(result any) error {
	var (
		out []byte
		err error
	)

	switch s.conf.Output {
	case outputJSON:
		out, err = json.Marshal(result)
		out = append(out, '\n')
	case outputYAML:
		out, err = yaml.Marshal(result)
	default:
		out = []byte(fmt.Sprintln(result))
	}

	if err != nil {
		return fmt.Errorf("failed to render %s output, %w", s.conf.Output, err)
	}

	_, err = s.stdout.Write(out)
	return err
}
