package biometric

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Console stands in for the platform prompt on a terminal: capability and
// enrollment come from configuration, and the prompt is a y/N question.
type Console struct {
	hardware bool
	enrolled bool
	in       *bufio.Reader
	out      io.Writer
}

var _ Authenticator = (*Console)(nil)

func NewConsole(hardware, enrolled bool, in io.Reader, out io.Writer) *Console {
	return &Console{
		hardware: hardware,
		enrolled: enrolled,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

func (c *Console) HasHardware(context.Context) (bool, error) { return c.hardware, nil }
func (c *Console) IsEnrolled(context.Context) (bool, error)  { return c.hardware && c.enrolled, nil }

func (c *Console) SupportedTypes(context.Context) ([]Type, error) {
	if !c.hardware {
		return nil, nil
	}
	return []Type{TypeFingerprint}, nil
}

func (c *Console) Prompt(ctx context.Context, opts PromptOptions) (PromptResult, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", opts.Message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return PromptResult{Error: "user_cancel"}, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return PromptResult{Success: true}, nil
	default:
		return PromptResult{Error: "user_cancel"}, nil
	}
}
