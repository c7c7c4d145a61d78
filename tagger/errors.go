package tagger

import "fmt"

// ConfigError reports an adapter configuration that cannot work, surfaced at
// construction before any process is launched.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tagger config: %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseError reports tagger output that does not match the expected
// token<separator>tag grammar, or a sentence count that differs from the
// request.
type ParseError struct {
	Line   int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("tagger output line %d: token %q: %s", e.Line, e.Token, e.Reason)
	}
	return fmt.Sprintf("tagger output: %s", e.Reason)
}
