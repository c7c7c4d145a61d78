package tagger

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding maps an IANA charset name to a codec. The index returns a
// nil encoding for names it knows but cannot serve, so both paths fail here.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &ConfigError{Field: "encoding", Value: name, Reason: "unknown charset"}
	}
	return enc, nil
}
