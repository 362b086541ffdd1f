package document

import (
	"bytes"
	"encoding/json"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

var errNoBlueprint = errors.New("no blueprint found")

// FormatImport re-indents a fetched JSON body with two spaces. Key order
// and number literals are kept as received.
func FormatImport(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", errors.Wrap(errNoBlueprint, "empty response")
	}
	if !json.Valid(trimmed) {
		return "", errors.Errorf("response is not valid JSON (got %s)", mimetype.Detect(body).String())
	}
	if falsy(trimmed) {
		return "", errors.Wrapf(errNoBlueprint, "response is %s", trimmed)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return "", errors.Wrap(err, "failed to indent response")
	}
	return buf.String(), nil
}

// falsy reports whether a valid JSON value is null, false, zero or "".
func falsy(value []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		n, err := v.Float64()
		return err == nil && n == 0
	}
	return false
}
