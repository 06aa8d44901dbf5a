package valuation

import (
	"bytes"
	_ "embed"

	pkgerrors "github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

//go:embed explain.md
var explanation string

// Explanation returns the Markdown description of the model.
func Explanation() string {
	return explanation
}

// ExplanationHTML renders Explanation as HTML.
func ExplanationHTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(explanation), &buf); err != nil {
		return "", pkgerrors.Wrap(err, "failed to render explanation")
	}
	return buf.String(), nil
}
