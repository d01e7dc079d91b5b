package story

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultTemplatePath is looked up relative to the working directory.
const DefaultTemplatePath = "template.txt"

// FallbackTemplate is used whenever the template file does not exist.
const FallbackTemplate = "Once upon a time, [Character 0] went on an adventure. " +
	"[Character 1] joined [Character 0] and they discovered a magical land."

var ErrTemplateDecode = errors.New("template is not valid UTF-8")

type Template struct {
	Text     string
	Path     string
	Fallback bool
}

// LoadTemplate reads the template at path. A missing file is not an error and
// yields the fallback template.
func LoadTemplate(path string) (Template, error) {
	if path == "" {
		path = DefaultTemplatePath
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Template{Text: FallbackTemplate, Path: path, Fallback: true}, nil
	}
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	text, err := DecodeTemplate(raw)
	if err != nil {
		return Template{}, fmt.Errorf("%s: %w", path, err)
	}
	return Template{Text: text, Path: path}, nil
}

// DecodeTemplate reads raw as ISO-8859-1 and then reinterprets the resulting
// text as UTF-8. Templates saved as UTF-8 therefore come through intact, while
// byte sequences that are not valid UTF-8 fail with ErrTemplateDecode.
func DecodeTemplate(raw []byte) (string, error) {
	latin1, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: latin-1 decode: %v", ErrTemplateDecode, err)
	}

	roundTrip, err := charmap.ISO8859_1.NewEncoder().Bytes(latin1)
	if err != nil {
		return "", fmt.Errorf("%w: latin-1 encode: %v", ErrTemplateDecode, err)
	}

	text, _, err := transform.Bytes(encoding.UTF8Validator, roundTrip)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateDecode, err)
	}
	return string(text), nil
}
