// Package formatfile reads and writes format, timetable and layout documents
// as JSON or YAML, chosen by file extension.
package formatfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/manish-107/CollegeCAT-sub000/internal/dto"
	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
)

// Document encodings.
const (
	JSON = "json"
	YAML = "yaml"
)

// EncodingFor maps a path extension to a document encoding.
func EncodingFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", appErrors.Clone(appErrors.ErrInvalidDocument, fmt.Sprintf("%s: unsupported extension, use .json, .yaml or .yml", path))
	}
}

// Read decodes the document at path into v.
func Read(path string, v any) error {
	encoding, err := EncodingFor(path)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidDocument.Code, appErrors.ErrInvalidDocument.ExitCode, "read "+path)
	}
	if err := Unmarshal(raw, encoding, v); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidDocument.Code, appErrors.ErrInvalidDocument.ExitCode, "parse "+path)
	}
	return nil
}

// Unmarshal decodes raw in the given encoding. Unknown fields are rejected.
func Unmarshal(raw []byte, encoding string, v any) error {
	switch encoding {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Write encodes v to w in the given encoding.
func Write(w io.Writer, v any, encoding string) error {
	switch encoding {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// WriteFile encodes v into path using the encoding implied by its extension.
func WriteFile(path string, v any) error {
	encoding, err := EncodingFor(path)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := Write(buf, v, encoding); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadFormat reads a stored format document.
func LoadFormat(path string) (*models.Format, error) {
	var format models.Format
	if err := Read(path, &format); err != nil {
		return nil, err
	}
	return &format, nil
}

// LoadTimetable reads a timetable document.
func LoadTimetable(path string) (*models.Timetable, error) {
	var timetable models.Timetable
	if err := Read(path, &timetable); err != nil {
		return nil, err
	}
	return &timetable, nil
}

// LoadLayout reads a slot-by-slot week authored for encoding.
func LoadLayout(path string) (*dto.EncodeFormatRequest, error) {
	var req dto.EncodeFormatRequest
	if err := Read(path, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
