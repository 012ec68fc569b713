package matcher

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"

	"gopkg.in/yaml.v3"
)

// Codec decodes a byte payload into a value.
type Codec interface {
	// Name identifies the encoding, e.g. "json".
	Name() string

	// Decode parses data into v, which is a non-nil pointer.
	Decode(data []byte, v any) error
}

// errEmptyDocument is returned for payloads that carry no value at all.
var errEmptyDocument = errors.New("empty document")

// Built-in codecs.
var (
	// JSON decodes with encoding/json. Unknown object fields are ignored.
	JSON Codec = jsonCodec{}

	// StrictJSON decodes with encoding/json and rejects unknown object fields.
	StrictJSON Codec = jsonCodec{strict: true}

	// YAML decodes with gopkg.in/yaml.v3.
	YAML Codec = yamlCodec{}

	// XML decodes with encoding/xml.
	XML Codec = xmlCodec{}
)

type jsonCodec struct {
	strict bool
}

func (c jsonCodec) Name() string {
	if c.strict {
		return "json-strict"
	}
	return "json"
}

func (c jsonCodec) Decode(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errEmptyDocument
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if c.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A second value after the first is not a single document.
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte, v any) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	// yaml.v3 accepts empty input and a bare null without error; neither
	// describes a value.
	if node.Kind == 0 || len(node.Content) == 0 {
		return errEmptyDocument
	}
	if doc := node.Content[0]; doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return errEmptyDocument
	}
	return node.Decode(v)
}

type xmlCodec struct{}

func (xmlCodec) Name() string { return "xml" }

func (xmlCodec) Decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyDocument
	}
	return xml.Unmarshal(data, v)
}
