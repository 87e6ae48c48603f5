package debox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Response is the decoded JSON body of a DeBox API call. The schema differs
// per endpoint, so the body is kept loosely typed and exposed through
// accessors that report whether the value was present.
type Response struct {
	raw   json.RawMessage
	value any
}

// ParseResponse decodes a DeBox response body.
func ParseResponse(body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("debox: decoding response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("debox: decoding response: unexpected data after JSON value")
	}

	return &Response{
		raw:   json.RawMessage(bytes.TrimSpace(body)),
		value: value,
	}, nil
}

// Raw returns the body exactly as the server sent it.
func (r *Response) Raw() json.RawMessage {
	return r.raw
}

// Value returns the decoded body. Numbers are json.Number.
func (r *Response) Value() any {
	return r.value
}

// Get returns a top-level field of an object body.
func (r *Response) Get(key string) (any, bool) {
	obj, ok := r.value.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// Code returns the platform status code carried in the "code" field.
func (r *Response) Code() (int, bool) {
	v, ok := r.Get("code")
	if !ok {
		return 0, false
	}

	switch code := v.(type) {
	case json.Number:
		n, err := code.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(code)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (r *Response) Message() (string, bool) {
	v, ok := r.Get("message")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r *Response) Data() (map[string]any, bool) {
	v, ok := r.Get("data")
	if !ok {
		return nil, false
	}
	data, ok := v.(map[string]any)
	return data, ok
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

func (r *Response) String() string {
	return string(r.raw)
}

func (r *Response) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}
