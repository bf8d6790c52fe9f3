package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// RawJSONData is an arbitrary JSON document stored as compact text.
type RawJSONData struct {
	ID       int64  `json:"id" db:"id"`
	JSONData string `json:"jsonData" db:"json_data"`
}

// SaveRawJSONPayload captures the request body of POST /data verbatim.
//
// Any JSON value (object, array, scalar, null) is accepted, not only objects.
type SaveRawJSONPayload json.RawMessage

// BindRaw stores the whole request body so trailing garbage after the first
// value is still caught by Validate.
func (p *SaveRawJSONPayload) BindRaw(body []byte) error {
	*p = append((*p)[:0], body...)
	return nil
}

func (p *SaveRawJSONPayload) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("model: UnmarshalJSON on nil SaveRawJSONPayload")
	}
	*p = append((*p)[:0], data...)
	return nil
}

// Validate rejects empty bodies and anything that is not a single JSON document.
func (p *SaveRawJSONPayload) Validate() error {
	if len(bytes.TrimSpace(*p)) == 0 {
		return errors.New("request body is required")
	}
	if !utf8.Valid(*p) {
		return errors.New("request body must be valid UTF-8")
	}
	if !json.Valid(*p) {
		return errors.New("request body must be a valid JSON document")
	}
	return nil
}

// Bytes returns the captured document.
func (p *SaveRawJSONPayload) Bytes() []byte {
	return []byte(*p)
}

// EmptyPayload is used by routes that take no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}
