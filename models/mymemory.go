package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MyMemory
// https://mymemory.translated.net/doc/spec.php
type MyMemoryResponse struct {
	ResponseData *MyMemoryData `json:"responseData"`
	// number or quoted number depending on the error path
	ResponseStatus  json.RawMessage `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
	QuotaFinished   bool            `json:"quotaFinished"`
	Matches         []MyMemoryMatch `json:"matches"`
}

type MyMemoryData struct {
	TranslatedText *string `json:"translatedText"`
	Match          float64 `json:"match"`
}

type MyMemoryMatch struct {
	ID          json.RawMessage `json:"id"`
	Segment     string          `json:"segment"`
	Translation string          `json:"translation"`
	Source      string          `json:"source"`
	Target      string          `json:"target"`
	Quality     json.RawMessage `json:"quality"`
	Match       float64         `json:"match"`
}

// Status returns responseStatus as int; ok is false when the field is absent
// or is not a number.
func (r *MyMemoryResponse) Status() (int, bool) {
	raw := bytes.Trim(r.ResponseStatus, `" `)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	status, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false
	}
	return status, true
}

// Alternatives lists match translations that differ from the main result
func (r *MyMemoryResponse) Alternatives() []string {
	if r.ResponseData == nil || r.ResponseData.TranslatedText == nil {
		return nil
	}
	main := *r.ResponseData.TranslatedText
	seen := map[string]struct{}{main: {}}
	resp := []string{}
	for _, m := range r.Matches {
		if _, ok := seen[m.Translation]; ok || m.Translation == "" {
			continue
		}
		seen[m.Translation] = struct{}{}
		resp = append(resp, m.Translation)
	}
	return resp
}
