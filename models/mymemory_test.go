package models

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestMyMemoryStatus(t *testing.T) {
	cases := []struct {
		body   string
		status int
		ok     bool
	}{
		{`{"responseStatus":200}`, 200, true},
		{`{"responseStatus":"403"}`, 403, true},
		{`{"responseStatus":null}`, 0, false},
		{`{}`, 0, false},
		{`{"responseStatus":"oops"}`, 0, false},
	}
	for _, tc := range cases {
		resp := MyMemoryResponse{}
		if err := json.Unmarshal([]byte(tc.body), &resp); err != nil {
			t.Fatalf("failed to unmarshal %s: %v", tc.body, err)
		}
		status, ok := resp.Status()
		if status != tc.status || ok != tc.ok {
			t.Errorf("Status() for %s = (%d, %v); expected (%d, %v)", tc.body, status, ok, tc.status, tc.ok)
		}
	}
}

func TestMyMemoryAlternatives(t *testing.T) {
	body := `{"responseData":{"translatedText":"salom","match":1},
	"matches":[{"translation":"salom"},{"translation":"assalomu alaykum"},{"translation":""},{"translation":"assalomu alaykum"}]}`
	resp := MyMemoryResponse{}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	got := resp.Alternatives()
	if !slices.Equal(got, []string{"assalomu alaykum"}) {
		t.Errorf("unexpected alternatives: %v", got)
	}
	if (&MyMemoryResponse{}).Alternatives() != nil {
		t.Errorf("expected nil alternatives without responseData")
	}
}
