package writer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kestrelsec/accountdedup/internal/dedup"
	"github.com/kestrelsec/accountdedup/internal/model"
)

func TestWriteResult_EnvelopeShape(t *testing.T) {
	var accounts []model.Account
	if err := json.Unmarshal([]byte(`[
		{"service":"gmail","accountEmail":"a@b.com","source":"scanA"},
		{"service":"Gmail","accountEmail":"A@B.com","source":"scanB"}
	]`), &accounts); err != nil {
		t.Fatalf("decode test input: %v", err)
	}
	res := dedup.Process(accounts, dedup.DefaultOptions())

	var buf bytes.Buffer
	if err := WriteResult(&buf, res, false); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("output does not end with a newline")
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("envelope has %d fields, want exactly 3: %s", len(out), buf.String())
	}
	for _, key := range []string{"accounts", "original_count", "cleaned_count"} {
		if _, ok := out[key]; !ok {
			t.Errorf("envelope missing field %q", key)
		}
	}
	if got := string(out["original_count"]); got != "2" {
		t.Errorf("original_count = %s, want 2", got)
	}
	if got := string(out["cleaned_count"]); got != "1" {
		t.Errorf("cleaned_count = %s, want 1", got)
	}
}

func TestWriteResult_EmptyAccountsNotNull(t *testing.T) {
	res := dedup.Process(nil, dedup.DefaultOptions())

	var buf bytes.Buffer
	if err := WriteResult(&buf, res, false); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	want := `{"accounts":[],"original_count":0,"cleaned_count":0}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteResult_Pretty(t *testing.T) {
	res := dedup.Process(nil, dedup.DefaultOptions())

	var buf bytes.Buffer
	if err := WriteResult(&buf, res, true); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("pretty output not indented: %q", buf.String())
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("pretty output not valid JSON: %v", err)
	}
}

func TestWriteError_Envelope(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteError(&buf, "Invalid JSON input: unexpected end of JSON input"); err != nil {
		t.Fatalf("WriteError failed: %v", err)
	}
	want := `{"error":"Invalid JSON input: unexpected end of JSON input","accounts":[]}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
