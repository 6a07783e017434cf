package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kestrelsec/accountdedup/internal/model"
)

// WriteResult encodes the success envelope to w, followed by a newline.
func WriteResult(w io.Writer, res *model.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteError encodes the failure envelope to w, followed by a newline.
func WriteError(w io.Writer, msg string) error {
	env := model.NewErrorEnvelope(msg)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		return fmt.Errorf("encode error envelope: %w", err)
	}
	return nil
}
