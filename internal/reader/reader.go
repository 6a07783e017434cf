package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kestrelsec/accountdedup/internal/model"
)

// ErrNotArray reports input that parses as JSON but whose top level is not
// an array. The message surfaces verbatim in the error envelope, so it keeps
// the wording consumers of that envelope already match on.
var ErrNotArray = errors.New("Input must be a JSON array of accounts")

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "invalid JSON input: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Decode reads the entire input stream and decodes it into account records.
//
// Failure classes:
//   - malformed JSON: *ParseError
//   - valid JSON, top level not an array: ErrNotArray
//   - an element that violates the record type rules: wrapped decode error
func Decode(r io.Reader) ([]model.Account, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, &ParseError{Err: err}
	}
	// A top-level JSON null unmarshals into a nil slice without error;
	// it is not an array either.
	if elems == nil {
		return nil, ErrNotArray
	}

	accounts := make([]model.Account, 0, len(elems))
	for i, elem := range elems {
		var a model.Account
		if err := json.Unmarshal(elem, &a); err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
