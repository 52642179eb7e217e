package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/identitykit/aadhaar-extract/pkg/provider"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnparsable reports a model reply whose cleaned text is not the expected
// JSON envelope. Callers map it to an invalid-input response; any other
// error from Extract is unexpected (network, credentials) and stays a
// server-side failure.
var ErrUnparsable = errors.New("unparsable model response")

// Record is the extracted field mapping, passed through to the client as-is.
// Field contents are not validated unless schema validation is enabled.
type Record map[string]any

type Extractor struct {
	completer provider.Completer
	schema    *jsonschema.Schema
}

type Option func(*Extractor)

// WithSchemaValidation rejects replies whose envelope does not match the
// eight-key record schema. Off by default: any valid JSON object is passed
// through unchecked.
func WithSchemaValidation() Option {
	return func(e *Extractor) {
		schema, err := compileRecordSchema()
		if err != nil {
			// The schema is a compile-time constant; failing to compile it
			// is a programming error.
			panic(err)
		}

		e.schema = schema
	}
}

func New(completer provider.Completer, options ...Option) *Extractor {
	e := &Extractor{
		completer: completer,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Extract sends the page image and the fixed instruction to the model and
// parses the reply into a Record.
func (e *Extractor) Extract(ctx context.Context, image provider.File) (Record, error) {
	message := provider.UserMessage(instruction)
	message.Content = append(message.Content, provider.FileContent(&image))

	completion, err := e.completer.Complete(ctx, []provider.Message{message}, nil)
	if err != nil {
		return nil, err
	}

	text := stripFences(completion.Message.Text())

	var record Record
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	if e.schema != nil {
		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
		}

		if err := e.schema.Validate(value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
		}
	}

	return record, nil
}
