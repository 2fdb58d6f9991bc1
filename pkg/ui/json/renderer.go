// Package json writes results as indented JSON for scripts. Every value is
// one JSON document on its own, so a failed run still yields parseable output.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/ccsync/pkg/errors"
)

// ErrorPayload is the document written for a failed command
type ErrorPayload struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody mirrors errors.SyncError
type ErrorBody struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Cause   string                 `json:"cause,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MessagePayload is the document written for a plain message
type MessagePayload struct {
	Message string `json:"message"`
}

// Renderer encodes results onto an output stream
type Renderer struct {
	enc *json.Encoder
}

// New creates a JSON renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes result as is; reports and stage results carry their own tags
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError encodes err with its code, cause and details
func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(ErrorPayload{Error: bodyFor(err)})
}

// RenderMessage encodes msg
func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(MessagePayload{Message: msg})
}

func bodyFor(err error) ErrorBody {
	syncErr, ok := errors.AsSyncError(err)
	if !ok {
		return ErrorBody{Code: errors.ErrUnknown, Message: err.Error()}
	}

	body := ErrorBody{Code: syncErr.Code, Message: syncErr.Message}
	if syncErr.Wrapped != nil {
		body.Cause = syncErr.Wrapped.Error()
	}
	if len(syncErr.Details) > 0 {
		body.Details = syncErr.Details
	}
	return body
}
