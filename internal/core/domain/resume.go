package domain

import "errors"

var ErrResumeNotFound = errors.New("resume not found")
var ErrRenderNotFound = errors.New("rendered resume not found")

// stepField is a transient wizard-progress marker the frontend attaches to
// the payload. It is never persisted.
const stepField = "step"

// Document is a user's structured resume data. The schema is owned by the
// frontend editor, so the backend stores it as-is and only strips fields it
// reserves for itself.
type Document map[string]any

// Sanitized returns a copy of the document with the transient step field
// removed. The receiver is left untouched.
func (d Document) Sanitized() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == stepField {
			continue
		}
		out[k] = v
	}
	return out
}
