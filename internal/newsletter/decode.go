package newsletter

import "encoding/json"

// envelope is the storage row shape: some producers persist the document
// directly, others wrap it in structured_content (a JSON string) or
// enriched_content (an object).
type envelope struct {
	StructuredContent string          `json:"structured_content"`
	EnrichedContent   json.RawMessage `json:"enriched_content"`
}

// Decode unwraps raw bytes into a Document.
//
// It tries, in order: a structured_content JSON string, an
// enriched_content object, and finally the outer object itself. Malformed
// structured_content is the only recoverable failure and it recovers
// silently by falling through; Decode never fails, worst case is an empty
// document.
func Decode(raw []byte) *Document {
	var env envelope

	if err := json.Unmarshal(raw, &env); err == nil {
		if env.StructuredContent != "" {
			var doc Document
			if err := json.Unmarshal([]byte(env.StructuredContent), &doc); err == nil {
				return &doc
			}
		}

		if len(env.EnrichedContent) > 0 {
			var doc Document
			if err := json.Unmarshal(env.EnrichedContent, &doc); err == nil {
				return &doc
			}
		}
	}

	var doc Document
	// Best effort: a partially matching outer object still yields the
	// fields that did decode.
	_ = json.Unmarshal(raw, &doc)

	return &doc
}
