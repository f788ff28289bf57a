package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
)

// Collection names in the document store.
const (
	CollectionTutors  = "tutors"
	CollectionJobs    = "jobs"
	CollectionParents = "parents"
)

// decodeDocument maps a document's data onto a typed model value via a
// JSON round-trip. Unknown keys are ignored, absent keys stay zero.
func decodeDocument(doc *docstore.Document, out interface{}) error {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", doc.Collection, doc.ID, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document %s/%s: %w", doc.Collection, doc.ID, err)
	}
	return nil
}

// encodeFields converts a typed model value into a document data map.
func encodeFields(in interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return data, nil
}
