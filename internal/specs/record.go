package specs

import (
	"encoding/json"
	"strings"
)

// TitleAttribute is the attribute holding the page title.
const TitleAttribute = "<page title>"

// RawRecord is one product description as read from the dataset.
type RawRecord struct {
	ID    string
	Title string
	Extra map[string]any
}

// Parse decodes one JSON document into a RawRecord. Keys are lowercased; when
// two keys differ only in case the one decoded last wins.
func Parse(id string, data []byte) (RawRecord, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return RawRecord{}, &MalformedRecordError{ID: id, Reason: "invalid json", Err: err}
	}
	return FromAttributes(id, doc)
}

// FromAttributes builds a RawRecord from already decoded attributes.
func FromAttributes(id string, attrs map[string]any) (RawRecord, error) {
	extra := make(map[string]any, len(attrs))
	for key, value := range attrs {
		extra[strings.ToLower(key)] = value
	}
	raw, ok := extra[TitleAttribute]
	if !ok {
		return RawRecord{}, &MalformedRecordError{ID: id, Reason: "missing " + TitleAttribute}
	}
	title, ok := raw.(string)
	if !ok {
		return RawRecord{}, &MalformedRecordError{ID: id, Reason: TitleAttribute + " is not a string"}
	}
	delete(extra, TitleAttribute)
	return RawRecord{ID: id, Title: title, Extra: extra}, nil
}
