package handlers

import (
	"encoding/json"
	"net/http"
)

func pathParam(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return r.PathValue(key)
}

// decodeFields reads a JSON object body into a semi-structured map. No
// schema is applied; whatever keys the client sends are kept.
func decodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}
	if r.Body == nil {
		return fields, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func documents[T interface{ Document() map[string]any }](items []T) []map[string]any {
	docs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		docs = append(docs, item.Document())
	}
	return docs
}
