package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// parseBody decodes a JSON or URL-encoded request body into a field map.
// A body that cannot be decoded yields an empty map; the create endpoints
// reject an empty map with 400 before touching storage. Beyond that
// emptiness check there is no schema validation here: unexpected or missing
// fields go straight to the data-access layer and fail only if storage
// rejects them.
func parseBody(r *http.Request) map[string]interface{} {
	body := make(map[string]interface{})
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return make(map[string]interface{})
		}
		return body
	}
	if err := r.ParseForm(); err != nil {
		return body
	}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			body[key] = values[0]
		}
	}
	return body
}

// stringField extracts a string field from a parsed body.
func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// uintField extracts a numeric id field from a parsed body. JSON numbers
// arrive as float64, form values as strings.
func uintField(body map[string]interface{}, key string) uint {
	switch v := body[key].(type) {
	case float64:
		return uint(v)
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return uint(n)
	}
	return 0
}

// pathID parses the {id} route variable. Routes constrain it to digits, so
// a failure here simply means no such record.
func pathID(vars map[string]string) (uint, bool) {
	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// sendStorageError logs the underlying failure and answers with an opaque
// 500. The original error is never serialized to the client.
func sendStorageError(w http.ResponseWriter, err error) {
	log.Printf("storage error: %v", err)
	w.WriteHeader(http.StatusInternalServerError)
}
