package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"locket-admin/internal/core/port"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// decodeJSON decodes the request body into v, which may already hold
// defaults. It writes a 400 and returns false when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, fmt.Sprintf("invalid JSON: %v", err))
		return false
	}
	return true
}

// queryInt reads an optional positive integer query parameter.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

// ConfirmDeleteHeader carries the operator's confirmation of a delete.
const ConfirmDeleteHeader = "X-Confirm-Delete"

// confirmation is the operator's answer to a destructive action, taken
// from the confirm header or query parameter.
func confirmation(r *http.Request) port.Confirmer {
	answer := r.Header.Get(ConfirmDeleteHeader)
	if answer == "" {
		answer = r.URL.Query().Get("confirm")
	}
	yes := strings.EqualFold(strings.TrimSpace(answer), "yes") || strings.EqualFold(strings.TrimSpace(answer), "true")
	return port.ConfirmFunc(func(string) bool { return yes })
}
