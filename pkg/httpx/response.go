package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxBodyBytes caps request bodies read by DecodeForm.
const MaxBodyBytes = 1 << 20

// ErrUnsupportedMediaType is returned by DecodeForm for bodies that are
// neither JSON nor form encoded.
var ErrUnsupportedMediaType = errors.New("httpx: unsupported media type")

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeForm reads string fields from a JSON object or an
// application/x-www-form-urlencoded body. A missing Content-Type is treated
// as JSON. An empty body yields an empty map.
func DecodeForm(r *http.Request) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	mediaType := "application/json"
	if ct != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
		}
	}

	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		out := make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			out[k] = r.PostForm.Get(k)
		}
		return out, nil

	case "application/json":
		raw := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		out := make(map[string]string, len(raw))
		for k, v := range raw {
			switch val := v.(type) {
			case string:
				out[k] = val
			case nil:
				// JSON null is the same as absent.
			default:
				out[k] = fmt.Sprint(val)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}
