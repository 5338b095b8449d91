package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/AdamBeresnev/lol-cup/internal/utils"
)

const maxBodyBytes = 1_048_576

func WriteJSON(w http.ResponseWriter, status int, data any) {
	js, err := json.Marshal(data)
	if err != nil {
		InternalServerError(w, "Failed to encode response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(js, '\n')); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Fields holds request input from either a JSON object or a form body.
type Fields map[string]any

// ReadFields accepts application/json or form encoded bodies. An empty
// body yields no fields rather than an error.
func ReadFields(w http.ResponseWriter, r *http.Request) (Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form data: %w", err)
		}
		fields := Fields{}
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
		return fields, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	fields := Fields{}
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return Fields{}, nil
		}
		return nil, fmt.Errorf("body contains badly-formed JSON: %w", err)
	}
	return fields, nil
}

// String returns the trimmed value, or "" when absent, null or blank.
func (f Fields) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return utils.OrZero(utils.StringOrNil(v))
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Float parses numbers and numeric strings. ok is false when the key is
// absent, null or blank; err is set when the value is not a finite number.
func (f Fields) Float(key string) (value float64, ok bool, err error) {
	switch v := f[key].(type) {
	case json.Number:
		value, err = v.Float64()
	case float64:
		value = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false, nil
		}
		value, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	case nil:
		return 0, false, nil
	default:
		return 0, true, fmt.Errorf("field %q is not a number", key)
	}
	if err != nil {
		return 0, true, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, fmt.Errorf("field %q is not a finite number", key)
	}
	return value, true, nil
}
