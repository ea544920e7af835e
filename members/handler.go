package members

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"strconv"
)

// maxSubmission limits the size of a submitted form.
const maxSubmission = 64 << 10

// Handler serves the register over HTTP:
//
//	POST /api/submit    store a member (JSON or URL-encoded form)
//	GET  /admin/export  download the register as CSV
//
// Export requires AdminToken, given as X-Admin-Token header or as token
// query parameter. With an empty AdminToken export is always refused.
// Cross-origin requests are answered only for AllowedOrigin.
type Handler struct {
	Store         *Store
	AdminToken    string
	AllowedOrigin string
	mux           *http.ServeMux
}

// NewHandler creates a handler for store.
func NewHandler(store *Store, adminToken, allowedOrigin string) *Handler {
	h := &Handler{
		Store:         store,
		AdminToken:    adminToken,
		AllowedOrigin: allowedOrigin,
		mux:           http.NewServeMux(),
	}
	h.mux.HandleFunc("POST /api/submit", h.submit)
	h.mux.HandleFunc("GET /admin/export", h.export)
	h.mux.HandleFunc("OPTIONS /", func(w http.ResponseWriter, r *http.Request) {})
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && origin == h.AllowedOrigin {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Admin-Token")
	}
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmission)
	fields, err := readFields(r)
	if errors.Is(err, errUnsupportedType) {
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported content-type")
		return
	} else if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request")
		return
	}
	if fields[Honeypot] != "" {
		tracer().Infof("dropped submission from %s: honeypot filled in", clientIP(r))
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	m := FromFields(fields)
	m.IP = clientIP(r)
	m.UserAgent = r.UserAgent()
	if _, err := h.Store.Add(r.Context(), m); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		tracer().Errorf("submission: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if h.AdminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.AdminToken)) != 1 {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var buf bytes.Buffer
	if err := h.Store.ExportCSV(r.Context(), &buf); err != nil {
		tracer().Errorf("%v", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+ExportFilename(h.Store.now()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

var errUnsupportedType = errors.New("unsupported content type")

// readFields decodes a JSON object or a URL-encoded form into field values.
// JSON numbers and booleans are turned into their text form.
func readFields(r *http.Request) (map[string]string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	fields := make(map[string]string)
	switch ct {
	case "application/json":
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		for k, v := range body {
			switch v := v.(type) {
			case nil:
			case string:
				fields[k] = v
			default:
				fields[k] = fmt.Sprint(v)
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		for k := range r.PostForm {
			fields[k] = r.PostForm.Get(k)
		}
	default:
		return nil, errUnsupportedType
	}
	return fields, nil
}

// clientIP prefers the address reported by a fronting proxy.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
