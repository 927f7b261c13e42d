package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"umamiconnector/internal/platform/config"

	docs "umamiconnector/internal/services/api/docs"
)

// docReader renders the generated document; tests swap it
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// SpecMutator edits the parsed document before it is served
type SpecMutator func(spec map[string]any)

var (
	mutMu    sync.Mutex
	mutators []SpecMutator
)

// Register adds a mutator applied to every served document
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// RenameHeader renames the shared header parameter from to to
func RenameHeader(from, to string) SpecMutator {
	return func(spec map[string]any) {
		params, _ := child(spec, "components", "parameters")
		for _, v := range params {
			if p, ok := v.(map[string]any); ok && p["in"] == "header" && p["name"] == from {
				p["name"] = to
			}
		}
	}
}

// serveDocJSON parses the embedded document per request so mutators registered
// after Mount still apply; CORE_API_DOCS_TITLE_SUFFIX is appended to the title
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalise(spec, "/api/v1")
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}
		addErrorSchema(spec)
		addDefaultResponse(spec, "400", "Bad Request", map[string]any{
			"status_code": 400,
			"status":      "Bad Request",
			"code":        5,
			"error":       "website_id is required",
			"field":       "website_id",
		})
		addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
			"status_code": 500,
			"status":      "Internal Server Error",
			"code":        1,
			"error":       "internal server error",
		})

		mutMu.Lock()
		for _, m := range mutators {
			m(spec)
		}
		mutMu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalise pins the document to OAS 3.0.3, the newest the UI renders,
// and adds a server entry for the API base when none is declared
func normalise(spec map[string]any, base string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

func addErrorSchema(spec map[string]any) {
	schemas := ensure(ensure(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "integer", "format": "int32"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": num,
			"status":      str,
			"code":        num,
			"error":       str,
			"field":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse gives every operation lacking status an ErrorResponse
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		ops, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			responses := ensure(op, "responses")
			if _, ok := responses[status]; !ok {
				responses[status] = resp
			}
		}
	}
}

func ensure(m map[string]any, key string) map[string]any {
	v, ok := m[key].(map[string]any)
	if !ok {
		v = map[string]any{}
		m[key] = v
	}
	return v
}

func child(m map[string]any, keys ...string) (map[string]any, bool) {
	for _, k := range keys {
		next, ok := m[k].(map[string]any)
		if !ok {
			return nil, false
		}
		m = next
	}
	return m, true
}
