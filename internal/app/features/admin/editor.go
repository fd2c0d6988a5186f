// internal/app/features/admin/editor.go
//
// Generic field-level editor over schema-less documents. The editor has
// no per-entity form code: it renders one input per stored key and
// writes whatever the administrator typed back as a patch.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	docstore "github.com/roboticsclub/robohub/internal/app/store/docs"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fieldPrefix marks form inputs that belong to the document working
// copy, separating them from the CSRF token and other form plumbing.
const fieldPrefix = "f_"

type fieldVM struct {
	Name      string
	Display   string
	Multiline bool
}

type collectionsVM struct {
	viewdata.BaseVM
	Collections []string
}

type docRowVM struct {
	ID      string
	Summary string
}

type docListVM struct {
	viewdata.BaseVM
	Collection string
	Docs       []docRowVM
}

type docEditVM struct {
	viewdata.BaseVM
	Collection string
	ID         string
	Fields     []fieldVM
	Message    string
}

// ServeCollections handles GET /admin/editor.
func (h *Handler) ServeCollections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	names, err := h.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing collections", err, "Could not load collections.", "/admin")
		return
	}
	sort.Strings(names)

	data := collectionsVM{
		BaseVM:      viewdata.NewBaseVM(r, "Document Editor", "/admin"),
		Collections: names,
	}
	templates.Render(w, r, "editor_collections", data)
}

// ServeDocList handles GET /admin/editor/{collection}.
func (h *Handler) ServeDocList(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := docstore.New(h.DB).GetAll(ctx, collection)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing documents", err, "Could not load documents.", "/admin/editor")
		return
	}

	rows := make([]docRowVM, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, docRowVM{ID: d.ID().Hex(), Summary: docSummary(d)})
	}

	data := docListVM{
		BaseVM:     viewdata.NewBaseVM(r, collection, "/admin/editor"),
		Collection: collection,
		Docs:       rows,
	}
	templates.Render(w, r, "editor_docs", data)
}

// ServeDoc handles GET /admin/editor/{collection}/{id}.
func (h *Handler) ServeDoc(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad document id", err, "Invalid link.", "/admin/editor/"+collection)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := docstore.New(h.DB).Get(ctx, collection, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "document not found", err, "That document does not exist.", "/admin/editor/"+collection)
		return
	}

	h.renderDoc(w, r, collection, id, doc, "")
}

func (h *Handler) renderDoc(w http.ResponseWriter, r *http.Request, collection string, id primitive.ObjectID, doc docstore.Document, msg string) {
	fields := make([]fieldVM, 0, len(doc))
	for _, f := range doc.Editable() {
		display := formatValue(f.Value)
		fields = append(fields, fieldVM{
			Name:      f.Name,
			Display:   display,
			Multiline: strings.ContainsAny(display, "\n") || len(display) > 80,
		})
	}

	data := docEditVM{
		BaseVM:     viewdata.NewBaseVM(r, collection+" document", "/admin/editor/"+collection),
		Collection: collection,
		ID:         id.Hex(),
		Fields:     fields,
		Message:    msg,
	}
	templates.Render(w, r, "editor_doc", data)
}

// HandleSave handles POST /admin/editor/{collection}/{id}. Every input
// carrying the field prefix becomes part of one whole-document patch.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad document id", err, "Invalid link.", "/admin/editor/"+collection)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/editor/"+collection)
		return
	}

	patch := bson.M{}
	for key, vals := range r.PostForm {
		name, ok := strings.CutPrefix(key, fieldPrefix)
		if !ok || name == "" || len(vals) == 0 {
			continue
		}
		patch[name] = parseValue(vals[0])
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := docstore.New(h.DB).Update(ctx, collection, id, patch); err != nil {
		h.ErrLog.LogServerError(w, r, "database error saving document", err, "Could not save the document.", "/admin/editor/"+collection)
		return
	}

	h.Log.Info("document patched",
		zap.String("collection", collection),
		zap.String("document", id.Hex()),
		zap.Int("fields", len(patch)))
	http.Redirect(w, r, "/admin/editor/"+collection+"/"+id.Hex(), http.StatusSeeOther)
}

// HandleAddField handles POST /admin/editor/{collection}/{id}/fields.
// A blank field name is a silent no-op back to the document page.
func (h *Handler) HandleAddField(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad document id", err, "Invalid link.", "/admin/editor/"+collection)
		return
	}

	name := strings.TrimSpace(r.FormValue("field"))
	value := parseValue(r.FormValue("value"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := docstore.New(h.DB).AddField(ctx, collection, id, name, value); err != nil {
		h.ErrLog.LogServerError(w, r, "database error adding field", err, "Could not add the field.", "/admin/editor/"+collection)
		return
	}

	http.Redirect(w, r, "/admin/editor/"+collection+"/"+id.Hex(), http.StatusSeeOther)
}

// HandleDeleteField handles POST /admin/editor/{collection}/{id}/fields/delete.
func (h *Handler) HandleDeleteField(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad document id", err, "Invalid link.", "/admin/editor/"+collection)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := docstore.New(h.DB).DeleteField(ctx, collection, id, r.FormValue("field")); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting field", err, "Could not delete the field.", "/admin/editor/"+collection)
		return
	}

	http.Redirect(w, r, "/admin/editor/"+collection+"/"+id.Hex(), http.StatusSeeOther)
}

// HandleDeleteDoc handles POST /admin/editor/{collection}/{id}/delete.
func (h *Handler) HandleDeleteDoc(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad document id", err, "Invalid link.", "/admin/editor/"+collection)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := docstore.New(h.DB).Delete(ctx, collection, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting document", err, "Could not delete the document.", "/admin/editor/"+collection)
		return
	}

	h.Log.Info("document deleted",
		zap.String("collection", collection),
		zap.String("document", id.Hex()))
	http.Redirect(w, r, "/admin/editor/"+collection, http.StatusSeeOther)
}

// parseValue turns raw form text into a stored value. Text that looks
// like JSON is opportunistically parsed into structured data; a parse
// failure keeps the raw text.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var structured any
		if err := json.Unmarshal([]byte(trimmed), &structured); err == nil {
			return structured
		}
	}
	return raw
}

// formatValue renders a stored value as editable text. Composite values
// round-trip through JSON so parseValue can read them back.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bson.D, bson.A, bson.M, []any, map[string]any:
		b, err := json.MarshalIndent(toPlain(v), "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// toPlain converts driver BSON containers into plain Go values that
// encoding/json renders as objects and arrays.
func toPlain(v any) any {
	switch t := v.(type) {
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = toPlain(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = toPlain(val)
		}
		return m
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toPlain(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toPlain(val)
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// docSummary picks a human-readable label for a document row, falling
// back to the hex ID when no name-like field exists.
func docSummary(d docstore.Document) string {
	for _, key := range []string{"name", "title", "event_name", "email", "year", "caption"} {
		if v, ok := d.Lookup(key); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return d.ID().Hex()
}
