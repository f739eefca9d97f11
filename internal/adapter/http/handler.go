// Package http adapts the editor and export surfaces to a fiber JSON API.
// Handlers orchestrate sessions, mutations and rendering; all document
// logic lives in the pure core packages.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ekosiswoyo/cv-generator/internal/advisor"
	"github.com/ekosiswoyo/cv-generator/internal/export"
	"github.com/ekosiswoyo/cv-generator/internal/i18n"
	"github.com/ekosiswoyo/cv-generator/internal/model"
	"github.com/ekosiswoyo/cv-generator/internal/mutate"
	"github.com/ekosiswoyo/cv-generator/internal/render"
	"github.com/ekosiswoyo/cv-generator/internal/session"
	"github.com/ekosiswoyo/cv-generator/pkg/infrastructure"
)

// PDFRenderer is the opaque print capability.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	store      *session.Store
	renderer   PDFRenderer
	logger     *zap.Logger
	renderOpts render.Options
}

func NewHandler(store *session.Store, renderer PDFRenderer, logger *zap.Logger, opts render.Options) *Handler {
	return &Handler{store: store, renderer: renderer, logger: logger, renderOpts: opts}
}

// Register mounts all routes. The specific session routes must come before
// the collection wildcards.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api/v1")
	api.Post("/sessions", h.CreateSession)
	api.Get("/sessions/:id/document", h.GetDocument)
	api.Patch("/sessions/:id/document", h.PatchDocument)
	api.Get("/sessions/:id/tips", h.Tips)
	api.Get("/sessions/:id/preview", h.Preview)
	api.Get("/sessions/:id/export", h.Export)
	api.Post("/sessions/:id/import", h.Import)
	api.Post("/sessions/:id/photo", h.UploadPhoto)
	api.Post("/sessions/:id/pdf", h.PrintPDF)
	api.Post("/sessions/:id/:collection", h.AppendItem)
	api.Patch("/sessions/:id/:collection/:index", h.UpdateItem)
	api.Delete("/sessions/:id/:collection/:index", h.RemoveItem)
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess := h.store.Create()
	h.logger.Info("session created", zap.String("id", sess.ID.String()))
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	doc, ok := h.document(c)
	if !ok {
		return nil
	}
	return c.JSON(doc)
}

func (h *Handler) PatchDocument(c *fiber.Ctx) error {
	id, ok := sessionID(c)
	if !ok {
		return nil
	}
	var patch mutate.DocumentPatch
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return badRequest(c, "invalid patch payload")
	}
	doc, err := h.store.Update(id, func(d model.Document) model.Document {
		return mutate.Apply(d, patch)
	})
	if errors.Is(err, session.ErrNotFound) {
		return notFound(c, "session not found")
	}
	return c.JSON(doc)
}

func (h *Handler) AppendItem(c *fiber.Ctx) error {
	id, ok := sessionID(c)
	if !ok {
		return nil
	}
	fn, known, parsed := appendFunc(c.Params("collection"), c.Body())
	if !known {
		return notFound(c, "unknown collection")
	}
	if !parsed {
		return badRequest(c, "invalid item payload")
	}
	doc, err := h.store.Update(id, fn)
	if errors.Is(err, session.ErrNotFound) {
		return notFound(c, "session not found")
	}
	return c.JSON(doc)
}

func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	return h.itemOp(c, true)
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	return h.itemOp(c, false)
}

// itemOp handles both update and remove: same addressing, same range
// check. The mutation layer treats a bad index as a no-op; here a stale
// index is reported so the client can refresh.
func (h *Handler) itemOp(c *fiber.Ctx, update bool) error {
	id, ok := sessionID(c)
	if !ok {
		return nil
	}
	collection := c.Params("collection")
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "invalid index")
	}
	doc, err := h.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		return notFound(c, "session not found")
	}
	if !mutate.InRange(doc, collection, index) {
		return notFound(c, "index out of range")
	}

	var fn func(model.Document) model.Document
	if update {
		var known, parsed bool
		fn, known, parsed = updateFunc(collection, index, c.Body())
		if !known {
			return notFound(c, "unknown collection")
		}
		if !parsed {
			return badRequest(c, "invalid patch payload")
		}
	} else {
		fn = removeFunc(collection, index)
		if fn == nil {
			return notFound(c, "unknown collection")
		}
	}

	doc, err = h.store.Update(id, fn)
	if errors.Is(err, session.ErrNotFound) {
		return notFound(c, "session not found")
	}
	return c.JSON(doc)
}

func (h *Handler) Tips(c *fiber.Ctx) error {
	doc, ok := h.document(c)
	if !ok {
		return nil
	}
	labels := i18n.Table(doc.Lang)
	tips := advisor.Tips(doc, labels)
	if tips == nil {
		tips = []string{}
	}
	resp := fiber.Map{"tips": tips}
	if len(tips) == 0 {
		resp["message"] = labels.TipsLookingGood
	}
	return c.JSON(resp)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, ok := h.document(c)
	if !ok {
		return nil
	}
	html, err := render.HTML(render.Compose(doc, h.renderOpts))
	if err != nil {
		h.logger.Error("preview render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	c.Type("html")
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	doc, ok := h.document(c)
	if !ok {
		return nil
	}
	payload, err := export.Marshal(doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(doc)))
	c.Type("json")
	return c.Send(payload)
}

func (h *Handler) Import(c *fiber.Ctx) error {
	id, ok := sessionID(c)
	if !ok {
		return nil
	}
	doc, err := export.Unmarshal(c.Body())
	if err != nil {
		// the session document is untouched on any import failure
		reason := "invalid JSON file"
		if errors.Is(err, export.ErrSchema) {
			reason = "file does not look like an exported CV"
		}
		h.logger.Warn("import rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": reason})
	}
	if err := h.store.Replace(id, doc); err != nil {
		return notFound(c, "session not found")
	}
	return c.JSON(doc)
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	id, ok := sessionID(c)
	if !ok {
		return nil
	}
	file, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "missing photo upload")
	}
	f, err := file.Open()
	if err != nil {
		return badRequest(c, "unreadable photo upload")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, infrastructure.MaxPhotoBytes+1))
	if err != nil {
		return badRequest(c, "unreadable photo upload")
	}

	dataURI, err := infrastructure.EncodePhoto(data)
	if err != nil {
		// corrupt or unsupported input keeps the previous photo; the
		// notice is informational, not an error
		doc, getErr := h.store.Get(id)
		if errors.Is(getErr, session.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return c.JSON(fiber.Map{"document": doc, "notice": "unsupported image ignored"})
	}

	doc, err := h.store.Update(id, func(d model.Document) model.Document {
		pi := d.PersonalInfo
		pi.Photo = dataURI
		return mutate.Apply(d, mutate.DocumentPatch{PersonalInfo: &pi})
	})
	if errors.Is(err, session.ErrNotFound) {
		return notFound(c, "session not found")
	}
	return c.JSON(fiber.Map{"document": doc})
}

func (h *Handler) PrintPDF(c *fiber.Ctx) error {
	doc, ok := h.document(c)
	if !ok {
		return nil
	}
	html, err := render.HTML(render.Compose(doc, h.renderOpts))
	if err != nil {
		h.logger.Error("pdf compose failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	var pdf []byte
	var renderErr error
	const attempts = 3
	for i := 0; i < attempts; i++ {
		pdf, renderErr = h.renderer.RenderHTMLToPDF(c.Context(), html)
		if renderErr == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		h.logger.Warn("pdf render attempt failed", zap.Int("attempt", i+1), zap.Error(renderErr))
		if i < attempts-1 {
			select {
			case <-time.After(time.Duration(1<<i) * time.Second):
			case <-c.Context().Done():
				return c.Context().Err()
			}
		}
	}
	if renderErr != nil {
		h.logger.Error("pdf render failed", zap.Error(renderErr))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pdf generation failed"})
	}

	name := export.DocumentTitle(doc, time.Now().Year()) + ".pdf"
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// document resolves the session and returns a copy of its document. When
// ok is false the response has already been written.
func (h *Handler) document(c *fiber.Ctx) (model.Document, bool) {
	id, ok := sessionID(c)
	if !ok {
		return model.Document{}, false
	}
	doc, err := h.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		_ = notFound(c, "session not found")
		return model.Document{}, false
	}
	return doc, true
}

func sessionID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = badRequest(c, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}
