package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/apperrors"
	"etalase/internal/storage"
)

// MaxUploadSize is the upload ceiling. It doubles as backpressure against
// unbounded memory and disk use.
const MaxUploadSize = 50 * 1024 * 1024

// allowedMediaTypes is the set of declared content types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":       true,
	"image/png":        true,
	"image/gif":        true,
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/webm":       true,
	"video/x-matroska": true,
}

// UploadHandler handles media uploads and direct media deletion. It is
// independent of product records: it only produces reference strings, and
// associating them with a product is the client's business via a later
// create or update call.
type UploadHandler struct {
	store storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
	// Wildcard because public ids may contain folder slashes.
	router.Delete("/upload/*", h.HandleDeleteMedia)
}

// HandleUpload accepts exactly one file in the "file" form field, validates
// its declared type and size before any bytes are forwarded, and stores it.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "A single file is required in the \"file\" field",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		return errorResponse(c, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedMediaType, contentType))
	}
	if fileHeader.Size > MaxUploadSize {
		return errorResponse(c, fmt.Errorf("%w: %d bytes", apperrors.ErrPayloadTooLarge, fileHeader.Size))
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return errorResponse(c, fmt.Errorf("%w: could not read upload: %v", apperrors.ErrBackend, err))
	}
	defer file.Close()

	result, err := h.store.Upload(c.UserContext(), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		log.Printf("Error storing uploaded file %s: %v", fileHeader.Filename, err)
		return errorResponse(c, fmt.Errorf("%w: upload failed: %v", apperrors.ErrBackend, err))
	}

	resp := fiber.Map{
		"success":      true,
		"fileName":     result.FileName,
		"filePath":     result.FilePath,
		"resourceType": string(storage.ResourceTypeFor(contentType)),
		"size":         result.Size,
	}
	if result.PublicID != "" {
		resp["publicId"] = result.PublicID
	}
	return c.JSON(resp)
}

// HandleDeleteMedia removes a stored object by its public id. The optional
// "type" query parameter tags the object class (image or video).
func (h *UploadHandler) HandleDeleteMedia(c *fiber.Ctx) error {
	publicID := c.Params("*")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "A public id is required",
		})
	}

	resourceType := storage.ResourceImage
	if c.Query("type") == string(storage.ResourceVideo) {
		resourceType = storage.ResourceVideo
	}

	if err := h.store.Delete(c.UserContext(), publicID, resourceType); err != nil {
		log.Printf("Error deleting media %s: %v", publicID, err)
		return errorResponse(c, fmt.Errorf("%w: media delete failed: %v", apperrors.ErrBackend, err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Media deleted successfully",
	})
}
