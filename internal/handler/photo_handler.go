package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/middleware"
	"vehicle-service/internal/service"
)

type PhotoHandler struct {
	photoService service.PhotoService
	maxFileSize  int64
}

func NewPhotoHandler(photoService service.PhotoService, maxFileSize int64) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		maxFileSize:  maxFileSize,
	}
}

func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.BadRequest("Multipart form data is required")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return middleware.BadRequest("At least one file is required")
	}

	files := make([]domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > h.maxFileSize {
			return middleware.BadRequest(fmt.Sprintf("File %s exceeds the %d byte limit", fh.Filename, h.maxFileSize))
		}
		files = append(files, uploadFileFromHeader(fh))
	}

	result, err := h.photoService.Upload(c.Context(), c.Params("vehicleId"), identity.Scope(), files)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func uploadFileFromHeader(fh *multipart.FileHeader) domain.UploadFile {
	return domain.UploadFile{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	photos, err := h.photoService.ListForVehicle(c.Context(), c.Params("vehicleId"), identity.Scope())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(photos)
}

func (h *PhotoHandler) ServeFile(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	fileName := c.Params("fileName")
	reader, contentType, err := h.photoService.LoadAsResource(c.Context(), c.Params("vehicleId"), fileName, identity.Scope())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+fileName+`"`)
	return c.SendStream(reader)
}

func (h *PhotoHandler) DeleteSingle(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.photoService.DeleteSingle(c.Context(), c.Params("photoId"), identity.Scope()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(mutationResponse{
		Message: "Photo deleted successfully",
	})
}
