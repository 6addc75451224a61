package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"video-service/internal/delivery/http/middleware"
	"video-service/internal/domain/dto"
	"video-service/internal/usecases"
	"video-service/pkg/constants"
	pkgerrors "video-service/pkg/errors"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type VideoHandler struct {
	pipeline usecases.VideoPipeline
	resolver *usecases.DeliveryResolver
	logger   *zap.Logger
}

func NewVideoHandler(pipeline usecases.VideoPipeline, resolver *usecases.DeliveryResolver, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{pipeline: pipeline, resolver: resolver, logger: logger}
}

func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "no_file",
			"message": "A video file is required",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, pkgerrors.ErrInternal(err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	video, err := h.pipeline.Ingest(c.UserContext(), middleware.OwnerID(c), src, fileHeader.Filename, contentType)
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		VideoID: video.VideoID.String(),
		Status:  video.Status,
	})
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("limit", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	list, err := h.pipeline.List(c.UserContext(), middleware.OwnerID(c), page, pageSize)
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return c.JSON(list)
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	video, err := h.pipeline.Get(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"video": dto.FromEntity(video)})
}

func (h *VideoHandler) Status(c *fiber.Ctx) error {
	video, err := h.pipeline.Get(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return c.JSON(dto.StatusResponse{Status: video.Status})
}

func (h *VideoHandler) RequestTranscode(c *fiber.Ctx) error {
	var req dto.TranscodeRequestDTO
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Malformed request body",
		})
	}
	if req.Preset == "" {
		req.Preset = constants.Preset720p
	}

	err := h.pipeline.RequestTranscode(c.UserContext(), middleware.OwnerID(c), c.Params("id"), req.Preset)
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Transcode started"})
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	err := h.pipeline.Delete(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

func (h *VideoHandler) Stream(c *fiber.Ctx) error {
	variant := constants.VariantOriginal
	if c.Query("variant") == constants.VariantTranscoded {
		variant = constants.VariantTranscoded
	}
	download := c.Query("download") == "1" || c.Query("download") == "true"

	video, err := h.pipeline.Get(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}

	deliverable, err := h.resolver.Resolve(c.UserContext(), video, variant, download)
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}

	if deliverable.Mode == usecases.ModeRedirect {
		return c.Redirect(deliverable.RedirectURL, fiber.StatusFound)
	}
	if err := serveObject(c, deliverable.Object, deliverable.Filename, download); err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return nil
}

func (h *VideoHandler) Thumbnail(c *fiber.Ctx) error {
	video, err := h.pipeline.Get(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}

	deliverable, err := h.resolver.Resolve(c.UserContext(), video, constants.VariantThumbnail, false)
	if err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}

	if deliverable.Mode == usecases.ModeRedirect {
		return c.Redirect(deliverable.RedirectURL, fiber.StatusFound)
	}
	if err := serveObject(c, deliverable.Object, deliverable.Filename, false); err != nil {
		return pkgerrors.HandleError(c, h.logger, err)
	}
	return nil
}
