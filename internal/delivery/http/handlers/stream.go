package handlers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"video-service/internal/domain/repositories"
	pkgerrors "video-service/pkg/errors"
)

// defaultChunkSize caps the window served for an open-ended range request,
// matching what browser video players expect when they probe with
// "bytes=0-".
const defaultChunkSize int64 = 1 * 1024 * 1024

// parseRange handles single "bytes=start-end" ranges. The end is optional;
// an open range is capped at defaultChunkSize. Suffix ranges ("bytes=-500")
// are rejected.
func parseRange(header string, size int64) (start, end int64, err error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, fmt.Errorf("unsupported range unit: %q", header)
	}
	first, last, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, fmt.Errorf("malformed range: %q", header)
	}

	start, err = strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("malformed range start: %q", header)
	}
	if start >= size {
		return 0, 0, fmt.Errorf("range start %d beyond size %d", start, size)
	}

	if last == "" {
		end = start + defaultChunkSize - 1
	} else {
		end, err = strconv.ParseInt(last, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed range end: %q", header)
		}
	}
	if end >= size {
		end = size - 1
	}
	if end < start {
		return 0, 0, fmt.Errorf("range end before start: %q", header)
	}
	return start, end, nil
}

// serveObject writes an object to the response, honoring a Range request
// header. The object's reader is handed to fasthttp, which closes it when
// the response body has been sent.
func serveObject(c *fiber.Ctx, obj *repositories.Object, filename string, wantsDownload bool) error {
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Set(fiber.HeaderContentType, obj.ContentType)
	if wantsDownload {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	}

	rangeHeader := c.Get(fiber.HeaderRange)
	if rangeHeader == "" {
		c.Response().SetBodyStream(obj.Reader, int(obj.Size))
		return nil
	}

	start, end, err := parseRange(rangeHeader, obj.Size)
	if err != nil {
		obj.Close()
		return pkgerrors.ErrInvalidRange(err)
	}
	if _, err := obj.Reader.Seek(start, io.SeekStart); err != nil {
		obj.Close()
		return pkgerrors.ErrInternal(err)
	}

	length := end - start + 1
	c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", start, end, obj.Size))
	c.Status(fiber.StatusPartialContent)
	c.Response().SetBodyStream(&closingLimitedReader{
		reader: io.LimitReader(obj.Reader, length),
		closer: obj.Reader,
	}, int(length))
	return nil
}

type closingLimitedReader struct {
	reader io.Reader
	closer io.Closer
}

func (r *closingLimitedReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *closingLimitedReader) Close() error {
	return r.closer.Close()
}
