package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"storehub/internal/errs"
	"storehub/internal/storage"
)

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// saveImage stores the file sent under field and returns its public path.
// A missing file returns nil without error.
func saveImage(c *fiber.Ctx, images storage.ImageStore, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.KindValidation, "Invalid upload", err)
	}
	path, err := images.Save(fh)
	switch {
	case errors.Is(err, storage.ErrNotImage):
		return nil, errs.Wrap(errs.KindValidation, "Only image files are allowed!", err)
	case errors.Is(err, storage.ErrTooLarge):
		return nil, errs.Wrap(errs.KindValidation, "Image is too large", err)
	case err != nil:
		return nil, err
	}
	return &path, nil
}

// discardImage removes an image saved for a write that then failed and
// returns cause, joined with any removal failure.
func discardImage(images storage.ImageStore, path *string, cause error) error {
	if path == nil {
		return cause
	}
	if err := images.Remove(*path); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
