package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/middleware"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/internlink/internlink-backend/internal/storage"
)

// currentUser returns the identity resolved by the middleware chain.
func currentUser(c *fiber.Ctx) *models.User {
	return middleware.UserFrom(c)
}

var errInvalidID = errors.New("invalid id")

// parseID validates a route id as a positive integer before any storage call.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	n, err := strconv.Atoi(c.Params(param))
	if err != nil || n < 1 {
		return 0, errInvalidID
	}
	return uint(n), nil
}

// saveOptionalUpload stores the named multipart file when present. An absent
// field is not an error; an invalid one is.
func saveOptionalUpload(store *storage.Store, c *fiber.Ctx, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}
	name, err := store.Save(field, fh)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func isUploadError(err error) bool {
	return errors.Is(err, storage.ErrInvalidFileType) ||
		errors.Is(err, storage.ErrUnexpectedField) ||
		errors.Is(err, storage.ErrFileTooLarge)
}

// uploadError distinguishes a rejected file (client's fault) from a disk
// failure.
func uploadError(c *fiber.Ctx, err error) error {
	if isUploadError(err) {
		return badRequest(c, err.Error())
	}
	return serverError(c)
}
