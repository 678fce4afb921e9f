package controller

import (
	"errors"
	"strings"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/serverutils"
	"soundkey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HarmonyErrorStatus maps query engine errors onto HTTP statuses.
func HarmonyErrorStatus(err error) (int, bool) {
	switch {
	case service.IsValidationError(err):
		return fiber.StatusBadRequest, true
	case errors.Is(err, service.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable, true
	case errors.Is(err, service.ErrReconstructionFailure):
		return fiber.StatusInternalServerError, true
	}
	return 0, false
}

// parseQuery binds and validates query parameters into req.
func parseQuery(ctx *fiber.Ctx, req any) error {
	if err := ctx.QueryParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return serverutils.ValidateRequest(req)
}

// noteList splits a comma-separated note list. Tokens are canonicalized
// where possible ("db" becomes "C#"); anything else is passed through so
// validation can name it. A blank list yields nil.
func noteList(raw string) entity.NoteSource {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	notes := make(entity.RawNotes, len(parts))
	for i, p := range parts {
		notes[i] = canonicalNote(p)
	}
	return notes
}

func canonicalNote(raw string) string {
	if pc, err := entity.ParsePitchClass(raw); err == nil {
		return string(pc)
	}
	return strings.TrimSpace(raw)
}

// optionalNote canonicalizes a single optional note parameter.
func optionalNote(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return canonicalNote(raw)
}
