// Package handler contains the echo handlers of the public API.
package handler

import (
	domainerrors "eats/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindRequest binds and validates req into a domain validation error.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// pathID parses a UUID path parameter. Malformed ids answer notFound,
// since no resource can carry them.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	return parseUUID(c.Param(name), notFound)
}

func parseUUID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
