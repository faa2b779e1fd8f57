package handlers

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized means the auth middleware did not leave a usable
// user ID in the context.
var ErrUnauthorized = errors.New("unauthorized")

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getIntParam reads an integer query parameter, falling back to the
// default on absence or garbage input.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}
	return value
}
