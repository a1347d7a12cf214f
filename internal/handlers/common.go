// common.go
//
// Eco-scored rental listing service for the GreenLease platform
// Copyright (c) 2026 GreenLease <dev@greenlease.io>
//
// This file is part of greenlease.
// greenlease is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// greenlease is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with greenlease.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/types"
	"github.com/greenlease/greenlease/internal/utils"
)

// parseIDParam extracts a numeric id from a path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// floatQuery returns a float query parameter, nil when absent or malformed.
// A malformed value behaves like an absent one so the filter chain can fall
// through to the next mode instead of failing the request.
func floatQuery(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// boolQuery returns a boolean query parameter, nil when absent or malformed.
func boolQuery(c *fiber.Ctx, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// respondServiceError maps a service error onto the right response envelope:
// validation failures to 400, missing records to 404, anything else to an
// opaque 500.
func respondServiceError(c *fiber.Ctx, err error, notFoundMessage, errorType string) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr)
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
