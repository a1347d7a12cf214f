// property.go
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
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/utils"
	"gorm.io/gorm"
)

// PropertyHandler handles property listing routes
type PropertyHandler struct {
	DB *gorm.DB
}

// citySuggestions is the demo source for the city autocomplete endpoint.
var citySuggestions = []string{
	"San Francisco", "Los Angeles", "New York", "Chicago",
	"Seattle", "Portland", "Austin", "Denver", "Boston",
}

// ListProperties handles GET /api/properties
// @Summary Browse properties
// @Description Browse properties with an optional filter. Exactly one filter mode applies per request, in priority order: city, rent range, eco-score range, solar flag.
// @Tags Properties
// @Produce json
// @Param city query string false "City substring, case-insensitive"
// @Param minRent query number false "Minimum rent (requires maxRent)"
// @Param maxRent query number false "Maximum rent (requires minRent)"
// @Param minEcoScore query number false "Minimum eco score (requires maxEcoScore)"
// @Param maxEcoScore query number false "Maximum eco score (requires minEcoScore)"
// @Param solarPanels query boolean false "Solar panel presence"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	filter := &services.PropertyFilter{
		City:        strings.TrimSpace(c.Query("city")),
		MinRent:     floatQuery(c, "minRent"),
		MaxRent:     floatQuery(c, "maxRent"),
		MinEcoScore: floatQuery(c, "minEcoScore"),
		MaxEcoScore: floatQuery(c, "maxEcoScore"),
		SolarPanels: boolQuery(c, "solarPanels"),
	}

	properties, mode, err := services.FilterProperties(h.DB, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listProperties")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"properties": properties,
		"count":      len(properties),
		"filterMode": mode,
	})
}

// GetProperty handles GET /api/properties/:id
// @Summary Property detail
// @Description Property detail with its feedback and feedback statistics
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid property id", fiber.StatusBadRequest, "getProperty")
	}

	property, err := services.GetPropertyByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "Property not found", "getProperty")
	}

	feedback, err := services.GetFeedbackByPropertyID(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProperty")
	}

	stats, err := services.GetFeedbackStatistics(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProperty")
	}

	payload := fiber.Map{
		"property":         property,
		"ecoRatingDisplay": property.EcoRatingDisplay(),
		"fullAddress":      property.FullAddress(),
		"feedback":         feedback,
		"feedbackStats":    stats,
	}

	// A dangling landlord id just leaves the section out
	if property.LandlordID != 0 {
		if landlord, err := services.GetLandlordByID(h.DB, property.LandlordID); err == nil {
			payload["landlord"] = fiber.Map{
				"name":                landlord.FullName(),
				"company":             landlord.Company,
				"isVerified":          landlord.IsVerified,
				"sustainabilityLevel": landlord.SustainabilityLevel(),
			}
		}
	}

	return utils.SuccessResponse(c, payload, fiber.StatusOK)
}

// FeaturedProperties handles GET /api/properties/featured
// @Summary Featured eco-friendly properties
// @Description Properties in the excellent eco band plus portfolio statistics
// @Tags Properties
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/featured [get]
func (h *PropertyHandler) FeaturedProperties(c *fiber.Ctx) error {
	properties, err := services.GetEcoExcellentProperties(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "featuredProperties")
	}

	stats, err := services.GetEcoStatistics(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "featuredProperties")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"featuredProperties": properties,
		"stats":              stats,
	})
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Description Create a property; the eco score is computed from the supplied eco factors at save time
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body services.PropertyInput true "Property fields"
// @Success 201 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var in services.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "createProperty")
	}

	property, err := services.CreateProperty(h.DB, &in)
	if err != nil {
		return respondServiceError(c, err, "Property not found", "createProperty")
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property
// @Description Update a property; the eco score is recomputed from the new eco factors
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param property body services.PropertyInput true "Property fields"
// @Success 200 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid property id", fiber.StatusBadRequest, "updateProperty")
	}

	var in services.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "updateProperty")
	}

	property, err := services.UpdateProperty(h.DB, id, &in)
	if err != nil {
		return respondServiceError(c, err, "Property not found", "updateProperty")
	}

	return c.Status(fiber.StatusOK).JSON(property)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid property id", fiber.StatusBadRequest, "deleteProperty")
	}

	if err := services.DeleteProperty(h.DB, id); err != nil {
		return respondServiceError(c, err, "Property not found", "deleteProperty")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Property deleted",
		"ok":      true,
	})
}

// SearchByEcoTier handles GET /api/search/eco
// @Summary Search properties by eco tier
// @Description Filter on a named tier: excellent (8.0-10.0), good (6.0-7.9), fair (4.0-5.9). Unknown tiers fall back to all available properties.
// @Tags Search
// @Produce json
// @Param rating query string false "Tier label" default(excellent)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /search/eco [get]
func (h *PropertyHandler) SearchByEcoTier(c *fiber.Ctx) error {
	label := c.Query("rating", "excellent")

	properties, err := services.SearchByEcoTier(h.DB, label)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "searchByEcoTier")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"properties": properties,
		"count":      len(properties),
		"rating":     label,
	})
}

// CitySuggestions handles GET /api/search/cities
// @Summary City autocomplete
// @Tags Search
// @Produce json
// @Param query query string true "City prefix or fragment"
// @Success 200 {array} string
// @Router /search/cities [get]
func (h *PropertyHandler) CitySuggestions(c *fiber.Ctx) error {
	query := strings.ToLower(c.Query("query"))

	matches := make([]string, 0, 5)
	for _, city := range citySuggestions {
		if strings.Contains(strings.ToLower(city), query) {
			matches = append(matches, city)
			if len(matches) == 5 {
				break
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(matches)
}

// EcoStatistics handles GET /api/stats/eco
// @Summary Portfolio eco statistics
// @Description Property counts, average eco score, and derived solar/excellent percentages
// @Tags Statistics
// @Produce json
// @Success 200 {object} services.EcoStatistics
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /stats/eco [get]
func (h *PropertyHandler) EcoStatistics(c *fiber.Ctx) error {
	stats, err := services.GetEcoStatistics(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "ecoStatistics")
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
