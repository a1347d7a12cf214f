package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/models"
	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/utils"
	"gorm.io/gorm"
)

// FeedbackHandler handles tenant feedback routes
type FeedbackHandler struct {
	DB *gorm.DB
}

// SubmitFeedback handles POST /api/feedback
// @Summary Submit tenant feedback
// @Description Submit feedback for a property. Verification and recommendation are derived at save time and never taken from the request.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body services.FeedbackInput true "Feedback fields"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	var in services.FeedbackInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "submitFeedback")
	}

	if _, err := services.GetPropertyByID(h.DB, uint64(in.PropertyID)); err != nil {
		return respondServiceError(c, err, "Property not found", "submitFeedback")
	}

	feedback, err := services.SaveFeedback(h.DB, &in)
	if err != nil {
		return respondServiceError(c, err, "Property not found", "submitFeedback")
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// ListFeedbackByProperty handles GET /api/feedback/property/:propertyId
// @Summary Feedback for a property
// @Description Feedback entries for a property, newest first, with verified-only rating averages
// @Tags Feedback
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /feedback/property/{propertyId} [get]
func (h *FeedbackHandler) ListFeedbackByProperty(c *fiber.Ctx) error {
	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid property id", fiber.StatusBadRequest, "listFeedback")
	}

	if _, err := services.GetPropertyByID(h.DB, propertyID); err != nil {
		return respondServiceError(c, err, "Property not found", "listFeedback")
	}

	feedback, err := services.GetFeedbackByPropertyID(h.DB, propertyID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listFeedback")
	}

	avgRating, err := services.GetAverageRatingForProperty(h.DB, propertyID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listFeedback")
	}

	avgEcoRating, err := services.GetAverageEcoRatingForProperty(h.DB, propertyID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listFeedback")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"feedback":         feedback,
		"count":            len(feedback),
		"averageRating":    avgRating,
		"averageEcoRating": avgEcoRating,
	})
}

// FeedbackStats handles GET /api/feedback/property/:propertyId/stats
// @Summary Feedback statistics for a property
// @Tags Feedback
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} services.FeedbackStatistics
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /feedback/property/{propertyId}/stats [get]
func (h *FeedbackHandler) FeedbackStats(c *fiber.Ctx) error {
	propertyID, err := parseIDParam(c, "propertyId")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid property id", fiber.StatusBadRequest, "feedbackStats")
	}

	if _, err := services.GetPropertyByID(h.DB, propertyID); err != nil {
		return respondServiceError(c, err, "Property not found", "feedbackStats")
	}

	stats, err := services.GetFeedbackStatistics(h.DB, propertyID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "feedbackStats")
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// ManageFeedback handles GET /api/feedback
// @Summary List feedback for moderation
// @Description All feedback across the platform, one property's when propertyId is given, or verified entries only when verified=true
// @Tags Feedback
// @Produce json
// @Param propertyId query int false "Limit to one property"
// @Param verified query bool false "Verified entries only"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /feedback [get]
func (h *FeedbackHandler) ManageFeedback(c *fiber.Ctx) error {
	var (
		feedback []models.Feedback
		err      error
	)

	if propertyID := c.QueryInt("propertyId"); propertyID > 0 {
		feedback, err = services.GetFeedbackByPropertyID(h.DB, uint64(propertyID))
	} else if c.QueryBool("verified") {
		feedback, err = services.GetVerifiedFeedback(h.DB)
	} else {
		feedback, err = services.GetAllFeedback(h.DB)
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "manageFeedback")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"feedback": feedback,
		"count":    len(feedback),
	})
}

// VerifyFeedback handles POST /api/feedback/:id/verify
// @Summary Verify a feedback entry
// @Description Mark a feedback entry as verified. Verification is never reverted.
// @Tags Feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} models.Feedback
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /feedback/{id}/verify [post]
func (h *FeedbackHandler) VerifyFeedback(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid feedback id", fiber.StatusBadRequest, "verifyFeedback")
	}

	feedback, err := services.VerifyFeedback(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "Feedback not found", "verifyFeedback")
	}

	return c.Status(fiber.StatusOK).JSON(feedback)
}

// DeleteFeedback handles DELETE /api/feedback/:id
// @Summary Delete a feedback entry
// @Tags Feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid feedback id", fiber.StatusBadRequest, "deleteFeedback")
	}

	if err := services.DeleteFeedback(h.DB, id); err != nil {
		return respondServiceError(c, err, "Feedback not found", "deleteFeedback")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Feedback deleted",
		"ok":      true,
	})
}
