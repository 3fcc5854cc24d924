package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
	"alumni-portal/internal/utils"
)

type DonationHandler struct {
	donations *services.DonationService
}

func NewDonationHandler(d *services.DonationService) *DonationHandler {
	return &DonationHandler{donations: d}
}

// Campaigns godoc
// @Summary List fundraising campaigns
// @Tags donations
// @Produce json
// @Param category query string false "Category"
// @Param active query bool false "Active campaigns only"
// @Success 200 {object} dto.Page[models.Campaign]
// @Router /campaigns [get]
func (h *DonationHandler) Campaigns(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.donations.ListCampaigns(ctx, services.CampaignFilter{
		ListQuery: listQuery(c, 0),
		Category:  c.Query("category"),
		Active:    utils.ParseBoolFilter(c.Query("active")),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// Donations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param campaignId query string false "Campaign ID"
// @Success 200 {object} dto.Page[models.Donation]
// @Router /donations [get]
func (h *DonationHandler) Donations(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.donations.ListDonations(ctx, services.DonationFilter{
		ListQuery:  listQuery(c, 0),
		CampaignID: c.Query("campaignId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// Stats godoc
// @Summary Donation totals
// @Description myDonations is counted only when a valid token is sent.
// @Tags donations
// @Produce json
// @Success 200 {object} dto.DonationStats
// @Router /donation-stats [get]
func (h *DonationHandler) Stats(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stats, err := h.donations.Stats(ctx, middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Donate godoc
// @Summary Donate to a campaign
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.DonationRequest true "Donation"
// @Success 201 {object} models.Donation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /donations [post]
func (h *DonationHandler) Donate(c *fiber.Ctx) error {
	var body dto.DonationRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.donations.Donate(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}
