package services

import (
	"cmp"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

type CampaignFilter struct {
	ListQuery
	Category string
	Active   *bool
}

type DonationFilter struct {
	ListQuery
	CampaignID string
}

var (
	campaignSortKeys = utils.SortKeys[models.Campaign]{
		"title":     func(a, b models.Campaign) int { return utils.CompareFold(a.Title, b.Title) },
		"goal":      func(a, b models.Campaign) int { return cmp.Compare(a.Goal, b.Goal) },
		"raised":    func(a, b models.Campaign) int { return cmp.Compare(a.Raised, b.Raised) },
		"deadline":  func(a, b models.Campaign) int { return cmp.Compare(a.Deadline, b.Deadline) },
		"createdAt": func(a, b models.Campaign) int { return a.CreatedAt.Compare(b.CreatedAt) },
	}
	donationSortKeys = utils.SortKeys[models.Donation]{
		"date":   func(a, b models.Donation) int { return a.Date.Compare(b.Date) },
		"amount": func(a, b models.Donation) int { return cmp.Compare(a.Amount, b.Amount) },
	}
)

type DonationService struct {
	policy    *Policy
	campaigns *repository.Repository[models.Campaign]
	donations *repository.Repository[models.Donation]
	now       func() time.Time
}

func (s *DonationService) ListCampaigns(ctx context.Context, f CampaignFilter) (dto.Page[models.Campaign], error) {
	all, err := s.campaigns.List(ctx)
	if err != nil {
		return dto.Page[models.Campaign]{}, err
	}
	matched := filter(all, func(c models.Campaign) bool {
		if f.Active != nil && *f.Active != c.IsActive {
			return false
		}
		return utils.MatchExact(f.Category, c.Category) && utils.MatchAny(f.Search, c.Title, c.Description, c.Organizer)
	})
	return page(matched, f.ListQuery, campaignSortKeys, "")
}

func (s *DonationService) ListDonations(ctx context.Context, f DonationFilter) (dto.Page[models.Donation], error) {
	all, err := s.donations.List(ctx)
	if err != nil {
		return dto.Page[models.Donation]{}, err
	}
	matched := filter(all, func(d models.Donation) bool {
		return utils.MatchExact(f.CampaignID, d.CampaignID) && utils.MatchAny(f.Search, d.CampaignTitle, d.DonorName, d.Message)
	})
	return page(matched, f.ListQuery, donationSortKeys, "-date")
}

// Stats counts distinct donor names; MyDonations is only filled for a known
// caller.
func (s *DonationService) Stats(ctx context.Context, caller *identity.Identity) (dto.DonationStats, error) {
	var stats dto.DonationStats

	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return stats, err
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return stats, err
	}

	donors := make(map[string]struct{})
	for _, d := range donations {
		stats.TotalRaised += d.Amount
		donors[d.DonorName] = struct{}{}
		if caller != nil && d.DonorID != "" && d.DonorID == caller.ID {
			stats.MyDonations++
		}
	}
	stats.TotalDonors = len(donors)
	for _, c := range campaigns {
		if c.IsActive {
			stats.ActiveCampaigns++
		}
	}
	return stats, nil
}

// Donate writes the donation and then adds it to the campaign totals. A
// failure between the two leaves the campaign totals behind the donations.
func (s *DonationService) Donate(ctx context.Context, caller *identity.Identity, req dto.DonationRequest) (*models.Donation, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, Invalid("amount must be greater than 0")
	}
	if req.CampaignID == "" {
		return nil, Invalid("campaignId is required")
	}

	campaign, err := s.campaigns.Get(ctx, req.CampaignID)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound("Campaign not found")
	}
	if err != nil {
		return nil, err
	}

	title := req.CampaignTitle
	if title == "" {
		title = campaign.Title
	}
	donor := req.DonorName
	if donor == "" {
		donor = caller.DisplayName()
	}

	d := &models.Donation{
		ID:            uuid.NewString(),
		CampaignID:    req.CampaignID,
		CampaignTitle: title,
		Amount:        req.Amount,
		DonorID:       caller.ID,
		DonorName:     donor,
		Message:       req.Message,
		IsAnonymous:   req.IsAnonymous,
		Date:          s.now().UTC(),
	}
	if err := s.donations.Put(ctx, d.ID, d); err != nil {
		return nil, err
	}

	_, err = s.campaigns.Update(ctx, req.CampaignID, func(c *models.Campaign) error {
		c.Raised += d.Amount
		c.DonorCount++
		return nil
	})
	if err != nil {
		log.Printf("donate: donation %s stored but campaign %s totals not updated: %v", d.ID, req.CampaignID, err)
		return nil, err
	}
	return d, nil
}
