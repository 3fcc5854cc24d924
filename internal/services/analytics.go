package services

import (
	"context"
	"time"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/models"
)

const newAlumniWindow = 30 * 24 * time.Hour

type AnalyticsService struct {
	policy *Policy
	r      *repos
	now    func() time.Time
}

// Overview scans every relevant kind on each call.
func (s *AnalyticsService) Overview(ctx context.Context, caller *identity.Identity) (dto.Analytics, error) {
	var out dto.Analytics
	if err := s.policy.Authorize(ctx, caller, ActionViewAnalytics, nil); err != nil {
		return out, err
	}

	users, err := s.r.users.Count(ctx)
	if err != nil {
		return out, err
	}
	alumni, err := s.r.alumni.List(ctx)
	if err != nil {
		return out, err
	}
	events, err := s.r.events.List(ctx)
	if err != nil {
		return out, err
	}
	donations, err := s.r.donations.List(ctx)
	if err != nil {
		return out, err
	}
	pairs, err := s.r.pairs.List(ctx)
	if err != nil {
		return out, err
	}

	out.TotalUsers = users
	out.TotalAlumni = len(alumni)
	out.TotalEvents = len(events)
	out.AlumniByIndustry = make(map[string]int)

	since := s.now().Add(-newAlumniWindow)
	for _, a := range alumni {
		if a.Industry != "" {
			out.AlumniByIndustry[a.Industry]++
		}
		if a.CreatedAt.After(since) {
			out.RecentActivity.NewAlumni++
		}
	}
	for _, e := range events {
		if e.IsActive {
			out.RecentActivity.NewEvents++
		}
	}
	for _, d := range donations {
		out.TotalDonations += d.Amount
	}
	for _, p := range pairs {
		if p.Status == models.PairActive {
			out.RecentActivity.ActiveMentorships++
		}
	}
	out.RecentActivity.TotalFundsRaised = out.TotalDonations
	return out, nil
}
