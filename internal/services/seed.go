package services

import (
	"context"
	"log"
)

const (
	SeedAlreadyExists = "Sample data already exists"
	SeedInitialized   = "Sample data initialized successfully"
)

type SeedService struct {
	r *repos
}

// InitSampleData writes the demo records unless any alumni exist. Demo
// records have fixed ids, so two concurrent calls write the same keys.
func (s *SeedService) InitSampleData(ctx context.Context) (string, error) {
	n, err := s.r.alumni.Count(ctx)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return SeedAlreadyExists, nil
	}

	for i := range sampleAlumni {
		a := sampleAlumni[i]
		if err := s.r.alumni.Put(ctx, a.ID, &a); err != nil {
			return "", err
		}
	}
	for i := range sampleMentors {
		m := sampleMentors[i]
		if err := s.r.mentors.Put(ctx, m.ID, &m); err != nil {
			return "", err
		}
	}
	for i := range sampleCampaigns {
		c := sampleCampaigns[i]
		if err := s.r.campaigns.Put(ctx, c.ID, &c); err != nil {
			return "", err
		}
	}
	for i := range sampleEvents {
		e := sampleEvents[i]
		if err := s.r.events.Put(ctx, e.ID, &e); err != nil {
			return "", err
		}
	}
	for i := range sampleProblems {
		p := sampleProblems[i]
		if err := s.r.problems.Put(ctx, p.ID, &p); err != nil {
			return "", err
		}
	}

	log.Printf("seed: wrote %d alumni, %d mentors, %d campaigns, %d events, %d problem statements",
		len(sampleAlumni), len(sampleMentors), len(sampleCampaigns), len(sampleEvents), len(sampleProblems))
	return SeedInitialized, nil
}
