package services

import (
	"cmp"
	"context"
	"strings"

	"alumni-portal/dto"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

type MentorFilter struct {
	ListQuery
	Industry     string
	Availability string
}

var mentorSortKeys = utils.SortKeys[models.Mentor]{
	"name":       func(a, b models.Mentor) int { return utils.CompareFold(a.Name, b.Name) },
	"rating":     func(a, b models.Mentor) int { return cmp.Compare(a.Rating, b.Rating) },
	"experience": func(a, b models.Mentor) int { return cmp.Compare(a.Experience, b.Experience) },
}

type MentorService struct {
	mentors *repository.Repository[models.Mentor]
}

func (s *MentorService) List(ctx context.Context, f MentorFilter) (dto.Page[models.Mentor], error) {
	all, err := s.mentors.List(ctx)
	if err != nil {
		return dto.Page[models.Mentor]{}, err
	}
	matched := filter(all, func(m models.Mentor) bool {
		if f.Industry != "" && !strings.EqualFold(f.Industry, m.Industry) {
			return false
		}
		if !utils.MatchExact(f.Availability, m.Availability) {
			return false
		}
		fields := append([]string{m.Name, m.Company, m.Position}, m.Expertise...)
		return utils.MatchAny(f.Search, fields...)
	})
	return page(matched, f.ListQuery, mentorSortKeys, "")
}
