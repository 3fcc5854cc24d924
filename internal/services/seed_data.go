package services

import (
	"time"

	"alumni-portal/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

var sampleAlumni = []models.Alumni{
	{
		ID:                       "1",
		Name:                     "Sarah Johnson",
		Email:                    "sarah.johnson@example.com",
		GradYear:                 2020,
		Degree:                   "Computer Science",
		Company:                  "Google",
		Position:                 "Senior Software Engineer",
		Location:                 "San Francisco, CA",
		Industry:                 "Technology",
		Skills:                   []string{"React", "Node.js", "Python", "Machine Learning"},
		Bio:                      "Passionate about building scalable web applications and mentoring young developers.",
		IsAvailableForMentorship: true,
		Experience: []models.Experience{{
			Company:     "Google",
			Position:    "Senior Software Engineer",
			Duration:    "2022 - Present",
			Description: "Leading development of cloud infrastructure tools",
		}},
		Achievements: []string{"Google Cloud Certified Architect", "Tech Women Leadership Award"},
		Interests:    []string{"AI/ML", "Open Source", "Mentoring"},
		JoinedDate:   "2020-06-01",
		LastActive:   "2024-01-15",
		CreatedAt:    day("2020-06-01"),
	},
	{
		ID:                       "2",
		Name:                     "Michael Chen",
		Email:                    "michael.chen@example.com",
		GradYear:                 2018,
		Degree:                   "Business Administration",
		Company:                  "McKinsey & Company",
		Position:                 "Senior Consultant",
		Location:                 "New York, NY",
		Industry:                 "Consulting",
		Skills:                   []string{"Strategy", "Data Analysis", "Project Management", "Leadership"},
		Bio:                      "Strategy consultant helping companies drive digital transformation.",
		IsAvailableForMentorship: true,
		Experience: []models.Experience{{
			Company:     "McKinsey & Company",
			Position:    "Senior Consultant",
			Duration:    "2020 - Present",
			Description: "Leading strategic consulting projects for Fortune 500 clients",
		}},
		Achievements: []string{"MBA from Wharton", "Strategy Excellence Award"},
		Interests:    []string{"Digital Strategy", "Entrepreneurship", "Venture Capital"},
		JoinedDate:   "2018-05-15",
		LastActive:   "2024-01-10",
		CreatedAt:    day("2018-05-15"),
	},
}

var sampleMentors = []models.Mentor{
	{
		ID:           "1",
		Name:         "Sarah Johnson",
		Position:     "Senior Software Engineer",
		Company:      "Google",
		Industry:     "Technology",
		Expertise:    []string{"React", "Node.js", "Python", "Machine Learning"},
		Experience:   6,
		Rating:       4.9,
		TotalMentees: 12,
		Bio:          "Passionate about building scalable web applications and mentoring young developers.",
		Availability: "available",
		Location:     "San Francisco, CA",
	},
	{
		ID:           "2",
		Name:         "Michael Chen",
		Position:     "Senior Consultant",
		Company:      "McKinsey & Company",
		Industry:     "Consulting",
		Expertise:    []string{"Strategy", "Data Analysis", "Project Management", "Leadership"},
		Experience:   8,
		Rating:       4.8,
		TotalMentees: 8,
		Bio:          "Strategy consultant helping companies drive digital transformation.",
		Availability: "available",
		Location:     "New York, NY",
	},
}

var sampleCampaigns = []models.Campaign{
	{
		ID:          "1",
		Title:       "New Computer Lab Initiative",
		Description: "Help us build a state-of-the-art computer lab for students to learn coding and technology skills.",
		Goal:        50000,
		Raised:      32500,
		DonorCount:  45,
		Category:    "education",
		Organizer:   "Alumni Association",
		Deadline:    "2024-12-31",
		IsActive:    true,
		CreatedAt:   day("2024-01-01"),
	},
	{
		ID:          "2",
		Title:       "Scholarship Fund for Underserved Students",
		Description: "Support deserving students who need financial assistance to pursue their education.",
		Goal:        100000,
		Raised:      68750,
		DonorCount:  128,
		Category:    "scholarship",
		Organizer:   "Alumni Association",
		Deadline:    "2024-12-31",
		IsActive:    true,
		CreatedAt:   day("2024-01-01"),
	},
}

var sampleEvents = []models.Event{
	{
		ID:                   "1",
		Title:                "Annual Alumni Reunion 2024",
		Description:          "Join us for our annual reunion celebration with networking, dinner, and entertainment.",
		Date:                 "2024-06-15",
		Time:                 "18:00",
		Location:             "Grand Ballroom, City Hotel",
		Type:                 "reunion",
		Capacity:             200,
		RegisteredCount:      156,
		Organizer:            "Alumni Association",
		RegistrationDeadline: "2024-06-10",
		Price:                75,
		IsActive:             true,
	},
	{
		ID:                   "2",
		Title:                "Tech Career Workshop",
		Description:          "Learn about the latest trends in technology careers and get tips from industry experts.",
		Date:                 "2024-03-20",
		Time:                 "14:00",
		Location:             "University Tech Center",
		Type:                 "workshop",
		Capacity:             50,
		RegisteredCount:      32,
		Organizer:            "Tech Alumni Group",
		RegistrationDeadline: "2024-03-18",
		Price:                0,
		IsActive:             true,
	},
}

var sampleProblems = []models.ProblemStatement{
	{
		ID:           "1",
		Title:        "Smart Attendance System for Rural Schools",
		Description:  "Design a low-cost attendance system that works with intermittent connectivity.",
		Organization: "Ministry of Education",
		Department:   "Department of School Education",
		Category:     "Software",
		Theme:        "Smart Education",
		PSNumber:     "PS001",
		Deadline:     "2024-12-31",
		CreatedAt:    day("2024-01-01"),
	},
	{
		ID:           "2",
		Title:        "Soil Moisture Sensing for Small Farms",
		Description:  "Build an affordable sensor kit that reports soil moisture to farmers over SMS.",
		Organization: "Ministry of Agriculture",
		Department:   "Department of Agriculture Research",
		Category:     "Hardware",
		Theme:        "Agriculture, FoodTech & Rural Development",
		PSNumber:     "PS002",
		Deadline:     "2024-12-31",
		CreatedAt:    day("2024-01-01"),
	},
	{
		ID:           "3",
		Title:        "Alumni Skill Matching for Internships",
		Description:  "Match students with alumni offering internships based on skills and interests.",
		Organization: "Alumni Association",
		Department:   "Career Services",
		Category:     "Software",
		Theme:        "Smart Education",
		PSNumber:     "PS003",
		Deadline:     "2024-11-30",
		CreatedAt:    day("2024-01-01"),
	},
}
