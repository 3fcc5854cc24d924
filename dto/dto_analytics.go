package dto

type RecentActivity struct {
	NewAlumni         int     `json:"newAlumni"`
	NewEvents         int     `json:"newEvents"`
	TotalFundsRaised  float64 `json:"totalFundsRaised"`
	ActiveMentorships int     `json:"activeMentorships"`
}

type Analytics struct {
	TotalUsers       int            `json:"totalUsers"`
	TotalAlumni      int            `json:"totalAlumni"`
	TotalEvents      int            `json:"totalEvents"`
	TotalDonations   float64        `json:"totalDonations"`
	AlumniByIndustry map[string]int `json:"alumniByIndustry"`
	RecentActivity   RecentActivity `json:"recentActivity"`
}
