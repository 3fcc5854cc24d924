package dto

type DonationRequest struct {
	CampaignID    string  `json:"campaignId" validate:"required"`
	CampaignTitle string  `json:"campaignTitle,omitempty"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	DonorName     string  `json:"donorName,omitempty"`
	Message       string  `json:"message,omitempty" validate:"max=1000"`
	IsAnonymous   bool    `json:"isAnonymous"`
}

type DonationStats struct {
	TotalRaised     float64 `json:"totalRaised"`
	TotalDonors     int     `json:"totalDonors"`
	ActiveCampaigns int     `json:"activeCampaigns"`
	MyDonations     int     `json:"myDonations"`
}
