package report

import "time"

type Overview struct {
	Period         string `json:"period"`
	TotalDonations int    `json:"total_donations"`
	TotalServings  int    `json:"total_servings"`
}

type MonthlyBucket struct {
	Month     string `json:"month"`
	Donations int    `json:"donations"`
	Servings  int    `json:"servings"`
}

type CategoryCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type PartnerStats struct {
	Name      string `json:"name"`
	Donations int    `json:"donations"`
	Servings  int    `json:"servings"`
}

type AreaStats struct {
	Area       string  `json:"area"`
	Servings   int     `json:"servings"`
	Percentage float64 `json:"percentage"`
}

// DonationsReport is the NGO-side partner view: top donor hotels plus the
// acceptance-month trend for the same window.
type DonationsReport struct {
	Period    string          `json:"period"`
	TopDonors []PartnerStats  `json:"top_donors"`
	Monthly   []MonthlyBucket `json:"monthly"`
}

type ImpactReport struct {
	Period             string      `json:"period"`
	DistributionByArea []AreaStats `json:"distribution_by_area"`
}

// HotelReport is the supplier-side reporting view over claimed donations.
type HotelReport struct {
	TotalDonations  int             `json:"total_donations"`
	TotalServings   int             `json:"total_servings"`
	PeopleFed       int             `json:"people_fed"`
	NgosServed      int             `json:"ngos_served"`
	AvgDonationSize int             `json:"avg_donation_size"`
	Monthly         []MonthlyBucket `json:"monthly"`
	FoodTypes       []CategoryCount `json:"food_types"`
	Ngos            []PartnerStats  `json:"ngos"`
}

type RecentDonation struct {
	DonationID string    `json:"donation_id"`
	Ngo        string    `json:"ngo"`
	Servings   int       `json:"servings"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// HotelDashboard keeps the legacy fixed 12-slot month-of-year counts.
type HotelDashboard struct {
	TotalDonations   int              `json:"total_donations"`
	TotalServings    int              `json:"total_servings"`
	PeopleFed        int              `json:"people_fed"`
	NgosServed       int              `json:"ngos_served"`
	MonthlyDonations []int            `json:"monthly_donations"`
	RecentDonations  []RecentDonation `json:"recent_donations"`
}
