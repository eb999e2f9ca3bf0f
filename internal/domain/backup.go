package domain

import "time"

const BackupVersion = "1.0"

// Backup is the wholesale export/import document. Import replaces all
// five collections; missing collections default to empty.
type Backup struct {
	ExportDate time.Time  `json:"exportDate"`
	Version    string     `json:"version"`
	Data       BackupData `json:"data"`
}

type BackupData struct {
	Categories []Category `json:"categories"`
	Authors    []Author   `json:"authors"`
	Books      []Book     `json:"books"`
	Members    []Member   `json:"members"`
	Loans      []Loan     `json:"loans"`
}

type BackupService interface {
	Export() (*Backup, error)
	Import(backup *Backup) error
}

// DashboardStats are the headline counters of the statistics dashboard.
type DashboardStats struct {
	TotalBooks      int `json:"totalBooks"`
	TotalMembers    int `json:"totalMembers"`
	TotalCategories int `json:"totalCategories"`
	ActiveLoans     int `json:"activeLoans"`
	OverdueLoans    int `json:"overdueLoans"`
}

// CategoryStats breaks book availability down per category.
type CategoryStats struct {
	CategoryID      string  `json:"categoryId"`
	Name            string  `json:"name"`
	TotalBooks      int     `json:"totalBooks"`
	Available       int     `json:"available"`
	OnLoan          int     `json:"onLoan"`
	AvailabilityPct float64 `json:"availabilityPct"`
}

type StatsService interface {
	Dashboard() DashboardStats
	Categories() []CategoryStats
}
