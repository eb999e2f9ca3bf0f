package service

import (
	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

// StatsService aggregates the dashboard numbers from the repositories.
// All reads, no mutation.
type StatsService struct {
	books      domain.BookRepository
	categories domain.CategoryRepository
	members    domain.MemberRepository
	loans      domain.LoanRepository
	logger     logger.Logger
}

func NewStatsService(
	books domain.BookRepository,
	categories domain.CategoryRepository,
	members domain.MemberRepository,
	loans domain.LoanRepository,
	log logger.Logger,
) domain.StatsService {
	return &StatsService{
		books:      books,
		categories: categories,
		members:    members,
		loans:      loans,
		logger:     log,
	}
}

func (s *StatsService) Dashboard() domain.DashboardStats {
	return domain.DashboardStats{
		TotalBooks:      s.books.Count(),
		TotalMembers:    s.members.Count(),
		TotalCategories: s.categories.Count(),
		ActiveLoans:     len(s.loans.GetActive()),
		OverdueLoans:    len(s.loans.GetOverdue()),
	}
}

// Categories breaks the book stock down per category: total, available,
// on loan, and the availability percentage shown on the dashboard.
func (s *StatsService) Categories() []domain.CategoryStats {
	books := s.books.GetAll()

	stats := []domain.CategoryStats{}
	for _, category := range s.categories.GetAll() {
		entry := domain.CategoryStats{
			CategoryID: category.ID,
			Name:       category.Name,
		}

		for _, book := range books {
			if book.CategoryID != category.ID {
				continue
			}
			entry.TotalBooks++
			if book.Availability {
				entry.Available++
			} else {
				entry.OnLoan++
			}
		}

		if entry.TotalBooks > 0 {
			entry.AvailabilityPct = float64(entry.Available) / float64(entry.TotalBooks) * 100
		}

		stats = append(stats, entry)
	}

	return stats
}
