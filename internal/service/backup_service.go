package service

import (
	"fmt"
	"time"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/pkg/logger"
)

// BackupService exports and imports the whole library as one document.
// Import replaces all five collections wholesale; a missing collection
// in the document becomes an empty one, which the repositories tolerate
// exactly like a freshly initialized store.
type BackupService struct {
	store  storage.Store
	logger logger.Logger
}

func NewBackupService(store storage.Store, log logger.Logger) domain.BackupService {
	return &BackupService{store: store, logger: log}
}

func (s *BackupService) Export() (*domain.Backup, error) {
	return &domain.Backup{
		ExportDate: time.Now().UTC(),
		Version:    domain.BackupVersion,
		Data: domain.BackupData{
			Categories: storage.ReadCollection[domain.Category](s.store, storage.KeyCategories),
			Authors:    storage.ReadCollection[domain.Author](s.store, storage.KeyAuthors),
			Books:      storage.ReadCollection[domain.Book](s.store, storage.KeyBooks),
			Members:    storage.ReadCollection[domain.Member](s.store, storage.KeyMembers),
			Loans:      storage.ReadCollection[domain.Loan](s.store, storage.KeyLoans),
		},
	}, nil
}

func (s *BackupService) Import(backup *domain.Backup) error {
	if backup == nil {
		return fmt.Errorf("invalid import data format")
	}

	if err := storage.ClearAll(s.store); err != nil {
		return fmt.Errorf("could not clear existing collections: %w", err)
	}

	if err := storage.SaveCollection(s.store, storage.KeyCategories, backup.Data.Categories); err != nil {
		return fmt.Errorf("could not import categories: %w", err)
	}
	if err := storage.SaveCollection(s.store, storage.KeyAuthors, backup.Data.Authors); err != nil {
		return fmt.Errorf("could not import authors: %w", err)
	}
	if err := storage.SaveCollection(s.store, storage.KeyBooks, backup.Data.Books); err != nil {
		return fmt.Errorf("could not import books: %w", err)
	}
	if err := storage.SaveCollection(s.store, storage.KeyMembers, backup.Data.Members); err != nil {
		return fmt.Errorf("could not import members: %w", err)
	}
	if err := storage.SaveCollection(s.store, storage.KeyLoans, backup.Data.Loans); err != nil {
		return fmt.Errorf("could not import loans: %w", err)
	}

	s.logger.Info("Backup imported", map[string]interface{}{
		"categories": len(backup.Data.Categories),
		"authors":    len(backup.Data.Authors),
		"books":      len(backup.Data.Books),
		"members":    len(backup.Data.Members),
		"loans":      len(backup.Data.Loans),
	})

	return nil
}
