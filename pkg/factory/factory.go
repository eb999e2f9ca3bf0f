package factory

import (
	"fmt"

	"bookflow/internal/config"
	"bookflow/internal/domain"
	"bookflow/internal/repository"
	"bookflow/internal/service"
	"bookflow/internal/storage"
	"bookflow/pkg/logger"
)

// Factory wires every component explicitly. Repositories are plain
// constructed values handed to the view layer; nothing is a package
// singleton.
type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetStore() storage.Store

	GetAuthorRepository() domain.AuthorRepository
	GetCategoryRepository() domain.CategoryRepository
	GetBookRepository() domain.BookRepository
	GetMemberRepository() domain.MemberRepository
	GetLoanRepository() domain.LoanRepository

	GetStatsService() domain.StatsService
	GetBackupService() domain.BackupService

	Close() error
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger
	store  storage.Store

	authorRepository   domain.AuthorRepository
	categoryRepository domain.CategoryRepository
	bookRepository     domain.BookRepository
	memberRepository   domain.MemberRepository
	loanRepository     domain.LoanRepository

	statsService  domain.StatsService
	backupService domain.BackupService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	store, err := newStore(cfg, log)
	if err != nil {
		return nil, err
	}
	store = storage.WithMetrics(store)

	if err := storage.InitDefaults(store); err != nil {
		store.Close()
		return nil, fmt.Errorf("could not initialize collections: %w", err)
	}

	authorRepo := repository.NewAuthorRepository(store, log)
	categoryRepo := repository.NewCategoryRepository(store, log)
	bookRepo := repository.NewBookRepository(store, log)
	memberRepo := repository.NewMemberRepository(store, log)
	loanRepo := repository.NewLoanRepository(store, bookRepo, log)

	return &AppFactory{
		config: cfg,
		logger: log,
		store:  store,

		authorRepository:   authorRepo,
		categoryRepository: categoryRepo,
		bookRepository:     bookRepo,
		memberRepository:   memberRepo,
		loanRepository:     loanRepo,

		statsService:  service.NewStatsService(bookRepo, categoryRepo, memberRepo, loanRepo, log),
		backupService: service.NewBackupService(store, log),
	}, nil
}

func newStore(cfg *config.Config, log logger.Logger) (storage.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "sqlite":
		return storage.NewSQLiteStore(cfg.Store.SQLitePath, log)
	case "redis":
		return storage.NewRedisStore(
			cfg.Store.RedisHost,
			cfg.Store.RedisPort,
			cfg.Store.RedisDB,
			cfg.Store.Namespace,
			log,
		)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

func (f *AppFactory) GetLogger() logger.Logger  { return f.logger }
func (f *AppFactory) GetConfig() *config.Config { return f.config }
func (f *AppFactory) GetStore() storage.Store   { return f.store }

func (f *AppFactory) GetAuthorRepository() domain.AuthorRepository     { return f.authorRepository }
func (f *AppFactory) GetCategoryRepository() domain.CategoryRepository { return f.categoryRepository }
func (f *AppFactory) GetBookRepository() domain.BookRepository         { return f.bookRepository }
func (f *AppFactory) GetMemberRepository() domain.MemberRepository     { return f.memberRepository }
func (f *AppFactory) GetLoanRepository() domain.LoanRepository         { return f.loanRepository }

func (f *AppFactory) GetStatsService() domain.StatsService   { return f.statsService }
func (f *AppFactory) GetBackupService() domain.BackupService { return f.backupService }

func (f *AppFactory) Close() error { return f.store.Close() }
