package seed

import (
	"log/slog"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/config"
	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func progressAt(daysAgo int, progress int) domain.HistoryEntry {
	p := progress
	return domain.HistoryEntry{
		Timestamp: time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour).Unix(),
		Progress:  &p,
	}
}

// EnsureDemoAccount creates the well-known demo user if it is missing:
// a month of staged progress and two saved roles, enough to exercise the
// recommendation endpoint out of the box.
func EnsureDemoAccount(repo *repository.Repository, cfg *config.Config) error {
	store, err := repo.ReadStore()
	if err != nil {
		return err
	}

	if _, exists := store.Users[cfg.DemoAccount.Email]; exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoAccount.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	store.Users[cfg.DemoAccount.Email] = &domain.User{
		Name:         cfg.DemoAccount.Name,
		PasswordHash: string(passwordHash),
		Progress:     46,
		SavedRoles:   []string{"r1", "r3"},
		History: []domain.HistoryEntry{
			progressAt(30, 10),
			progressAt(14, 20),
			progressAt(7, 33),
			progressAt(1, 46),
		},
	}

	if err := repo.WriteStore(store); err != nil {
		return err
	}

	slog.Info("demo account created", "email", cfg.DemoAccount.Email)
	return nil
}
