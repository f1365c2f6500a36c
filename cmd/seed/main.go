package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/config"
	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/careercraft-dev/career-pilot/backend/internal/repository"
	"github.com/careercraft-dev/career-pilot/backend/internal/seed"
	"github.com/careercraft-dev/career-pilot/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: reset the role catalog to defaults, 3: ensure the demo account)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only creates the pool object, it does not connect yet, so
	// ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.EnsureSchema(); err != nil {
		logger.Error("unable to ensure the documents table", "error", err)
		return
	}

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("please give a valid user count")
			return
		}

		store, err := repo.ReadStore()
		if err != nil {
			slog.Error("unable to read the store", slog.String("error", err.Error()))
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			password := cfg.Seed.User.Password
			if password == "" {
				password = utils.GenerateRandomPassword(cfg.Seed.User.PasswordLength)
			}

			email, user, err := utils.GenerateRandomUser(password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("unable to generate a random user", slog.String("error", err.Error()))
				continue
			}

			if _, exists := store.Users[email]; exists {
				continue
			}

			store.Users[email] = user
			cnt--
		}

		if err := repo.WriteStore(store); err != nil {
			slog.Error("unable to write the store", slog.String("error", err.Error()))
			return
		}

		slog.Info("users inserted", slog.Int("count", n-cnt))
	case 2:
		if err := repo.WriteCatalog(&domain.Catalog{Roles: domain.DefaultRoles}); err != nil {
			slog.Error("unable to reset the catalog", slog.String("error", err.Error()))
			return
		}

		slog.Info("catalog reset to defaults", slog.Int("roles", len(domain.DefaultRoles)))
	case 3:
		if err := seed.EnsureDemoAccount(repo, cfg); err != nil {
			slog.Error("unable to create the demo account", slog.String("error", err.Error()))
			return
		}
	default:
		slog.Error("unknown operation")
	}
}
