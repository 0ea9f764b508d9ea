package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/trivia_questions.json"

// schemaDDL creates the two tables the service expects. There is no
// versioned migration tooling; re-running the seeder is a no-op for
// categories that already exist.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS categories (
    id   SERIAL PRIMARY KEY,
    type VARCHAR(64) NOT NULL
);
CREATE TABLE IF NOT EXISTS questions (
    id         SERIAL PRIMARY KEY,
    question   TEXT NOT NULL,
    answer     TEXT NOT NULL,
    category   INTEGER NOT NULL,
    difficulty INTEGER NOT NULL
);`

// SeedQuestion is one question entry in the seed file
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// SeedCategory is one category entry in the seed file, with its questions
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting trivia data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Postgres database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(schemaDDL); err != nil {
		log.Fatal("Failed to create schema", zap.Error(err))
	}
	log.Info("Schema is in place")

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedCategories []SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("categories", len(seedCategories)))

	for _, sc := range seedCategories {
		if err := seedCategoryData(ctx, db, log, sc); err != nil {
			log.Error("Error seeding category", zap.String("category", sc.Type), zap.Error(err))
		}
	}
	log.Info("Trivia data seeding process completed.")
}

func seedCategoryData(
	ctx context.Context,
	db *sqlx.DB,
	log *zap.Logger,
	seedCat SeedCategory,
) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for category %s: %w", seedCat.Type, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				log.Error("Failed to commit transaction", zap.Error(cErr))
				err = cErr
			}
		}
	}()

	// Skip categories that were seeded on a previous run.
	var existingID int64
	row := tx.QueryRowxContext(ctx, `SELECT id FROM categories WHERE type = $1`, seedCat.Type)
	if scanErr := row.Scan(&existingID); scanErr == nil {
		log.Info("Category already seeded, skipping",
			zap.String("type", seedCat.Type),
			zap.Int64("id", existingID),
		)
		return nil
	}

	var categoryID int64
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO categories (type) VALUES ($1) RETURNING id`,
		seedCat.Type,
	).Scan(&categoryID)
	if err != nil {
		return fmt.Errorf("failed to insert category %s: %w", seedCat.Type, err)
	}

	for _, q := range seedCat.Questions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4)`,
			q.Question, q.Answer, categoryID, q.Difficulty,
		)
		if err != nil {
			return fmt.Errorf("failed to insert question %q: %w", q.Question, err)
		}
	}

	log.Info("Seeded category",
		zap.String("type", seedCat.Type),
		zap.Int64("id", categoryID),
		zap.Int("questions", len(seedCat.Questions)),
	)
	return nil
}
