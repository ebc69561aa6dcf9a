package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/urielfortunato123-del/verdade-legal-br/db"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/repository"
)

const maxAttempts = 3

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	if err := db.Connect(); err != nil {
		slog.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ConnectRedis(); err != nil {
		slog.Error("error connecting to redis", "error", err)
		os.Exit(1)
	}
	defer db.CloseRedis()

	repo := repository.NewVerificationRepository(db.DB)

	slog.Info("archiver started", "queue", db.ArchiveQueueKey)

	for {
		payload, err := db.PopFromQueue(db.ArchiveQueueKey, 5*time.Second)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			slog.Error("error popping from queue", "error", err)
			time.Sleep(time.Second)
			continue
		}

		processTask(repo, payload)
	}
}

func processTask(repo *repository.VerificationRepository, payload string) {
	var task model.ArchiveTask
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		slog.Error("invalid task payload, sending to dead letter", "error", err)
		deadLetter(payload)
		return
	}

	if err := repo.Save(&task.Verification); err != nil {
		task.Attempts++
		slog.Error("error saving verification", "title", task.Verification.NewsTitle,
			"attempts", task.Attempts, "error", err)

		if task.Attempts >= maxAttempts {
			if data, merr := json.Marshal(task); merr == nil {
				deadLetter(string(data))
			}
			return
		}

		if data, merr := json.Marshal(task); merr == nil {
			if qerr := db.PushToQueue(db.ArchiveQueueKey, string(data)); qerr != nil {
				slog.Error("error requeueing task", "error", qerr)
			}
		}
		return
	}

	slog.Info("verification archived", "id", task.Verification.ID,
		"title", task.Verification.NewsTitle)
}

func deadLetter(payload string) {
	if err := db.PushToQueue(db.DeadLetterKey, payload); err != nil {
		slog.Error("error pushing to dead letter queue", "error", err)
	}
}
