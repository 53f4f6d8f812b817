package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process configuration resolved from the environment. A .env
// file in the working directory is loaded first when present.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// WeekStartMonday selects Monday-first calendar weeks; Sunday-first
	// otherwise.
	WeekStartMonday bool
	// Debug enables structured use-case logging to stderr.
	Debug bool
}

// Load builds a Config from MEALPLANNER_DB, MEALPLANNER_WEEK_START and
// MEALPLANNER_DEBUG, falling back to ~/.mealplanner/mealplanner.db and
// Monday-first weeks.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPath := os.Getenv("MEALPLANNER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mealplanner", "mealplanner.db")
	}

	weekStartMonday := true
	switch strings.ToLower(os.Getenv("MEALPLANNER_WEEK_START")) {
	case "", "monday":
	case "sunday":
		weekStartMonday = false
	default:
		return nil, fmt.Errorf("MEALPLANNER_WEEK_START must be monday or sunday")
	}

	debug := os.Getenv("MEALPLANNER_DEBUG") != ""

	return &Config{
		DBPath:          dbPath,
		WeekStartMonday: weekStartMonday,
		Debug:           debug,
	}, nil
}
