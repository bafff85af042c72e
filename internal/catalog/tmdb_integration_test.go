package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/kdimtricp/reelmatch/internal/models"
)

func init() {
	envPath := filepath.Join("..", "..", ".env")
	_ = godotenv.Load(envPath)
}

func TestTMDbClient_Discover_Live(t *testing.T) {
	apiKey := os.Getenv("TMDB_API_KEY")

	if apiKey == "" {
		t.Skip("Skipping TMDb integration test: TMDB_API_KEY not set")
	}

	client := NewTMDbClient(apiKey)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, lang := range models.Languages() {
		movies, err := client.Discover(ctx, lang)
		if err != nil {
			t.Fatalf("Discover(%s) failed: %v", lang, err)
		}
		if len(movies) == 0 {
			t.Errorf("Expected popular %s movies, got none", lang.Name())
			continue
		}
		t.Logf("%s: %d movies, first %q (ID: %d)", lang.Name(), len(movies), movies[0].Title, movies[0].ID)

		if movies[0].ID == 0 || movies[0].Title == "" {
			t.Errorf("Expected first %s movie to have an id and title", lang.Code())
		}
	}
}
