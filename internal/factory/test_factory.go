package factory

import (
	"context"
	"time"

	"github.com/mcoot/wordwolf/internal/dependencies/mocks"
	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/theme"
	"github.com/mcoot/wordwolf/internal/storage/memory"
	"github.com/mcoot/wordwolf/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}

// LoadTestThemes loads a small theme catalogue for testing
func (t *TestApp) LoadTestThemes(ctx context.Context) ([]model.Theme, error) {
	rows := [][3]string{
		{"food", "ramen", "udon"},
		{"food", "apple", "pear"},
		{"food", "sushi", "sashimi"},
		{"animal", "cat", "dog"},
		{"animal", "lion", "tiger"},
		{"place", "beach", "pool"},
	}
	themes := make([]model.Theme, 0, len(rows))
	for _, row := range rows {
		th, err := theme.NewTheme(row[0], row[1], row[2])
		if err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}
	return themes, t.ThemeService.AddThemes(ctx, themes)
}
