package theme

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage"
)

// Namespace for deterministic theme ids, so reloading a file upserts rather than duplicates
var themeNamespace = uuid.MustParse("6f1c4f0e-3b2a-4d59-9a57-1f0e2c9b7d41")

// Service manages the theme catalogue
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new theme Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ThemeID derives the id of a theme from its content
func ThemeID(kind model.ThemeKind, first, second model.Word) model.ThemeID {
	name := kind.String() + "\x00" + first.String() + "\x00" + second.String()
	return model.NewID[model.Theme](uuid.NewSHA1(themeNamespace, []byte(name)).String())
}

// NewTheme validates raw parts and builds a theme with a derived id
func NewTheme(kind, first, second string) (model.Theme, error) {
	k, err := model.NewThemeKind(kind)
	if err != nil {
		return model.Theme{}, err
	}
	f, err := model.NewWord(first)
	if err != nil {
		return model.Theme{}, err
	}
	sec, err := model.NewWord(second)
	if err != nil {
		return model.Theme{}, err
	}
	return model.NewTheme(ThemeID(k, f, sec), k, f, sec)
}

// Parse reads themes as CSV records of kind,first,second.
// Lines starting with '#' and blank lines are skipped.
func Parse(r io.Reader) ([]model.Theme, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var themes []model.Theme
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, model.WrapDomainError(model.KindInvalidInput, err, "malformed theme file")
		}
		line, _ := reader.FieldPos(0)
		if len(record) != 3 {
			return nil, model.NewDomainError(model.KindInvalidInput,
				"line %d: expected kind,first,second but got %d fields", line, len(record))
		}
		theme, err := NewTheme(record[0], record[1], record[2])
		if err != nil {
			return nil, model.WrapDomainError(model.KindInvalidInput, err, "line %d", line)
		}
		themes = append(themes, theme)
	}
	return themes, nil
}

// LoadFromFile parses a theme file and stores its themes, returning how many were loaded
func (s *Service) LoadFromFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, model.WrapDomainError(model.KindFail, err, "open theme file %s", path)
	}
	defer file.Close()

	themes, err := Parse(file)
	if err != nil {
		return 0, err
	}
	if err := s.AddThemes(ctx, themes); err != nil {
		return 0, err
	}

	s.logger.Info("themes loaded",
		slog.String("path", path),
		slog.Int("count", len(themes)),
	)
	return len(themes), nil
}

// AddThemes stores themes, replacing any with the same id
func (s *Service) AddThemes(ctx context.Context, themes []model.Theme) error {
	if len(themes) == 0 {
		return nil
	}
	if err := s.storage.SaveThemes(ctx, themes); err != nil {
		s.logger.Error("failed to save themes",
			slog.Int("count", len(themes)),
			slog.String("error", err.Error()),
		)
		return model.FromRepositoryError(err, "save themes")
	}
	return nil
}

// FindThemesByKind returns the themes of kind ordered by id.
// Storage errors are returned unchanged for the caller to classify.
func (s *Service) FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error) {
	themes, err := s.storage.FindThemesByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("themes looked up",
		slog.String("kind", kind.String()),
		slog.Int("count", len(themes)),
	)
	return themes, nil
}

// Kinds lists every kind with at least one theme
func (s *Service) Kinds(ctx context.Context) ([]model.ThemeKind, error) {
	kinds, err := s.storage.ListThemeKinds(ctx)
	if err != nil {
		return nil, model.FromRepositoryError(err, "list theme kinds")
	}
	return kinds, nil
}
