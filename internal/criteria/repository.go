package criteria

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lens-project/lens-engine-sub000/internal/ports"
)

// relativePath is the well-known rubric location under the data directory.
const relativePath = "config/ranking_criteria.yaml"

// Repository loads rubric documents from durable config, falling back to the
// baked-in default when no usable custom file exists.
type Repository struct {
	store   ports.FileStore
	dataDir string
	logger  *slog.Logger
}

// NewRepository wires a file store and data directory. A nil logger disables
// repository logging.
func NewRepository(store ports.FileStore, dataDir string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{store: store, dataDir: dataDir, logger: logger}
}

// Path returns the well-known criteria file location.
func (r *Repository) Path() string {
	return filepath.Join(r.dataDir, relativePath)
}

// Load reads and validates the rubric file. A missing, unreadable, or
// unparseable file degrades to the default rubric with a warning. A file
// that parses but violates the structural invariants is rejected with an
// error so operator mistakes surface instead of being masked.
func (r *Repository) Load() (*Config, error) {
	path := r.Path()

	raw, err := r.store.ReadText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("no custom criteria file, using defaults", "path", path)
		} else {
			r.logger.Warn("cannot read criteria file, using defaults", "path", path, "error", err)
		}
		return Default(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		r.logger.Warn("cannot parse criteria file, using defaults", "path", path, "error", err)
		return Default(), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("criteria file %s: %w", path, err)
	}

	r.logger.Info("loaded custom ranking criteria",
		"path", path,
		"version", cfg.Version,
		"criteria", len(cfg.Criteria))
	return &cfg, nil
}

// WriteExample renders the default rubric, with a documentation header, to
// the well-known path so users have a starting point to customize. Write-time
// only; the ranking path never consults it directly.
func (r *Repository) WriteExample() (string, error) {
	cfg := Default()
	cfg.Description = "Example ranking criteria. Edit weights, bands, and instructions to taste."

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal example criteria: %w", err)
	}

	header := "# Ranking criteria for the lens engine.\n" +
		"# Each criterion needs id, name, and description; weight is optional (1-10).\n" +
		"# At least one criterion and one scoring guideline are required.\n"

	path := r.Path()
	if err := r.store.WriteText(path, header+string(body)); err != nil {
		return "", fmt.Errorf("write example criteria: %w", err)
	}

	r.logger.Info("wrote example criteria file", "path", path)
	return path, nil
}
