// Package planfile persists rename/move plans as TOML, so a dry run can be
// reviewed (or versioned) and executed later. Apply is the only place in the
// program that mutates the filesystem.
package planfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jvalecka/photospan/internal/photo"
)

// Plan is a reviewed set of filesystem moves for one directory.
type Plan struct {
	Generated time.Time    `toml:"generated"`
	Dir       string       `toml:"dir"`
	Moves     []photo.Move `toml:"move"`
}

// New stamps a plan for the given directory.
func New(dir string, moves []photo.Move) *Plan {
	return &Plan{Generated: time.Now().UTC(), Dir: dir, Moves: moves}
}

// Save writes the plan to path, creating parent directories as needed.
func Save(path string, p *Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// Load reads a plan from path. A missing file is an error here: applying a
// plan that was never saved is a caller mistake.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	return &p, nil
}

// Apply executes every move in order, creating target directories as
// needed. It refuses to overwrite an existing target and aborts on the
// first failure, leaving earlier moves in place.
func Apply(p *Plan) error {
	for _, m := range p.Moves {
		if _, err := os.Lstat(m.To); err == nil {
			return fmt.Errorf("target %q already exists", m.To)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking target %q: %w", m.To, err)
		}
		if err := os.MkdirAll(filepath.Dir(m.To), 0o755); err != nil {
			return fmt.Errorf("creating directory for %q: %w", m.To, err)
		}
		if err := os.Rename(m.From, m.To); err != nil {
			return fmt.Errorf("moving %q to %q: %w", m.From, m.To, err)
		}
	}
	return nil
}
