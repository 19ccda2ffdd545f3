// Package identifier derives the human-readable vehicle IDs and the
// collision-resistant photo filenames used across the service.
package identifier

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength   = 4

	defaultExtension = ".jpg"
)

// Generator produces vehicle IDs from an injected random source so tests can
// seed it deterministically. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// VehicleID derives an ID of the form VEH-<year>-<MAKE>-<MODEL>-<suffix>.
// Make and model are stripped of non-alphanumeric characters and uppercased;
// the suffix is 4 random characters from [A-Z0-9].
func (g *Generator) VehicleID(make, model string, year int) string {
	return fmt.Sprintf("VEH-%d-%s-%s-%s", year, sanitize(make), sanitize(model), g.suffix())
}

func (g *Generator) suffix() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[g.rnd.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhotoFileName builds the on-disk name <vehicleID>_<uuid><ext>. Only the
// extension of the client-supplied name is kept, which rules out directory
// traversal through crafted filenames.
func PhotoFileName(vehicleID, originalName string) string {
	ext := filepath.Ext(filepath.Base(originalName))
	if ext == "." || ext == "" {
		ext = defaultExtension
	}
	return vehicleID + "_" + uuid.NewString() + ext
}

// PhotoID returns the primary key for a photo metadata row.
func PhotoID() string {
	return uuid.NewString()
}
