// Package tiers maps size labels (1mb, 5mb, ...) to generation parameters.
package tiers

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vegorov/pubgen/internal/ports"
)

// StaticRegistry provides tier lookups from a fixed in-memory table.
type StaticRegistry struct {
	tiers map[string]ports.Tier
}

// NewStaticRegistry creates the registry with the built-in size tiers.
func NewStaticRegistry() ports.TierRegistry {
	return &StaticRegistry{
		tiers: map[string]ports.Tier{
			"1mb":  {Chapters: 3, BlocksPerChapter: 5, Base64Multiplier: 15, ImageCount: 6},
			"5mb":  {Chapters: 6, BlocksPerChapter: 7, Base64Multiplier: 40, ImageCount: 12},
			"10mb": {Chapters: 8, BlocksPerChapter: 9, Base64Multiplier: 80, ImageCount: 20},
			"15mb": {Chapters: 10, BlocksPerChapter: 11, Base64Multiplier: 120, ImageCount: 25},
		},
	}
}

// For returns the Tier for the given size label. Unknown labels are a hard
// error so the caller can fail before any file is written.
func (r *StaticRegistry) For(label string) (ports.Tier, error) {
	tier, ok := r.tiers[label]
	if !ok {
		return ports.Tier{}, fmt.Errorf("unsupported size %q (supported: %s)", label, strings.Join(r.Labels(), ", "))
	}
	return tier, nil
}

// Labels returns the supported size labels ordered by their numeric prefix,
// so the built-in tiers read 1mb, 5mb, 10mb, 15mb. Labels without a numeric
// prefix sort last, alphabetically.
func (r *StaticRegistry) Labels() []string {
	labels := make([]string, 0, len(r.tiers))
	for label := range r.tiers {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ni, oki := leadingInt(labels[i])
		nj, okj := leadingInt(labels[j])
		if oki && okj && ni != nj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return labels[i] < labels[j]
	})
	return labels
}

func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// tierSpec is the YAML shape of one tier entry.
type tierSpec struct {
	Chapters         int `yaml:"chapters"`
	BlocksPerChapter int `yaml:"blocks_per_chapter"`
	Base64Multiplier int `yaml:"base64_multiplier"`
	ImageCount       int `yaml:"image_count"`
}

// LoadFile reads a replacement tier table from a YAML file mapping size
// labels to tier parameters. Lookup semantics are identical to the static
// registry.
func LoadFile(path string) (ports.TierRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier file %s: %w", path, err)
	}
	var specs map[string]tierSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse tier file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("tier file %s defines no tiers", path)
	}
	reg := &StaticRegistry{tiers: make(map[string]ports.Tier, len(specs))}
	for label, spec := range specs {
		if spec.Chapters <= 0 || spec.BlocksPerChapter <= 0 {
			return nil, fmt.Errorf("tier %q in %s: chapters and blocks_per_chapter must be positive", label, path)
		}
		if spec.Base64Multiplier < 0 {
			return nil, fmt.Errorf("tier %q in %s: base64_multiplier must not be negative", label, path)
		}
		reg.tiers[label] = ports.Tier{
			Chapters:         spec.Chapters,
			BlocksPerChapter: spec.BlocksPerChapter,
			Base64Multiplier: spec.Base64Multiplier,
			ImageCount:       spec.ImageCount,
		}
	}
	return reg, nil
}
