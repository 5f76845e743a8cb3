// Package invest synthesizes investment-research publications: a nested
// publication → chapters → blocks → views tree filled with randomized
// financial terminology, chart and table data, and base64 filler payloads.
package invest

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vegorov/pubgen/internal/model"
	"github.com/vegorov/pubgen/internal/ports"
)

// Generator builds publication trees. All randomness flows through the
// injected rand source so callers can seed it for reproducible output.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

// New constructs a Generator drawing from r.
func New(r *rand.Rand) *Generator {
	return &Generator{rand: r, now: time.Now}
}

var _ ports.DocumentGenerator = (*Generator)(nil)

// Publication builds one fully populated publication for the given tier.
func (g *Generator) Publication(id string, tier ports.Tier) *model.Publication {
	pub := &model.Publication{
		ID:             id,
		Title:          "Comprehensive Investment Research Report - Large Scale Test Data",
		Subtitle:       "A comprehensive analysis of market trends and investment opportunities with extensive metadata and content blocks",
		Summary:        g.text(4000),
		Type:           g.choice(publicationTypes),
		TargetAudience: g.choice(audiences),
		Status:         "published",
		Version:        "1.0.0",
		Language:       "en",
		Authors:        append([]string(nil), publicationAuthors...),
		CreatedAt:      g.timestamp(-120),
		UpdatedAt:      g.timestamp(-1),
		PublishedAt:    g.timestamp(-1),
		Metadata:       g.metadata(),
		Notes:          g.notes("pub", 5),
	}
	for num := 1; num <= tier.Chapters; num++ {
		pub.Chapters = append(pub.Chapters, g.chapter(num, tier.BlocksPerChapter, tier.Base64Multiplier))
	}
	return pub
}

// chapter builds chapter number num with blockCount blocks. The chapter's
// order field always equals num, its 1-based position.
func (g *Generator) chapter(num, blockCount, base64Multiplier int) *model.Chapter {
	id := fmt.Sprintf("ch_%03d", num)
	ch := &model.Chapter{
		ID:        id,
		Title:     fmt.Sprintf("Chapter %d: %s", num, g.text(60)),
		Subtitle:  g.text(120),
		Summary:   g.text(2000),
		Metadata:  g.metadata(),
		Notes:     g.notes(id, 3),
		CreatedAt: g.timestamp(g.intRange(-90, -60)),
		UpdatedAt: g.timestamp(g.intRange(-14, 0)),
		Authors:   authorNames(g.intRange(2, 4)),
		Language:  "en",
		Order:     num,
	}
	for blockNum := 1; blockNum <= blockCount; blockNum++ {
		counts := viewCounts{
			Text:  g.intRange(1, 2),
			Chart: g.intRange(1, 2),
			Table: g.intRange(1, 2),
		}
		if base64Multiplier > 0 {
			counts.Image = g.intRange(1, 2)
		}
		blockID := fmt.Sprintf("block_%03d_%02d", num, blockNum)
		titlePrefix := fmt.Sprintf("Block %d", blockNum)
		ch.Blocks = append(ch.Blocks, g.block(blockID, titlePrefix, counts, base64Multiplier))
	}
	return ch
}

// viewCounts is the per-type number of view instances to attach to a block.
type viewCounts struct {
	Text  int
	Image int
	Chart int
	Table int
}

func (g *Generator) block(id, titlePrefix string, counts viewCounts, base64Multiplier int) *model.Block {
	b := &model.Block{
		ID:        id,
		Title:     fmt.Sprintf("%s - %s", titlePrefix, g.text(50)),
		Subtitle:  g.text(100),
		Summary:   g.text(1500),
		Metadata:  g.metadata(),
		Notes:     g.notes("block_"+id, 2),
		CreatedAt: g.timestamp(g.intRange(-60, -30)),
		UpdatedAt: g.timestamp(g.intRange(-7, 0)),
		Authors:   authorNames(g.intRange(1, 3)),
		Language:  "en",
		Type:      g.choice(blockTypes),
	}

	for i := 0; i < counts.Text; i++ {
		b.Views = append(b.Views, g.textView())
	}
	// Image indices are sequential within the block and assigned to image
	// views only.
	if base64Multiplier > 0 {
		for i := 0; i < counts.Image; i++ {
			b.Views = append(b.Views, g.imageView(i+1, base64Multiplier))
		}
	}
	for i := 0; i < counts.Chart; i++ {
		b.Views = append(b.Views, g.chartView())
	}
	for i := 0; i < counts.Table; i++ {
		b.Views = append(b.Views, g.tableView())
	}
	return b
}

// metadata returns a freshly randomized metadata record. Instances are never
// shared between entities.
func (g *Generator) metadata() *model.Metadata {
	return &model.Metadata{
		AssetClasses: append([]string(nil), assetClasses...),
		Companies:    append([]string(nil), companies...),
		Instruments:  append([]string(nil), instruments...),
		Sectors:      append([]string(nil), sectors...),
		Regions:      append([]string(nil), regions...),
		RiskProfile:  g.choice(riskProfiles),
		TimeHorizon:  g.choice(timeHorizons),
		Tags:         g.sampleTags(g.intRange(1, 100)),
	}
}

func (g *Generator) notes(level string, count int) []model.Note {
	notes := make([]model.Note, 0, count)
	for i := 0; i < count; i++ {
		notes = append(notes, model.Note{
			ID:        fmt.Sprintf("note_%s_%03d", level, i+1),
			Author:    fmt.Sprintf("Author %d", g.intRange(1, 5)),
			Role:      g.choice(noteRoles),
			Timestamp: g.timestamp(g.intRange(-30, 0)),
			Status:    g.choice(noteStatuses),
			Text:      g.text(200),
		})
	}
	return notes
}

// sampleTags draws k distinct tags from the tag vocabulary.
func (g *Generator) sampleTags(k int) []string {
	perm := g.rand.Perm(len(tagVocabulary))
	tags := make([]string, k)
	for i := range tags {
		tags[i] = tagVocabulary[perm[i]]
	}
	return tags
}

func (g *Generator) text(targetLen int) string {
	return RandomText(g.rand, investmentTerms, targetLen)
}

func (g *Generator) timestamp(dayOffset int) string {
	return Timestamp(g.now(), dayOffset)
}

func (g *Generator) choice(items []string) string {
	return items[g.rand.IntN(len(items))]
}

// intRange returns a uniform integer in [lo, hi], bounds inclusive.
func (g *Generator) intRange(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo+1)
}

// uniform returns a uniform float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

func authorNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Author %d", i+1)
	}
	return names
}
