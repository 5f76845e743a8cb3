package invest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegorov/pubgen/internal/model"
	"github.com/vegorov/pubgen/internal/ports"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g := New(rand.New(rand.NewPCG(7, 13)))
	g.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return g
}

var testTier = ports.Tier{Chapters: 3, BlocksPerChapter: 5, Base64Multiplier: 15, ImageCount: 6}

func TestPublicationStructure(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("large_test_pub_1mb", testTier)

	assert.Equal(t, "large_test_pub_1mb", pub.ID)
	assert.Equal(t, "published", pub.Status)
	assert.Equal(t, "1.0.0", pub.Version)
	assert.Equal(t, "en", pub.Language)
	assert.Contains(t, publicationTypes, pub.Type)
	assert.Contains(t, audiences, pub.TargetAudience)
	assert.Equal(t, publicationAuthors, pub.Authors)

	require.Len(t, pub.Chapters, testTier.Chapters)
	for _, ch := range pub.Chapters {
		assert.Len(t, ch.Blocks, testTier.BlocksPerChapter)
	}
}

func TestChapterOrderIsSequential(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", testTier)

	for i, ch := range pub.Chapters {
		assert.Equal(t, i+1, ch.Order, "chapter %s", ch.ID)
		assert.Equal(t, fmt.Sprintf("ch_%03d", i+1), ch.ID)
	}
}

func TestIdentifiersUniqueWithinParent(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", testTier)

	chapterIDs := map[string]bool{}
	for _, ch := range pub.Chapters {
		require.False(t, chapterIDs[ch.ID], "duplicate chapter ID %s", ch.ID)
		chapterIDs[ch.ID] = true

		blockIDs := map[string]bool{}
		for _, b := range ch.Blocks {
			require.False(t, blockIDs[b.ID], "duplicate block ID %s", b.ID)
			blockIDs[b.ID] = true

			noteIDs := map[string]bool{}
			for _, n := range b.Notes {
				require.False(t, noteIDs[n.ID], "duplicate note ID %s", n.ID)
				noteIDs[n.ID] = true
			}
		}
	}
}

func TestTextFieldLengths(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", testTier)

	assert.Len(t, pub.Summary, 4000)
	for _, n := range pub.Notes {
		assert.Len(t, n.Text, 200)
	}
	for _, ch := range pub.Chapters {
		assert.Len(t, ch.Subtitle, 120)
		assert.Len(t, ch.Summary, 2000)
		for _, b := range ch.Blocks {
			assert.Len(t, b.Subtitle, 100)
			assert.Len(t, b.Summary, 1500)
		}
	}
}

func TestNoteCountsPerLevel(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", testTier)

	assert.Len(t, pub.Notes, 5)
	for _, ch := range pub.Chapters {
		assert.Len(t, ch.Notes, 3)
		for _, b := range ch.Blocks {
			assert.Len(t, b.Notes, 2)
		}
	}
}

func TestBlockViews(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", testTier)

	for _, ch := range pub.Chapters {
		for _, b := range ch.Blocks {
			assert.Contains(t, blockTypes, b.Type)

			counts := map[string]int{}
			imageIndex := 0
			for _, v := range b.Views {
				switch view := v.(type) {
				case model.TextView:
					counts["text"]++
					assert.True(t, strings.HasPrefix(view.Content, "<p>"))
					assert.True(t, strings.HasSuffix(view.Content, "</p>"))
				case model.ImageView:
					counts["image"]++
					imageIndex++
					assert.Equal(t, "image/png", view.MediaType)
					assert.Equal(t, fmt.Sprintf("Investment chart %d", imageIndex), view.Alt)
					assert.GreaterOrEqual(t, len(view.Base64), testTier.Base64Multiplier*1024)
					assert.Zero(t, len(view.Base64)%4)
				case model.ChartView:
					counts["chart"]++
					require.Len(t, view.Spec.Data.Values, 12)
					for _, p := range view.Spec.Data.Values {
						assert.GreaterOrEqual(t, p.Value, 100.0)
						assert.Less(t, p.Value, 200.0)
						assert.GreaterOrEqual(t, p.Benchmark, 95.0)
						assert.Less(t, p.Benchmark, 195.0)
					}
				case model.TableView:
					counts["table"]++
					require.Len(t, view.Columns, 5)
					require.Len(t, view.Rows, 3)
					assert.Equal(t, "Revenue Growth", view.Rows[0].Metric)
					assert.Equal(t, "Profit Margin", view.Rows[1].Metric)
					assert.Equal(t, "ROE", view.Rows[2].Metric)
				default:
					t.Fatalf("unexpected view type %T", v)
				}
			}
			for _, kind := range []string{"text", "image", "chart", "table"} {
				assert.GreaterOrEqual(t, counts[kind], 1, "block %s has no %s view", b.ID, kind)
				assert.LessOrEqual(t, counts[kind], 2, "block %s has too many %s views", b.ID, kind)
			}
		}
	}
}

func TestTableValueRanges(t *testing.T) {
	g := newTestGenerator(t)

	ranges := []struct {
		row    int
		lo, hi float64
	}{
		{0, -5, 15},
		{1, 5, 25},
		{2, 8, 20},
	}
	// Sample a handful of tables; ranges hold for every draw.
	for i := 0; i < 20; i++ {
		table := g.tableView()
		for _, rng := range ranges {
			row := table.Rows[rng.row]
			for _, q := range []float64{row.Q1, row.Q2, row.Q3, row.Q4} {
				assert.GreaterOrEqual(t, q, rng.lo)
				assert.Less(t, q, rng.hi)
			}
		}
	}
}

func TestMetadata(t *testing.T) {
	g := newTestGenerator(t)
	md := g.metadata()

	assert.Equal(t, assetClasses, md.AssetClasses)
	assert.Equal(t, companies, md.Companies)
	assert.Equal(t, instruments, md.Instruments)
	assert.Equal(t, sectors, md.Sectors)
	assert.Equal(t, regions, md.Regions)
	assert.Contains(t, riskProfiles, md.RiskProfile)
	assert.Contains(t, timeHorizons, md.TimeHorizon)

	require.NotEmpty(t, md.Tags)
	assert.LessOrEqual(t, len(md.Tags), 100)
	seen := map[string]bool{}
	for _, tag := range md.Tags {
		assert.Contains(t, tagVocabulary, tag)
		assert.False(t, seen[tag], "tag %s sampled twice", tag)
		seen[tag] = true
	}
}

func TestMetadataNotShared(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", ports.Tier{Chapters: 1, BlocksPerChapter: 1, Base64Multiplier: 1})

	require.NotNil(t, pub.Metadata)
	require.NotNil(t, pub.Chapters[0].Metadata)
	assert.NotSame(t, pub.Metadata, pub.Chapters[0].Metadata)
	assert.NotSame(t, pub.Chapters[0].Metadata, pub.Chapters[0].Blocks[0].Metadata)
}

func TestNoImagesWithoutMultiplier(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", ports.Tier{Chapters: 1, BlocksPerChapter: 2, Base64Multiplier: 0})

	for _, b := range pub.Chapters[0].Blocks {
		for _, v := range b.Views {
			_, isImage := v.(model.ImageView)
			assert.False(t, isImage, "block %s has an image view despite zero multiplier", b.ID)
		}
	}
}

func TestTimestampFieldsAreFormatted(t *testing.T) {
	g := newTestGenerator(t)
	pub := g.Publication("pub", ports.Tier{Chapters: 1, BlocksPerChapter: 1, Base64Multiplier: 1})

	// now is pinned to 2024-03-15; createdAt is fixed at -120 days.
	assert.Equal(t, "2023-11-16T10:30:00.000000Z", pub.CreatedAt)
	assert.Equal(t, "2024-03-14T10:30:00.000000Z", pub.UpdatedAt)
	assert.Equal(t, pub.UpdatedAt, pub.PublishedAt)
}
