package ports

// Tier holds the generation parameters for one target file size.
type Tier struct {
	// Chapters is the number of chapters in the publication.
	Chapters int
	// BlocksPerChapter is the number of blocks in every chapter.
	BlocksPerChapter int
	// Base64Multiplier controls per-image payload size: each image view
	// carries roughly Base64Multiplier KB of base64 filler.
	Base64Multiplier int
	// ImageCount is the approximate total number of images, shown in the
	// run summary. It is informational only and never enforced.
	ImageCount int
}

// TierRegistry is the port for looking up generation parameters by size label.
type TierRegistry interface {
	// For returns the Tier for the given size label (e.g. "1mb"), or an
	// error if the label is unknown.
	For(label string) (Tier, error)
	// Labels returns the supported size labels in display order, smallest
	// size first.
	Labels() []string
}
