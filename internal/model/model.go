// Package model holds the publication document records. Entities are built
// bottom-up, fully populated on construction, and never mutated afterwards;
// their only lifecycle is construction followed by a single serialization.
package model

// Document is the top-level envelope written to disk.
type Document struct {
	Publications []*Publication `json:"publications"`
}

// Publication is the root of the document hierarchy:
// Publication ⊃ Chapters ⊃ Blocks ⊃ Views.
type Publication struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle"`
	Summary        string     `json:"summary"`
	Type           string     `json:"type"`
	TargetAudience string     `json:"targetAudience"`
	Status         string     `json:"status"`
	Version        string     `json:"version"`
	Language       string     `json:"language"`
	Authors        []string   `json:"authors"`
	CreatedAt      string     `json:"createdAt"`
	UpdatedAt      string     `json:"updatedAt"`
	PublishedAt    string     `json:"publishedAt"`
	Metadata       *Metadata  `json:"metadata"`
	Notes          []Note     `json:"notes"`
	Chapters       []*Chapter `json:"chapters"`
}

// Chapter groups an ordered run of blocks. Order always equals the chapter's
// 1-based position within the publication.
type Chapter struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Summary   string    `json:"summary"`
	Metadata  *Metadata `json:"metadata"`
	Notes     []Note    `json:"notes"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
	Authors   []string  `json:"authors"`
	Language  string    `json:"language"`
	Blocks    []*Block  `json:"blocks"`
	Order     int       `json:"order"`
}

// Block is a content unit inside a chapter, carrying a run of views.
type Block struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Summary   string    `json:"summary"`
	Metadata  *Metadata `json:"metadata"`
	Notes     []Note    `json:"notes"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
	Authors   []string  `json:"authors"`
	Language  string    `json:"language"`
	Type      string    `json:"type"`
	Views     []View    `json:"views"`
}

// Metadata is the categorical annotation record attached to every level of
// the hierarchy. Each entity gets its own independently randomized instance.
type Metadata struct {
	AssetClasses []string `json:"assetClasses"`
	Companies    []string `json:"companies"`
	Instruments  []string `json:"instruments"`
	Sectors      []string `json:"sectors"`
	Regions      []string `json:"regions"`
	RiskProfile  string   `json:"riskProfile"`
	TimeHorizon  string   `json:"timeHorizon"`
	Tags         []string `json:"tags"`
}

// Note is an editorial annotation on a publication, chapter or block.
type Note struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Text      string `json:"text"`
}
