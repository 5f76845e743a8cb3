package ports

import "github.com/vegorov/pubgen/internal/model"

// DocumentGenerator is the port for anything that can synthesize a publication.
type DocumentGenerator interface {
	// Publication builds one fully populated publication tree sized
	// according to the given tier.
	Publication(id string, tier Tier) *model.Publication
}
