package domain

import (
	"context"
	"strings"
	"time"
)

// Genre is the music genre of an artist.
type Genre string

const (
	GenreRock    Genre = "rock"
	GenrePop     Genre = "pop"
	GenreHipHop  Genre = "hip_hop"
	GenreCountry Genre = "country"
)

// Genres lists the accepted genres in display order.
var Genres = []Genre{GenreRock, GenrePop, GenreHipHop, GenreCountry}

// ParseGenre returns the Genre for s (case-insensitive) or ErrInvalidInput.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Genres {
		if g == known {
			return g, nil
		}
	}
	return "", ErrInvalidInput
}

// Artist is a performer. Performances reference artists by name.
// swagger:model Artist
type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Genre     Genre     `json:"music_genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewArtist returns a new Artist with the given fields. ID is typically set by the repository on create.
func NewArtist(name string, genre Genre, createdAt, updatedAt time.Time) *Artist {
	return &Artist{
		Name:      name,
		Genre:     genre,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ArtistRepository defines the interface for artist storage.
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id string) (*Artist, error)
	// GetByNames returns the artists with the given names; unknown names are simply absent.
	GetByNames(ctx context.Context, names []string) ([]*Artist, error)
	List(ctx context.Context, params PaginationParams) ([]*Artist, int, error)
	Delete(ctx context.Context, id string) error
}

// ArtistService defines artist operations.
type ArtistService interface {
	CreateArtist(ctx context.Context, artist *Artist) error
	GetArtistByID(ctx context.Context, artistID string) (*Artist, error)
	ListArtists(ctx context.Context, params PaginationParams) ([]*Artist, int, error)
	DeleteArtist(ctx context.Context, artistID string) error
}
