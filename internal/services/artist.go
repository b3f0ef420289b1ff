package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventlineup/internal/clock"
	"eventlineup/internal/domain"
)

type artistService struct {
	artistRepo     domain.ArtistRepository
	clock          clock.Clock
	contextTimeout time.Duration
}

func NewArtistService(artistRepo domain.ArtistRepository, clk clock.Clock, timeout time.Duration) domain.ArtistService {
	return &artistService{
		artistRepo:     artistRepo,
		clock:          clk,
		contextTimeout: timeout,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return domain.NewValidationError(domain.ErrInvalidInput, msgRequired, "name")
	}
	genre, err := domain.ParseGenre(string(artist.Genre))
	if err != nil {
		return domain.NewValidationError(domain.ErrInvalidInput, fmt.Sprintf("%q is not a valid choice.", artist.Genre), "music_genre")
	}
	artist.Genre = genre

	now := s.clock.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	return s.artistRepo.Create(ctx, artist)
}

func (s *artistService) GetArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.artistRepo.GetByID(ctx, artistID)
}

func (s *artistService) ListArtists(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, total, err := s.artistRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list artists: %w", err)
	}
	if artists == nil {
		artists = []*domain.Artist{}
	}
	return artists, total, nil
}

// DeleteArtist removes the artist and its performance links. Performances stay.
func (s *artistService) DeleteArtist(ctx context.Context, artistID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.artistRepo.Delete(ctx, artistID)
}
