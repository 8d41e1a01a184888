package service

import (
	"context"

	"go.uber.org/zap"

	"inkdesk/internal/domain"
)

type ProfileServiceImpl struct {
	upstream Upstream
	logger   *zap.Logger
}

func NewProfileService(up Upstream, logger *zap.Logger) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		upstream: up,
		logger:   logger,
	}
}

func (s *ProfileServiceImpl) Me(ctx context.Context, p domain.Principal) (*domain.UserProfile, error) {
	profile, err := s.upstream.GetProfile(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "me", err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Locations(ctx context.Context, p domain.Principal) ([]domain.Location, error) {
	locations, err := s.upstream.ListLocations(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "locations", err)
	}
	return locations, nil
}
