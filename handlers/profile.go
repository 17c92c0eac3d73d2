// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/coachly/models"
)

// ProfileStatsProvider supplies the display statistics on the profile.
// Real persisted fields (name, email, skills) never come from here.
type ProfileStatsProvider interface {
	StatsFor(ctx context.Context, userID string) (models.ProfileStats, error)
}

// PlaceholderStats returns the same fixed figures for every user
type PlaceholderStats struct{}

func (PlaceholderStats) StatsFor(ctx context.Context, userID string) (models.ProfileStats, error) {
	return models.ProfileStats{
		Membership:        models.PlaceholderMembership,
		ProfilePic:        models.PlaceholderProfilePic,
		Readiness:         models.PlaceholderReadiness,
		SessionsCompleted: models.PlaceholderSessionsCompleted,
		ImprovementRate:   models.PlaceholderImprovementRate,
	}, nil
}
