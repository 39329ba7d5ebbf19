package service

import (
	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/synth"
)

// withStats pairs profiles with their bundles. Profiles without an id have no
// bundle and are left out.
func (s *PlayerService) withStats(profiles []domain.Profile) []domain.PlayerStats {
	converted := make([]domain.PlayerStats, 0, len(profiles))
	for _, p := range profiles {
		bundle, err := synth.Generate(p)
		if err != nil {
			s.log.WithError(err).WithField("player", p.FullName).Debug("no stats")
			continue
		}
		converted = append(converted, domain.PlayerStats{Profile: p, Stats: bundle})
	}
	return converted
}
