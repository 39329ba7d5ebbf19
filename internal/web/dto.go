package web

import (
	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/service"
	"github.com/goserg/cricketboard/internal/synth"
)

const syntheticNotice = "statistics are synthetically generated demo data, not real player records"

type overviewResponse struct {
	analytics.Overview
	Positions []analytics.PositionSummary `json:"positions"`
}

type statsResponse struct {
	Stats  domain.StatBundle `json:"stats"`
	Notice string            `json:"notice"`
}

type cardResponse struct {
	service.PlayerCard
	Notice string `json:"notice"`
}

func newCardResponse(card service.PlayerCard) cardResponse {
	if card.Progression == nil {
		card.Progression = []synth.SeasonRuns{}
	}
	return cardResponse{PlayerCard: card, Notice: syntheticNotice}
}

type strokesResponse struct {
	service.StrokeAnalysis
	Seed   uint64 `json:"seed"`
	Notice string `json:"notice"`
}

type simulationResponse struct {
	service.Simulation
	Notice string `json:"notice"`
}
