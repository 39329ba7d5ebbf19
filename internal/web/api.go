package web

import (
	"errors"
	"fmt"

	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	h := s.playerService.Health(ctx.UserContext())
	if h.Status != "ok" {
		ctx.Status(fiber.StatusServiceUnavailable)
	}
	return ctx.JSON(h)
}

func (s *Server) handleOverview(ctx *fiber.Ctx) error {
	o, err := s.playerService.Overview(ctx.UserContext())
	if err != nil {
		return err
	}
	positions, err := s.playerService.Positions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(overviewResponse{Overview: o, Positions: positions})
}

func (s *Server) handlePlayers(ctx *fiber.Ctx) error {
	f, err := parseFilter(ctx)
	if err != nil {
		return err
	}
	res, err := s.playerService.Search(ctx.UserContext(), f)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (s *Server) handlePlayer(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	card, err := s.playerService.Card(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newCardResponse(card))
}

func (s *Server) handlePlayerStats(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	ps, err := s.playerService.Stats(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(statsResponse{Stats: ps.Stats, Notice: syntheticNotice})
}

func (s *Server) handleDistribution(ctx *fiber.Ctx) error {
	field, err := analytics.ParseField(ctx.Params("field"))
	if err != nil {
		return err
	}
	top, err := intQuery(ctx, "top", 0)
	if err != nil {
		return err
	}
	counts, err := s.playerService.Distribution(ctx.UserContext(), field, top)
	if err != nil {
		return err
	}
	return ctx.JSON(counts)
}

func (s *Server) handleCrosstab(ctx *fiber.Ctx) error {
	rows, rowErr := analytics.ParseField(ctx.Query("rows"))
	cols, colErr := analytics.ParseField(ctx.Query("cols"))
	if err := errors.Join(rowErr, colErr); err != nil {
		return badRequest(err)
	}
	t, err := s.playerService.CrossTab(ctx.UserContext(), rows, cols)
	if err != nil {
		return err
	}
	return ctx.JSON(t)
}

func (s *Server) handleCompare(ctx *fiber.Ctx) error {
	splits, err := s.playerService.Compare(ctx.UserContext(), queryList(ctx, "countries"))
	if err != nil {
		return err
	}
	return ctx.JSON(splits)
}

func (s *Server) handleStrokes(ctx *fiber.Ctx) error {
	sample, err := intQuery(ctx, "sample", service.DefaultStrokeSample)
	if err != nil {
		return err
	}
	if sample <= 0 {
		return badRequest(fmt.Errorf("sample %d must be positive", sample))
	}
	seed, err := seedQuery(ctx)
	if err != nil {
		return err
	}
	res, err := s.playerService.StrokeAnalysis(ctx.UserContext(), ctx.Query("batting"), sample, seed)
	if err != nil {
		return err
	}
	return ctx.JSON(strokesResponse{StrokeAnalysis: res, Seed: seed, Notice: syntheticNotice})
}

func (s *Server) handleSimulation(ctx *fiber.Ctx) error {
	size, err := intQuery(ctx, "size", service.DefaultSimulationSize)
	if err != nil {
		return err
	}
	seed, err := seedQuery(ctx)
	if err != nil {
		return err
	}
	sim, err := s.playerService.Simulate(ctx.UserContext(), size, seed)
	if err != nil {
		return err
	}
	return ctx.JSON(simulationResponse{Simulation: sim, Notice: syntheticNotice})
}

func (s *Server) handleQuality(ctx *fiber.Ctx) error {
	q, err := s.playerService.Quality(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(q)
}
