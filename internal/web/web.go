package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	embedded "github.com/goserg/cricketboard"
	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/config"
	"github.com/goserg/cricketboard/internal/prefs"
	"github.com/goserg/cricketboard/internal/profile"
	"github.com/goserg/cricketboard/internal/service"
	"github.com/goserg/cricketboard/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

type Server struct {
	playerService *service.PlayerService
	prefs         *prefs.Codec
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, codec *prefs.Codec, l *logrus.Logger) (*Server, error) {
	server := Server{
		playerService: ps,
		prefs:         codec,
		cfg:           cfg,
		log:           l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("Join", strings.Join)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(server.logRequest)

	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.Player, server.handlePlayerPage)
	app.Get(webpath.Theme, server.handleTheme)

	api := app.Group(webpath.Api, cors.New(cors.Config{AllowMethods: fiber.MethodGet}))
	api.Get(webpath.ApiHealth, server.handleHealth)
	api.Get(webpath.ApiOverview, server.handleOverview)
	api.Get(webpath.ApiPlayers, server.handlePlayers)
	api.Get(webpath.ApiPlayerStats, server.handlePlayerStats)
	api.Get(webpath.ApiPlayer, server.handlePlayer)
	api.Get(webpath.ApiDistributions, server.handleDistribution)
	api.Get(webpath.ApiCrosstab, server.handleCrosstab)
	api.Get(webpath.ApiCompare, server.handleCompare)
	api.Get(webpath.ApiStrokes, server.handleStrokes)
	api.Get(webpath.ApiSimulation, server.handleSimulation)
	api.Get(webpath.ApiQuality, server.handleQuality)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- s.app.Shutdown()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) logRequest(ctx *fiber.Ctx) error {
	start := time.Now()
	id := uuid.NewString()
	ctx.Locals(requestIDKey, id)
	ctx.Set(fiber.HeaderXRequestID, id)

	err := ctx.Next()

	status := ctx.Response().StatusCode()
	if err != nil {
		status = statusOf(err)
	}
	entry := s.log.WithFields(logrus.Fields{
		requestIDKey: id,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     status,
		"took":       time.Since(start).String(),
	})
	switch {
	case status >= fiber.StatusInternalServerError:
		entry.WithError(err).Error("request failed")
	case s.cfg.Debug:
		entry.Info("request")
	default:
		entry.Debug("request")
	}
	return err
}

func statusOf(err error) int {
	var fe *fiber.Error
	var re requestError
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &re),
		errors.Is(err, analytics.ErrUnknownField),
		errors.Is(err, analytics.ErrTooFewCountries):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrPlayerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, profile.ErrLoad):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// handleError answers api routes with json and pages with the error template.
func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = http.StatusText(status)
	}
	requestID, _ := ctx.Locals(requestIDKey).(string)
	ctx.Status(status)
	if strings.HasPrefix(ctx.Path(), webpath.Api) {
		return ctx.JSON(errorResponse{Error: message, RequestID: requestID})
	}
	page := newData(fmt.Sprintf("%d %s", status, http.StatusText(status)), s.theme(ctx)).
		WithErrors(err).
		With("Status", status).
		With("RequestID", requestID)
	if status == fiber.StatusInternalServerError {
		page.Errors = []string{message}
	}
	if renderErr := ctx.Render("error", page, "layouts/main"); renderErr != nil {
		s.log.WithError(renderErr).Error("unable to render error page")
		return ctx.SendString(message)
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02 Jan 2006")
}
