package web

import (
	"net/url"
	"strings"

	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/prefs"
	"github.com/goserg/cricketboard/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

const topCountries = 15

// theme reads the visitor's preference, light when absent or invalid.
func (s *Server) theme(ctx *fiber.Ctx) prefs.Theme {
	cookie := ctx.Cookies(prefs.CookieName)
	if cookie == "" {
		return prefs.Light
	}
	theme, err := s.prefs.Theme(cookie)
	if err != nil {
		s.log.WithError(err).Debug("ignoring preference cookie")
	}
	return theme
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	page := newData("Cricket Players", s.theme(ctx)).WithCurrent(ctx.OriginalURL())

	overview, err := s.playerService.Overview(ctx.UserContext())
	if err != nil {
		return err
	}
	countries, err := s.playerService.Distribution(ctx.UserContext(), analytics.FieldCountry, topCountries)
	if err != nil {
		return err
	}
	continents, err := s.playerService.Distribution(ctx.UserContext(), analytics.FieldContinent, 0)
	if err != nil {
		return err
	}
	batting, err := s.playerService.Distribution(ctx.UserContext(), analytics.FieldBatting, 0)
	if err != nil {
		return err
	}
	page = page.
		With("Overview", overview).
		With("Countries", countries).
		With("Continents", continents).
		With("Batting", batting).
		With("Query", ctx.Query("q"))

	if hasSearch(ctx) {
		f, err := parseFilter(ctx)
		if err != nil {
			page = page.WithErrors(err)
		} else {
			res, err := s.playerService.Search(ctx.UserContext(), f)
			if err != nil {
				return err
			}
			page = page.With("Search", res)
		}
	}
	return ctx.Render("index", page, "layouts/main")
}

func hasSearch(ctx *fiber.Ctx) bool {
	for _, key := range []string{"q", "country", "gender", "batting", "min_age", "max_age"} {
		if ctx.Query(key) != "" {
			return true
		}
	}
	return false
}

func (s *Server) handlePlayerPage(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	card, err := s.playerService.Card(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	page := newData(card.Profile.FullName, s.theme(ctx)).
		WithCurrent(ctx.OriginalURL()).
		With("Card", card).
		With("Notice", syntheticNotice)
	return ctx.Render("player", page, "layouts/main")
}

// handleTheme stores the theme and sends the visitor back to a local page.
func (s *Server) handleTheme(ctx *fiber.Ctx) error {
	theme, ok := prefs.ParseTheme(ctx.Params("mode"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown theme "+ctx.Params("mode"))
	}
	cookie, err := s.prefs.Cookie(theme, "")
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(localPath(ctx.Query("back")))
}

// localPath returns back when it names a page of this site, Home otherwise.
// Browsers read '\' as '/', so any backslash is refused.
func localPath(back string) string {
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") || strings.Contains(back, `\`) {
		return webpath.Home
	}
	u, err := url.Parse(back)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return webpath.Home
	}
	return back
}
