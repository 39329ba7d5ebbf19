package web

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofiber/fiber/v2"
)

// requestError marks a problem with the request itself.
type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }

func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err: err}
}

// queryList collects a parameter given repeatedly or comma separated.
func queryList(ctx *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range ctx.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseFilter(ctx *fiber.Ctx) (analytics.Filter, error) {
	var err error
	f := analytics.Filter{
		Query:   strings.TrimSpace(ctx.Query("q")),
		Batting: strings.TrimSpace(ctx.Query("batting")),
	}
	if countries := queryList(ctx, "country"); len(countries) > 0 {
		f.Countries = mapset.NewThreadUnsafeSet(countries...)
	}
	switch g := strings.ToLower(ctx.Query("gender")); g {
	case "", "all":
	case "m", "male":
		f.Gender = domain.GenderMale
	case "f", "female":
		f.Gender = domain.GenderFemale
	default:
		err = errors.Join(err, fmt.Errorf("gender %q is not m or f", g))
	}
	var ageErr error
	f.MinAge, ageErr = optionalFloat(ctx, "min_age")
	err = errors.Join(err, ageErr)
	f.MaxAge, ageErr = optionalFloat(ctx, "max_age")
	err = errors.Join(err, ageErr)
	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		err = errors.Join(err, errors.New("min_age is above max_age"))
	}
	if err != nil {
		return analytics.Filter{}, badRequest(err)
	}
	return f, nil
}

func optionalFloat(ctx *fiber.Ctx, key string) (*float64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %q is not a number", key, raw)
	}
	return &v, nil
}

func intQuery(ctx *fiber.Ctx, key string, def int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(fmt.Errorf("%s %q is not an integer", key, raw))
	}
	return v, nil
}

// seedQuery reads the sampling seed. A missing seed draws a fresh one, the
// response carries it so the sample can be repeated.
func seedQuery(ctx *fiber.Ctx) (uint64, error) {
	raw := ctx.Query("seed")
	if raw == "" {
		return rand.Uint64N(1 << 53), nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest(fmt.Errorf("seed %q is not an unsigned integer", raw))
	}
	return v, nil
}

func idParam(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(fmt.Errorf("player id %q is not an integer", raw))
	}
	return id, nil
}
