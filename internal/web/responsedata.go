package web

import (
	"errors"

	"github.com/goserg/cricketboard/internal/prefs"
	"github.com/goserg/cricketboard/internal/web/webpath"
)

// data is what every page template receives.
type data struct {
	Title   string
	Path    map[string]string
	Theme   prefs.Theme
	Palette prefs.Palette
	Current string
	Errors  []string
	Data    map[string]any
}

func newData(title string, theme prefs.Theme) data {
	return data{
		Title:   title,
		Path:    webpath.Path(),
		Theme:   theme,
		Palette: theme.Palette(),
		Data:    make(map[string]any),
	}
}

func (m data) WithCurrent(path string) data {
	m.Current = path
	return m
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func (m data) WithErrors(err error) data {
	for _, err := range unwrap(err) {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}
