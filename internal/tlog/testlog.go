package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log выводит ошибку вместе с её структурированным контекстом.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error то же, что и Log, но помечает тест упавшим.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check возвращает false для nil. Иначе помечает тест упавшим
// и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Recovered превращает значение полученное из recover в ошибку.
// Возвращает nil, если паники не было.
func Recovered(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return errors.New("panic").Any("value", v)
	}
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)

	width := 0
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}

	for _, v := range c.vars {
		_, _ = fmt.Fprintf(&b, "\n    %s%-*s%s: %v", bold, width, v.name, reset, v.value)
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
