package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SEQUENCER_MIN_DELAY", "1ms")
	t.Setenv("SEQUENCER_MAX_DELAY", "3ms")
	t.Setenv("DOCUMENT_DELAY", "10ms")
	t.Setenv("LOG_NO_COLOR", "true")
	t.Setenv("LOG_LEVEL", "warn")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	return out.String(), err
}

func TestSimulate(t *testing.T) {
	fastEnv(t)

	testCases := []struct {
		name     string
		args     []string
		selected int
		document bool
	}{
		{
			name:     "Select two",
			args:     []string{"simulate", "--query", "поставка кабеля", "--seed", "42", "--select", "2"},
			selected: 2,
			document: true,
		},
		{
			name:     "Turbo with percentage sort",
			args:     []string{"simulate", "-q", "ремонт кровли", "--turbo", "--sort", "percentage-asc", "--select", "9"},
			selected: 5,
			document: true,
		},
		{
			name:     "Nothing selected",
			args:     []string{"simulate", "-q", "лифты", "--select", "0"},
			selected: 0,
			document: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			out, err := execute(t, tc.args...)
			rq.NoError(err)

			rq.Contains(out, "Запрос: ")
			rq.Equal(tc.selected, strings.Count(out, "[x]"))
			rq.Equal(5-tc.selected, strings.Count(out, "[ ]"))
			rq.Contains(out, "Просмотрено ")

			if tc.document {
				rq.Contains(out, "Документ готов: /v1/documents/tz.pdf")
			} else {
				rq.NotContains(out, "Документ готов")
			}
		})
	}
}

func TestSimulateErrors(t *testing.T) {
	fastEnv(t)

	testCases := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "Missing query",
			args: []string{"simulate"},
			err:  `required flag(s) "query" not set`,
		},
		{
			name: "Blank query",
			args: []string{"simulate", "-q", "  "},
			err:  "session.Submit",
		},
		{
			name: "Unknown sort key",
			args: []string{"simulate", "-q", "кабель", "--sort", "date"},
			err:  "--sort",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := execute(t, tc.args...)
			rq.ErrorContains(err, tc.err)
		})
	}
}
