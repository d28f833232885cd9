package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"saftz/internal/application"
	"saftz/internal/config"
	"saftz/internal/domain/entity"
	"saftz/internal/domain/service/search"
	"saftz/internal/domain/value"
	"saftz/pkg/logx"
)

//nolint:gochecknoglobals
var gradeColors = map[value.Grade]lipgloss.Color{
	value.GradeLow:    lipgloss.Color("1"),
	value.GradeMedium: lipgloss.Color("3"),
	value.GradeHigh:   lipgloss.Color("2"),
}

type simulateFlags struct {
	query   string
	turbo   bool
	seed    uint64
	sortBy  string
	selectN int
}

func newSimulateCmd() *cobra.Command {
	var flags simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one search session in-process and print the results",
		Long: `Submits a query, waits for the whole batch of cards, prints them in the
requested order, checks the first --select cards and produces the document.

Example:
  saftz simulate --query "поставка кабеля" --turbo --seed 42 --sort percentage-desc --select 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "search query")
	cmd.Flags().BoolVar(&flags.turbo, "turbo", false, "divide arrival delays by ten")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed, 0 seeds from the clock")
	cmd.Flags().StringVar(&flags.sortBy, "sort", value.DefaultSortKey.String(), "sort key: price-asc, price-desc, percentage-asc, percentage-desc")
	cmd.Flags().IntVar(&flags.selectN, "select", 1, "number of top cards to check before generating the document")

	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func runSimulate(cmd *cobra.Command, flags simulateFlags) error {
	sortKey, err := value.ParseSortKey(flags.sortBy)
	if err != nil {
		return fmt.Errorf("--sort: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cmd.Flags().Changed("turbo") {
		cfg.Sequencer.Turbo = flags.turbo
	}

	if flags.seed != 0 {
		cfg.Sequencer.Seed = flags.seed
	}

	ctx, err := withLogger(cmd.Context(), cfg, cmd)
	if err != nil {
		return err
	}

	completed := make(chan struct{}, 1)
	documentReady := make(chan entity.Document, 1)

	observer := func(e search.Event) {
		switch e.Kind {
		case search.EventArrival:
			slog.InfoContext(ctx, "card received",
				slog.Int(logx.FieldArrival, e.Arrival.Index+1),
				slog.Int(logx.FieldRemaining, e.State.Remaining),
				slog.String("price", e.Arrival.Card.Price.String()),
				slog.Int("percentage", e.Arrival.Card.Percentage),
			)
		case search.EventComplete:
			completed <- struct{}{}
		case search.EventDocumentReady:
			documentReady <- e.State.Document
		}
	}

	session := search.NewSession(ctx, value.NewSessionID(), application.NewSearchOptions(cfg, observer))
	defer session.Close()

	if err = session.Submit(ctx, flags.query); err != nil {
		return fmt.Errorf("session.Submit: %w", err)
	}

	if err = wait(ctx, completed); err != nil {
		return err
	}

	if err = session.SetSort(ctx, sortKey); err != nil {
		return fmt.Errorf("session.SetSort: %w", err)
	}

	sorted := session.View().Sorted()

	for _, card := range sorted[:min(max(flags.selectN, 0), len(sorted))] {
		if _, err = session.Toggle(ctx, card.ID); err != nil {
			return fmt.Errorf("session.Toggle: %w", err)
		}
	}

	state := session.View()
	out := cmd.OutOrStdout()

	printResults(out, state)

	if !state.AnyChecked() {
		return nil
	}

	if err = session.GenerateDocument(ctx); err != nil {
		return fmt.Errorf("session.GenerateDocument: %w", err)
	}

	select {
	case doc := <-documentReady:
		fmt.Fprintf(out, "Документ готов: %s (выбрано %d)\n", doc.URL, len(state.Selected()))
	case <-ctx.Done():
		return fmt.Errorf("document: %w", ctx.Err())
	}

	return nil
}

func wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("search: %w", ctx.Err())
	}
}

func printResults(w io.Writer, state search.State) {
	cards := state.Sorted()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Описание", "Совпадение", "Цена").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(cards) || col != 2 {
				return style
			}

			return style.Foreground(gradeColors[cards[row].Grade()])
		})

	for _, card := range cards {
		mark := "[ ]"
		if card.Checked {
			mark = "[x]"
		}

		t.Row(mark, card.Description, strconv.Itoa(card.Percentage)+"%", card.Price.String())
	}

	fmt.Fprintf(w, "Запрос: %s\n", state.Query)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Просмотрено %d %s, сортировка %s\n", state.Viewed, value.RecordWord(state.Viewed), state.SortBy)
}
