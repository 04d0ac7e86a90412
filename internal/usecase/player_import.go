package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
)

const defaultImportWorkers = 8

// ImportResult reports a completed bulk import.
type ImportResult struct {
	Imported int
}

type importRow struct {
	line  int
	input CreatePlayerInput
}

// ImportPlayers ingests a CSV pool export: header `name,type,base_price,rating`
// followed by one row per player. Every row is validated before anything is
// written; one bad row fails the whole batch, and the durable write is a
// single transaction, so an import either lands completely or not at all.
func (s *PlayerService) ImportPlayers(ctx context.Context, r io.Reader) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ImportPlayers")
	defer span.End()

	rows, err := parseImportRows(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return ImportResult{}, fmt.Errorf("%w: import contains no player rows", ErrInvalidInput)
	}

	players := make([]player.Player, len(rows))
	rowErrs := make([]error, len(rows))
	var failed atomic.Bool

	workerCount := s.importWorkers
	if workerCount <= 0 {
		workerCount = defaultImportWorkers
	}
	if workerCount > len(rows) {
		workerCount = len(rows)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create import worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, row := range rows {
		idx, row := idx, row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item, buildErr := s.buildPlayer(row.input)
			if buildErr != nil {
				rowErrs[idx] = errors.Wrapf(buildErr, "line %d", row.line)
				failed.Store(true)
				return
			}
			players[idx] = item
		}); err != nil {
			workers.Done()
			rowErrs[idx] = errors.Wrapf(err, "submit line %d", row.line)
			failed.Store(true)
		}
	}
	workers.Wait()

	if failed.Load() {
		for _, rowErr := range rowErrs {
			if rowErr != nil {
				return ImportResult{}, rowErr
			}
		}
	}

	s.store.LockMutations()
	defer s.store.UnlockMutations()

	if err := s.playerRepo.InsertBatch(ctx, players); err != nil {
		return ImportResult{}, fmt.Errorf("%w: insert player batch: %v", ErrDependencyUnavailable, err)
	}
	if err := s.store.InsertPlayers(players); err != nil {
		return ImportResult{}, fmt.Errorf("apply imported players to roster: %w", err)
	}

	s.logger.InfoContext(ctx, "players imported", "count", len(players))

	return ImportResult{Imported: len(players)}, nil
}

func parseImportRows(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("import body is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	columns, err := resolveImportColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []importRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "read csv line %d", line)
		}

		basePrice, err := strconv.ParseInt(strings.TrimSpace(record[columns.basePrice]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: parse base_price", line)
		}
		rating, err := strconv.Atoi(strings.TrimSpace(record[columns.rating]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: parse rating", line)
		}

		rows = append(rows, importRow{
			line: line,
			input: CreatePlayerInput{
				Name:      record[columns.name],
				Type:      record[columns.playerType],
				BasePrice: basePrice,
				Rating:    rating,
			},
		})
	}

	return rows, nil
}

type importColumns struct {
	name       int
	playerType int
	basePrice  int
	rating     int
}

func resolveImportColumns(header []string) (importColumns, error) {
	out := importColumns{name: -1, playerType: -1, basePrice: -1, rating: -1}
	for idx, column := range header {
		switch strings.ToLower(strings.TrimSpace(column)) {
		case "name":
			out.name = idx
		case "type":
			out.playerType = idx
		case "base_price", "baseprice":
			out.basePrice = idx
		case "rating":
			out.rating = idx
		}
	}

	if out.name < 0 || out.playerType < 0 || out.basePrice < 0 || out.rating < 0 {
		return importColumns{}, errors.Newf("csv header must contain name, type, base_price and rating, got %v", header)
	}

	return out, nil
}
