package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slotbook/infras/otel"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

const ledgerFileMode = 0o644

// fileStore keeps the ledger in a single JSON file. Every Create rewrites the whole file through
// a synced temp file and a rename, so a crash leaves either the old or the new ledger on disk.
type fileStore struct {
	mu   sync.RWMutex
	path string
	otel otel.Otel
}

func NewFile(path string, otl otel.Otel) Booking {
	return &fileStore{path: path, otel: otl}
}

func (s *fileStore) List(ctx context.Context) (bookings []model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

func (s *fileStore) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterByDate(bookings, date), nil
}

func (s *fileStore) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterByUser(bookings, userID), nil
}

func (s *fileStore) Create(ctx context.Context, booking model.Booking) (created model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load()
	if err != nil {
		return model.Booking{}, err
	}

	next, err := appendIfFree(bookings, booking)
	if err != nil {
		return model.Booking{}, err
	}

	if err = s.persist(next); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (s *fileStore) load() ([]model.Booking, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read booking ledger: %w", err)
	}

	return decodeLedger(data)
}

func (s *fileStore) persist(bookings []model.Booking) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger: %w", err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write temp ledger: %w", err)
	}

	if err = tmp.Chmod(ledgerFileMode); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to chmod temp ledger: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to sync temp ledger: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp ledger: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace booking ledger: %w", err)
	}

	committed = true

	syncDir(dir)

	return nil
}

// syncDir flushes the rename itself. Not every platform supports fsync on a directory, so a
// failure is only logged: the data file is already durable.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to open ledger directory for sync")

		return
	}
	defer d.Close()

	if err = d.Sync(); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to sync ledger directory")
	}
}
