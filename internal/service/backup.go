package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"time"

	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/mapper"
	"outofschool/internal/model"
	"outofschool/internal/repository"
	"outofschool/internal/storage"
)

// BackupTrackerService records which table snapshots were taken.
type BackupTrackerService interface {
	// Create stamps the backup date and stores the record.
	Create(ctx context.Context, d *dto.BackupOperationDTO) (*dto.BackupOperationDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.BackupOperationDTO, error)
	GetAll(ctx context.Context) ([]dto.BackupOperationDTO, error)
	Count(ctx context.Context) (int, error)
}

type backupTrackerService struct {
	repo repository.EntityRepository[int64, model.BackupOperation]
	log  zerolog.Logger
}

func NewBackupTrackerService(repo repository.EntityRepository[int64, model.BackupOperation], log zerolog.Logger) BackupTrackerService {
	return &backupTrackerService{repo: repo, log: log}
}

func (s *backupTrackerService) Create(ctx context.Context, d *dto.BackupOperationDTO) (*dto.BackupOperationDTO, error) {
	if d == nil {
		return nil, ErrNilDTO
	}
	b := mapper.BackupOperationToModel(*d)
	b.BackupDate = time.Now().UTC()

	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", created.ID).Str("table", created.TableName).Msg("backup tracked")
	out := mapper.BackupOperationToDTO(*created)
	return &out, nil
}

func (s *backupTrackerService) GetByID(ctx context.Context, id int64) (*dto.BackupOperationDTO, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapper.BackupOperationToDTO(*b)
	return &out, nil
}

func (s *backupTrackerService) GetAll(ctx context.Context) ([]dto.BackupOperationDTO, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(items, mapper.BackupOperationToDTO), nil
}

func (s *backupTrackerService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, nil)
}

// TableExporter writes every row of one table as JSON lines.
type TableExporter interface {
	Export(ctx context.Context, w io.Writer) (int64, error)
}

type repositoryExporter[K comparable, T any] struct {
	repo repository.EntityRepository[K, T]
}

// ExportRepository adapts a repository into a TableExporter.
func ExportRepository[K comparable, T any](repo repository.EntityRepository[K, T]) TableExporter {
	return repositoryExporter[K, T]{repo: repo}
}

func (e repositoryExporter[K, T]) Export(ctx context.Context, w io.Writer) (int64, error) {
	items, err := e.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(w)
	for i := range items {
		if err := enc.Encode(&items[i]); err != nil {
			return int64(i), err
		}
	}
	return int64(len(items)), nil
}

// BackupContentType is the media type of stored snapshots, one JSON object per line.
const BackupContentType = "application/x-ndjson"

// BackupService snapshots tables into the object store.
type BackupService interface {
	// BackupTable stores a snapshot of table and tracks it. Unknown tables are NotValid.
	BackupTable(ctx context.Context, table string) (*dto.BackupOperationDTO, error)
	// Tables lists the tables that can be backed up.
	Tables() []string
	// Open streams the snapshot of a tracked backup.
	Open(ctx context.Context, id int64) (io.ReadCloser, *dto.BackupOperationDTO, error)
	// DownloadURL returns a presigned URL for a tracked backup.
	DownloadURL(ctx context.Context, id int64, expiry time.Duration) (string, error)
}

type backupService struct {
	store      storage.Storage
	tracker    BackupTrackerService
	operations OperationWithObjectService
	tables     map[string]TableExporter
	log        zerolog.Logger
}

func NewBackupService(
	store storage.Storage,
	tracker BackupTrackerService,
	operations OperationWithObjectService,
	tables map[string]TableExporter,
	log zerolog.Logger,
) BackupService {
	return &backupService{store: store, tracker: tracker, operations: operations, tables: tables, log: log}
}

func (s *backupService) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *backupService) BackupTable(ctx context.Context, table string) (*dto.BackupOperationDTO, error) {
	exporter, ok := s.tables[table]
	if !ok {
		return nil, errors.NotValidf("backup of table %q", table)
	}
	start := time.Now()

	var buf bytes.Buffer
	rows, err := exporter.Export(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", table, err)
	}

	key := path.Join("backups", table, start.UTC().Format("20060102T150405.000000000Z")+".jsonl")
	info, err := s.store.Put(ctx, key, bytes.NewReader(buf.Bytes()), storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: BackupContentType,
		Metadata: map[string]string{
			"table": table,
			"rows":  strconv.FormatInt(rows, 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	tracked, err := s.tracker.Create(ctx, &dto.BackupOperationDTO{
		TableName:   table,
		RowsCount:   rows,
		StoragePath: info.Key,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("track backup failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("track backup failed: %w", err)
	}

	if _, err := s.operations.Create(ctx, &dto.OperationWithObjectDTO{
		OperationType: model.OperationTypeTableBackup,
		RowSeparator:  table,
		Comment:       info.Key,
	}); err != nil {
		s.log.Warn().Err(err).Str("table", table).Msg("backup operation not logged")
	}

	s.log.Info().
		Str("table", table).
		Int64("rows", rows).
		Str("key", info.Key).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("table backed up")
	return tracked, nil
}

func (s *backupService) Open(ctx context.Context, id int64) (io.ReadCloser, *dto.BackupOperationDTO, error) {
	b, err := s.tracker.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, b.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return rc, b, nil
}

func (s *backupService) DownloadURL(ctx context.Context, id int64, expiry time.Duration) (string, error) {
	b, err := s.tracker.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, b.StoragePath, expiry)
}
