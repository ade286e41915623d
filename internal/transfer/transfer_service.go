package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"sicservitium/internal/employee"
	"sicservitium/internal/events"
	"sicservitium/internal/messaging/kafka"
	"sicservitium/internal/shared/contextutil"
	"sicservitium/internal/spreadsheet"
	transfererrors "sicservitium/internal/transfer/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const insertBatchSize = 100

type Service interface {
	ImportEmployees(ctx context.Context, filename string, data []byte) (ImportResultResponse, error)
	ExportEmployees(ctx context.Context, format string) (spreadsheet.File, error)
	Template(format string) (spreadsheet.File, error)
}

type service struct {
	employees employee.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("transfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.service")
	}
	return &service{
		employees: employees,
		outbox:    outboxRepo,
		rdb:       rdb,
		logger:    l,
	}
}

// ImportEmployees reconciles a spreadsheet against the stored collection.
// Rows are normalized and validated one by one; survivors are partitioned
// into inserts and updates by matricula. Insert batches and update calls
// run concurrently and are all awaited: one failing call never cancels its
// siblings, it only contributes an error message.
func (s *service) ImportEmployees(ctx context.Context, filename string, data []byte) (ImportResultResponse, error) {
	if !spreadsheet.SupportedExtension(filename) {
		return ImportResultResponse{}, transfererrors.ErrUnsupportedFormat
	}

	rows, err := spreadsheet.ReadRows(filename, data)
	if err != nil {
		s.logger.Warn("import spreadsheet unreadable",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return ImportResultResponse{}, transfererrors.ErrUnreadableFile
	}

	var (
		errs       []string
		candidates []employee.Candidate
	)
	seenInFile := make(map[string]bool, len(rows))

	// Header row is line 1 in the sheet, so data row i reads as line i+2.
	for i, row := range rows {
		c := employee.CandidateFromRow(row)

		if valid, vErrs := employee.ValidateCandidate(c); !valid {
			errs = append(errs, fmt.Sprintf("Linha %d: %s",
				i+2, strings.Join(employee.ValidationMessages(vErrs), " | ")))
			continue
		}

		if seenInFile[c.Matricula] {
			errs = append(errs, fmt.Sprintf(
				"Linha %d: Matrícula duplicada na planilha (%s). Linha ignorada.",
				i+2, c.Matricula))
			continue
		}
		seenInFile[c.Matricula] = true
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return ImportResultResponse{
			Errors:    errs,
			Employees: []employee.EmployeeResponse{},
		}, nil
	}

	existing, err := s.employees.FindAll(ctx)
	if err != nil {
		s.logger.Error("import load existing failed", zap.Error(err))
		return ImportResultResponse{}, err
	}

	byMatricula := make(map[string]*employee.Employee, len(existing))
	for i := range existing {
		byMatricula[existing[i].Matricula] = &existing[i]
	}

	var toInsert []employee.Candidate
	type updatePair struct {
		current   employee.Employee
		candidate employee.Candidate
	}
	var toUpdate []updatePair
	for _, c := range candidates {
		if match, ok := byMatricula[c.Matricula]; ok {
			toUpdate = append(toUpdate, updatePair{current: *match, candidate: c})
		} else {
			toInsert = append(toInsert, c)
		}
	}

	created, insertErrs := s.runInsertBatches(ctx, toInsert)
	errs = append(errs, insertErrs...)

	updatedByID := make(map[uuid.UUID]employee.Employee, len(toUpdate))
	updatedCount := 0
	if len(toUpdate) > 0 {
		type updateResult struct {
			empl employee.Employee
			err  error
		}
		results := make([]updateResult, len(toUpdate))

		var wg sync.WaitGroup
		for i, pair := range toUpdate {
			wg.Add(1)
			go func(i int, pair updatePair) {
				defer wg.Done()
				empl := pair.current
				employee.ApplyCandidate(&empl, pair.candidate)
				if err := s.employees.Update(ctx, &empl); err != nil {
					results[i] = updateResult{err: err}
					return
				}
				results[i] = updateResult{empl: empl}
			}(i, pair)
		}
		wg.Wait()

		for _, r := range results {
			if r.err != nil {
				s.logger.Error("import update failed", zap.Error(r.err))
				errs = append(errs, "Falha ao atualizar registro")
				continue
			}
			updatedByID[r.empl.ID] = r.empl
			updatedCount++
		}
	}

	final := make([]employee.Employee, 0, len(existing)+len(created))
	for _, e := range existing {
		if u, ok := updatedByID[e.ID]; ok {
			final = append(final, u)
			continue
		}
		final = append(final, e)
	}
	final = append(final, created...)

	result := ImportResultResponse{
		Inserted:  len(created),
		Updated:   updatedCount,
		Errors:    errs,
		Employees: employee.ToListResponse(final),
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}

	if result.Inserted > 0 || result.Updated > 0 {
		s.invalidateOptionsCache(ctx)
	}
	s.publishImportCompleted(ctx, filename, result)

	s.logger.Info("import completed",
		zap.String("filename", filename),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// runInsertBatches splits the insert set into fixed-size batches and
// submits them concurrently. A failed batch loses only its own records.
func (s *service) runInsertBatches(ctx context.Context, toInsert []employee.Candidate) ([]employee.Employee, []string) {
	if len(toInsert) == 0 {
		return nil, nil
	}

	var batches [][]*employee.Employee
	for start := 0; start < len(toInsert); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(toInsert) {
			end = len(toInsert)
		}
		batch := make([]*employee.Employee, 0, end-start)
		for _, c := range toInsert[start:end] {
			empl := &employee.Employee{ID: uuid.New()}
			employee.ApplyCandidate(empl, c)
			batch = append(batch, empl)
		}
		batches = append(batches, batch)
	}

	batchErrs := make([]error, len(batches))
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []*employee.Employee) {
			defer wg.Done()
			batchErrs[i] = s.employees.CreateBulk(ctx, batch)
		}(i, batch)
	}
	wg.Wait()

	var created []employee.Employee
	var errs []string
	for i, batch := range batches {
		if err := batchErrs[i]; err != nil {
			s.logger.Error("import insert batch failed",
				zap.Int("batch", i),
				zap.Int("size", len(batch)),
				zap.Error(err),
			)
			errs = append(errs, fmt.Sprintf("Falha ao inserir lote: %s", err.Error()))
			continue
		}
		for _, empl := range batch {
			created = append(created, *empl)
		}
	}
	return created, errs
}

func (s *service) ExportEmployees(ctx context.Context, format string) (spreadsheet.File, error) {
	ext, ok := spreadsheet.NormalizeFormat(format)
	if !ok {
		return spreadsheet.File{}, transfererrors.ErrUnsupportedFormat
	}

	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		s.logger.Error("export load employees failed", zap.Error(err))
		return spreadsheet.File{}, err
	}

	file, err := spreadsheet.Render("funcionarios", ext, employee.ExportSheetName,
		employee.ExportHeaders, employee.BuildExportRows(emps))
	if err != nil {
		s.logger.Error("export write failed", zap.Error(err))
		return spreadsheet.File{}, err
	}
	return file, nil
}

// Template produces an empty sheet carrying only the expected header row.
func (s *service) Template(format string) (spreadsheet.File, error) {
	ext, ok := spreadsheet.NormalizeFormat(format)
	if !ok {
		return spreadsheet.File{}, transfererrors.ErrUnsupportedFormat
	}

	file, err := spreadsheet.Render("modelo-funcionarios", ext, employee.TemplateSheetName,
		employee.ExportHeaders, nil)
	if err != nil {
		s.logger.Error("template write failed", zap.Error(err))
		return spreadsheet.File{}, err
	}
	return file, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employee.EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache", zap.Error(err))
	}
}

func (s *service) publishImportCompleted(ctx context.Context, filename string, result ImportResultResponse) {
	if s.outbox == nil {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeImportCompletedEvent{
		EventType:  "employee_import_completed",
		RequestID:  rid,
		Filename:   filename,
		Inserted:   result.Inserted,
		Updated:    result.Updated,
		ErrorCount: len(result.Errors),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal import event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee_import",
		AggregateID:   filename,
		EventType:     event.EventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("persist import event failed", zap.Error(err))
	}
}
