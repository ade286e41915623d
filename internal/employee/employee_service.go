package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "sicservitium/internal/employee/errors"
	"sicservitium/internal/events"
	"sicservitium/internal/messaging/kafka"
	"sicservitium/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("matricula", req.Matricula),
	)

	candidate := candidateFromFields(
		req.Foto, req.Nome, req.Matricula, req.CPF, req.Especialidade,
		req.Lotacao, req.Coordenacao, req.Sexo, req.Telefone, req.Endereco,
		req.DataNascimento, req.DataAdmissao, req.EscalaDeTrabalho, req.Contrato,
	)
	if valid, errs := ValidateCandidate(candidate); !valid {
		s.logger.Warn("create employee validation failed",
			zap.String("matricula", req.Matricula),
			zap.Any("fields", errs),
		)
		return EmployeeResponse{}, validationError(errs)
	}

	// Matricula uniqueness is checked here first for a friendly error; the
	// unique index backstops the race between two sessions.
	exists, err := s.repo.MatriculaExists(ctx, candidate.Matricula, nil)
	if err != nil {
		s.logger.Error("create employee matricula lookup failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		return EmployeeResponse{}, employeeerrors.ErrMatriculaAlreadyExists
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{ID: uuid.New()}
	ApplyCandidate(empl, candidate)

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Matricula:  empl.Matricula,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return ToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return ToListResponse(emps), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a burst of picker opens from stampeding the DB.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(emps))
		for i, e := range emps {
			resp[i] = EmployeeOptionResponse{
				ID:        e.ID.String(),
				Nome:      e.Nome,
				Matricula: e.Matricula,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return ToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	candidate := candidateFromFields(
		req.Foto, req.Nome, req.Matricula, req.CPF, req.Especialidade,
		req.Lotacao, req.Coordenacao, req.Sexo, req.Telefone, req.Endereco,
		req.DataNascimento, req.DataAdmissao, req.EscalaDeTrabalho, req.Contrato,
	)
	if valid, errs := ValidateCandidate(candidate); !valid {
		s.logger.Warn("update employee validation failed",
			zap.String("employee_id", id),
			zap.Any("fields", errs),
		)
		return EmployeeResponse{}, validationError(errs)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	exists, err := qtx.MatriculaExists(ctx, candidate.Matricula, &empl.ID)
	if err != nil {
		s.logger.Error("update employee matricula lookup failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		return EmployeeResponse{}, employeeerrors.ErrMatriculaAlreadyExists
	}

	ApplyCandidate(empl, candidate)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return ToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

// candidateFromFields normalizes the loose string fields of a form or
// spreadsheet row into a Candidate ready for validation.
func candidateFromFields(
	foto, nome, matricula, cpf, especialidade,
	lotacao, coordenacao, sexo, telefone, endereco,
	dataNascimento, dataAdmissao, escala, contrato string,
) Candidate {
	return Candidate{
		Foto:             foto,
		Nome:             nome,
		Matricula:        matricula,
		CPF:              NormalizeCPF(cpf),
		Especialidade:    especialidade,
		Lotacao:          lotacao,
		Coordenacao:      coordenacao,
		Sexo:             sexo,
		Telefone:         NormalizePhone(telefone),
		Endereco:         endereco,
		DataNascimento:   NormalizeDate(dataNascimento),
		DataAdmissao:     NormalizeDate(dataAdmissao),
		EscalaDeTrabalho: escala,
		Contrato:         contrato,
	}
}

// CandidateFromRow builds a Candidate from a header-keyed spreadsheet row.
func CandidateFromRow(row map[string]string) Candidate {
	return candidateFromFields(
		row["foto"], row["nome"], row["matricula"], row["cpf"], row["especialidade"],
		row["lotacao"], row["coordenacao"], row["sexo"], row["telefone"], row["endereco"],
		row["dataNascimento"], row["dataAdmissao"], row["escalaDeTrabalho"], row["contrato"],
	)
}

// ApplyCandidate writes a normalized candidate's fields onto an entity,
// leaving the identifier and timestamps untouched.
func ApplyCandidate(e *Employee, c Candidate) {
	e.Nome = c.Nome
	e.Matricula = c.Matricula
	e.CPF = optionalString(c.CPF)
	e.Especialidade = c.Especialidade
	e.Lotacao = c.Lotacao
	e.Coordenacao = c.Coordenacao
	e.Sexo = optionalString(c.Sexo)
	e.Telefone = optionalString(c.Telefone)
	e.Endereco = optionalString(c.Endereco)
	e.DataNascimento = optionalDate(c.DataNascimento)
	e.DataAdmissao = optionalDate(c.DataAdmissao)
	e.EscalaDeTrabalho = optionalString(c.EscalaDeTrabalho)
	e.Contrato = c.Contrato
	e.Foto = optionalString(c.Foto)
}

func ToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               empl.ID.String(),
		Foto:             stringValue(empl.Foto),
		Nome:             empl.Nome,
		Matricula:        empl.Matricula,
		CPF:              stringValue(empl.CPF),
		Especialidade:    empl.Especialidade,
		Lotacao:          empl.Lotacao,
		Coordenacao:      empl.Coordenacao,
		Sexo:             stringValue(empl.Sexo),
		Telefone:         stringValue(empl.Telefone),
		Endereco:         stringValue(empl.Endereco),
		DataNascimento:   dateValue(empl.DataNascimento),
		DataAdmissao:     dateValue(empl.DataAdmissao),
		EscalaDeTrabalho: stringValue(empl.EscalaDeTrabalho),
		Contrato:         empl.Contrato,
	}
}

func ToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = ToResponse(e)
	}
	return res
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalDate(iso string) *time.Time {
	if iso == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	return &t
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func dateValue(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}
