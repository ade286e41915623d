package punch

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"sicservitium/internal/employee"
	puncherrors "sicservitium/internal/punch/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	emailTo = "ponto1@servitium.com.br; rh@servitium.com.br;"
	emailCc = "renatohenrique@compesa.com.br; luannesilva@compesa.com.br;"
)

type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type Service interface {
	PreviewEmail(ctx context.Context, req PreviewEmailRequest) (PreviewEmailResponse, error)
}

type service struct {
	employees EmployeeDirectory
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees EmployeeDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.service")
	}
	return &service{
		employees: employees,
		now:       time.Now,
		logger:    l,
	}
}

// PreviewEmail renders a ready-to-send time-clock adjustment request for
// the selected employee and the days they could not register.
func (s *service) PreviewEmail(ctx context.Context, req PreviewEmailRequest) (PreviewEmailResponse, error) {
	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("preview email employee lookup failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PreviewEmailResponse{}, puncherrors.ErrEmployeeNotFound
		}
		return PreviewEmailResponse{}, err
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, d := range req.Dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return PreviewEmailResponse{}, puncherrors.ErrInvalidDate
		}
		dates = append(dates, t)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	lines := make([]string, len(dates))
	for i, d := range dates {
		lines[i] = d.Format("02/01/2006")
	}

	subject := fmt.Sprintf(
		"Ajuste de Ponto do colaborador %s, matrícula %s - CMA SUL",
		empl.Nome, empl.Matricula,
	)

	body := s.buildBody(empl, strings.Join(lines, "\n"))

	return PreviewEmailResponse{
		To:       emailTo,
		Cc:       emailCc,
		Subject:  subject,
		Body:     body,
		BodyHTML: renderHTML(body),
	}, nil
}

// renderHTML keeps the plain-text body as the source of truth and only
// lifts it into markup for rich-text mail clients.
func renderHTML(body string) string {
	var sb strings.Builder
	for _, paragraph := range strings.Split(body, "\n\n") {
		sb.WriteString("<p>")
		sb.WriteString(strings.ReplaceAll(html.EscapeString(paragraph), "\n", "<br>"))
		sb.WriteString("</p>")
	}
	return sb.String()
}

func (s *service) buildBody(empl *employee.Employee, datesList string) string {
	cpf := "-"
	if empl.CPF != nil && *empl.CPF != "" {
		cpf = employee.FormatCPF(*empl.CPF)
	}
	telefone := "-"
	if empl.Telefone != nil && *empl.Telefone != "" {
		telefone = *empl.Telefone
	}

	return fmt.Sprintf(
		"%s\n\n"+
			"Como coordenador da área de manutenção da CMA SUL na %s e responsável pela equipe "+
			"de manutenção, operação e administrativa das unidades da CPR SUL/CMA SUL da Servitium, "+
			"gostaria de informar que o colaborador %s, matrícula %s, CPF %s, da especialidade %s, "+
			"do contrato %s, desempenhou suas atividades normalmente conforme o horário estabelecido nos dias:\n\n"+
			"%s\n\n"+
			"O colaborador mencionou ter encontrado dificuldades para registrar o ponto nesses dias, "+
			"o que impossibilitou a validação dos registros.\n"+
			"Solicito gentilmente que sejam realizados os ajustes necessários no sistema para inclusão "+
			"dos dias de trabalho do colaborador mencionado.\n\n"+
			"Contato do Colaborador: %s (Whatsapp)",
		greeting(s.now()),
		empl.Lotacao,
		empl.Nome, empl.Matricula, cpf, empl.Especialidade,
		empl.Contrato,
		datesList,
		telefone,
	)
}

func greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "Bom dia!"
	case hour < 18:
		return "Boa tarde!"
	default:
		return "Boa noite!"
	}
}
