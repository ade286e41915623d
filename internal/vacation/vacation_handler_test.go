package vacation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sicservitium/internal/shared/apperror"
	"sicservitium/internal/spreadsheet"
	"sicservitium/internal/vacation"
	vacationerrors "sicservitium/internal/vacation/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeVacationService struct {
	createFn         func(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error)
	getAllFn         func(ctx context.Context) ([]vacation.VacationResponse, error)
	getByIDFn        func(ctx context.Context, id string) (vacation.VacationResponse, error)
	updateFn         func(ctx context.Context, id string, req vacation.UpdateVacationRequest) (vacation.VacationResponse, error)
	updateStatusFn   func(ctx context.Context, id string, req vacation.UpdateVacationStatusRequest) (vacation.VacationResponse, error)
	deleteFn         func(ctx context.Context, id string) error
	deleteAllFn      func(ctx context.Context) error
	exportFn         func(ctx context.Context, format string) (spreadsheet.File, error)
	checkRemindersFn func(ctx context.Context) ([]vacation.ReminderResponse, error)
}

func (f *fakeVacationService) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeVacationService) GetAll(ctx context.Context) ([]vacation.VacationResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeVacationService) GetByID(ctx context.Context, id string) (vacation.VacationResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeVacationService) Update(ctx context.Context, id string, req vacation.UpdateVacationRequest) (vacation.VacationResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeVacationService) UpdateStatus(ctx context.Context, id string, req vacation.UpdateVacationStatusRequest) (vacation.VacationResponse, error) {
	return f.updateStatusFn(ctx, id, req)
}
func (f *fakeVacationService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeVacationService) DeleteAll(ctx context.Context) error {
	return f.deleteAllFn(ctx)
}
func (f *fakeVacationService) Export(ctx context.Context, format string) (spreadsheet.File, error) {
	return f.exportFn(ctx, format)
}
func (f *fakeVacationService) CheckReminders(ctx context.Context) ([]vacation.ReminderResponse, error) {
	return f.checkRemindersFn(ctx)
}

func setupVacationRouter(svc vacation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	api := r.Group("/api/v1")
	vacation.RegisterRoutes(api, vacation.NewHandler(svc))
	return r
}

func TestVacationHandler_Create(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		svc := &fakeVacationService{
			createFn: func(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{ID: uuid.New().String(), EmployeeName: "Maria da Silva"}, nil
			},
		}
		router := setupVacationRouter(svc)

		body := `{"employee_id":"` + uuid.New().String() + `","planned_month":7,"planned_year":2027,"sell_days":"none","notification_days_before":30}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vacations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("400 on bad sell_days", func(t *testing.T) {
		router := setupVacationRouter(&fakeVacationService{})

		body := `{"employee_id":"` + uuid.New().String() + `","planned_month":7,"planned_year":2027,"sell_days":"all30","notification_days_before":30}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vacations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("400 on out-of-range month", func(t *testing.T) {
		router := setupVacationRouter(&fakeVacationService{})

		body := `{"employee_id":"` + uuid.New().String() + `","planned_month":13,"planned_year":2027,"sell_days":"none"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vacations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVacationHandler_UpdateStatus(t *testing.T) {
	t.Run("200 and forwards the new status", func(t *testing.T) {
		var gotID, gotStatus string
		svc := &fakeVacationService{
			updateStatusFn: func(ctx context.Context, id string, req vacation.UpdateVacationStatusRequest) (vacation.VacationResponse, error) {
				gotID, gotStatus = id, req.Status
				return vacation.VacationResponse{ID: id, Status: req.Status}, nil
			},
		}
		router := setupVacationRouter(svc)

		id := uuid.New().String()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/vacations/"+id+"/status", strings.NewReader(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, gotID)
		assert.Equal(t, vacation.StatusCompleted, gotStatus)
	})

	t.Run("400 on a derived-only status", func(t *testing.T) {
		svc := &fakeVacationService{
			updateStatusFn: func(ctx context.Context, id string, req vacation.UpdateVacationStatusRequest) (vacation.VacationResponse, error) {
				t.Fatal("service must not be reached for a rejected status")
				return vacation.VacationResponse{}, nil
			},
		}
		router := setupVacationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/vacations/"+uuid.New().String()+"/status", strings.NewReader(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 when the vacation is gone", func(t *testing.T) {
		svc := &fakeVacationService{
			updateStatusFn: func(ctx context.Context, id string, req vacation.UpdateVacationStatusRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.ErrVacationNotFound
			},
		}
		router := setupVacationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/vacations/"+uuid.New().String()+"/status", strings.NewReader(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVacationHandler_GetAllFiltersByName(t *testing.T) {
	svc := &fakeVacationService{
		getAllFn: func(ctx context.Context) ([]vacation.VacationResponse, error) {
			return []vacation.VacationResponse{
				{ID: uuid.New().String(), EmployeeName: "Maria da Silva"},
				{ID: uuid.New().String(), EmployeeName: "João Pereira"},
			}, nil
		},
	}
	router := setupVacationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vacations?q=maria", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())

	var list []vacation.VacationResponse
	assert.NoError(t, json.Unmarshal(env.Data, &list))
	if assert.Len(t, list, 1) {
		assert.Equal(t, "Maria da Silva", list[0].EmployeeName)
	}
}

func TestVacationHandler_DeleteAll(t *testing.T) {
	called := false
	svc := &fakeVacationService{
		deleteAllFn: func(ctx context.Context) error {
			called = true
			return nil
		},
	}
	router := setupVacationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/vacations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, called)
}

func TestVacationHandler_Export(t *testing.T) {
	svc := &fakeVacationService{
		exportFn: func(ctx context.Context, format string) (spreadsheet.File, error) {
			assert.Equal(t, "ods", format)
			return spreadsheet.File{
				Name:        "ferias.ods",
				ContentType: spreadsheet.ContentType(spreadsheet.ExtODS),
				Content:     []byte("conteudo"),
			}, nil
		},
	}
	router := setupVacationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vacations/export?format=ods", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="ferias.ods"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "conteudo", w.Body.String())
}

func TestVacationHandler_CheckReminders(t *testing.T) {
	svc := &fakeVacationService{
		checkRemindersFn: func(ctx context.Context) ([]vacation.ReminderResponse, error) {
			return []vacation.ReminderResponse{{
				VacationID:   uuid.New().String(),
				EmployeeName: "Maria da Silva",
				PlannedMonth: 7, PlannedYear: 2027,
				DaysUntilStart: 12,
			}}, nil
		},
	}
	router := setupVacationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vacations/reminders/check", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var reminders []vacation.ReminderResponse
	assert.NoError(t, json.Unmarshal(env.Data, &reminders))
	if assert.Len(t, reminders, 1) {
		assert.Equal(t, "Maria da Silva", reminders[0].EmployeeName)
	}
}
