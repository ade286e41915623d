package transfer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sicservitium/internal/shared/apperror"
	"sicservitium/internal/spreadsheet"
	"sicservitium/internal/transfer"
	transfererrors "sicservitium/internal/transfer/errors"

	"github.com/gin-gonic/gin"
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

type fakeTransferService struct {
	importFn   func(ctx context.Context, filename string, data []byte) (transfer.ImportResultResponse, error)
	exportFn   func(ctx context.Context, format string) (spreadsheet.File, error)
	templateFn func(format string) (spreadsheet.File, error)
}

func (f *fakeTransferService) ImportEmployees(ctx context.Context, filename string, data []byte) (transfer.ImportResultResponse, error) {
	return f.importFn(ctx, filename, data)
}
func (f *fakeTransferService) ExportEmployees(ctx context.Context, format string) (spreadsheet.File, error) {
	return f.exportFn(ctx, format)
}
func (f *fakeTransferService) Template(format string) (spreadsheet.File, error) {
	return f.templateFn(format)
}

func setupTransferRouter(svc transfer.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	api := r.Group("/api/v1")
	transfer.RegisterRoutes(api, transfer.NewHandler(svc))
	return r
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestTransferHandler_Import(t *testing.T) {
	t.Run("200 with the reconciliation summary", func(t *testing.T) {
		var gotFilename string
		svc := &fakeTransferService{
			importFn: func(ctx context.Context, filename string, data []byte) (transfer.ImportResultResponse, error) {
				gotFilename = filename
				return transfer.ImportResultResponse{Inserted: 2, Updated: 1, Errors: []string{}}, nil
			},
		}
		router := setupTransferRouter(svc)

		body, contentType := multipartUpload(t, "file", "funcionarios.xlsx", []byte("planilha"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/import", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "funcionarios.xlsx", gotFilename)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)

		var result transfer.ImportResultResponse
		assert.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, 2, result.Inserted)
		assert.Equal(t, 1, result.Updated)
	})

	t.Run("400 when no file is attached", func(t *testing.T) {
		router := setupTransferRouter(&fakeTransferService{})

		body, contentType := multipartUpload(t, "outro", "funcionarios.xlsx", []byte("planilha"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/import", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "Nenhum arquivo enviado", env.Error.Message)
		}
	})

	t.Run("400 on unsupported sheet format", func(t *testing.T) {
		svc := &fakeTransferService{
			importFn: func(ctx context.Context, filename string, data []byte) (transfer.ImportResultResponse, error) {
				return transfer.ImportResultResponse{}, transfererrors.ErrUnsupportedFormat
			},
		}
		router := setupTransferRouter(svc)

		body, contentType := multipartUpload(t, "file", "funcionarios.csv", []byte("nome;matricula"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/import", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransferHandler_Downloads(t *testing.T) {
	t.Run("export streams an attachment", func(t *testing.T) {
		svc := &fakeTransferService{
			exportFn: func(ctx context.Context, format string) (spreadsheet.File, error) {
				return spreadsheet.File{
					Name:        "funcionarios.xlsx",
					ContentType: spreadsheet.ContentType(spreadsheet.ExtXLSX),
					Content:     []byte("conteudo"),
				}, nil
			},
		}
		router := setupTransferRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="funcionarios.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "conteudo", w.Body.String())
	})

	t.Run("template forwards the requested format", func(t *testing.T) {
		svc := &fakeTransferService{
			templateFn: func(format string) (spreadsheet.File, error) {
				assert.Equal(t, "ods", format)
				return spreadsheet.File{Name: "modelo-funcionarios.ods", Content: []byte("modelo")}, nil
			},
		}
		router := setupTransferRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/template?format=ods", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "modelo", w.Body.String())
	})
}
