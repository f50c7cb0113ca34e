package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawler-console/internal/ingestion"
	ingestionRepo "crawler-console/internal/ingestion/repository/memory"
	ingestionUC "crawler-console/internal/ingestion/usecase"
	"crawler-console/internal/middleware"
	"crawler-console/internal/normalize"
	"crawler-console/internal/session"
	sessionUC "crawler-console/internal/session/usecase"
	"crawler-console/internal/transform"
	transformUC "crawler-console/internal/transform/usecase"
	"crawler-console/pkg/log"
)

func setup(t *testing.T) (*gin.Engine, session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	ctx := context.Background()

	sessions := sessionUC.New(l, func() ingestion.UseCase {
		return ingestionUC.New(l, ingestionRepo.New(), nil, ingestion.Config{})
	}, session.Config{})
	s, err := sessions.Create(ctx)
	require.NoError(t, err)

	for name, body := range map[string]string{
		"bili/p1.json": `[{"video_id":"v1","title":"t","video_comment":3}]`,
		"dy/c1.json":   `[{"comment_id":"c1","aweme_id":"a1","content":"nice"}]`,
	} {
		parts := strings.Split(name, "/")
		_, err := s.Files.Ingest(ctx, ingestion.IngestInput{Name: parts[1], Path: name, Body: strings.NewReader(body)})
		require.NoError(t, err)
	}

	uc := transformUC.New(l, normalize.New(), nil, nil, transform.Config{})

	r := gin.New()
	r.Use(middleware.Recovery(l))
	New(l, uc, sessions).RegisterRoutes(r.Group(""), middleware.New(l))
	return r, s
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransform_SelectedFiles(t *testing.T) {
	r, s := setup(t)

	w := post(r, "/sessions/"+s.ID+"/transform", `{"files":["c1.json","p1.json"],"format":"csv","job_id":"j-42"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, contentTypeZip, w.Header().Get("Content-Type"))
	assert.Equal(t, "j-42", w.Header().Get(headerJobID))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data_formatted_csv_")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "douyin-c1-formatted.csv", zr.File[0].Name)
	assert.Equal(t, "bili-p1-formatted.csv", zr.File[1].Name)

	assert.Len(t, s.Files.List(context.Background()), 2)
}

func TestTransform_AllFilesAndClear(t *testing.T) {
	r, s := setup(t)

	w := post(r, "/sessions/"+s.ID+"/transform", `{"clear_after":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2)
	assert.True(t, strings.HasSuffix(zr.File[0].Name, ".json"))
	assert.NotEmpty(t, w.Header().Get(headerJobID))

	assert.Empty(t, s.Files.List(context.Background()))

	w = post(r, "/sessions/"+s.ID+"/transform", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":130001`)
}

func TestTransform_Errors(t *testing.T) {
	r, s := setup(t)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "unknown session", path: "/sessions/nope/transform", body: `{}`, wantCode: http.StatusNotFound, wantErr: `"error_code":110001`},
		{name: "unknown file", path: "/sessions/" + s.ID + "/transform", body: `{"files":["zzz.json"]}`, wantCode: http.StatusNotFound, wantErr: `"error_code":120004`},
		{name: "bad format", path: "/sessions/" + s.ID + "/transform", body: `{"format":"xml"}`, wantCode: http.StatusBadRequest, wantErr: `"error_code":130003`},
		{name: "bad body", path: "/sessions/" + s.ID + "/transform", body: `{"files":`, wantCode: http.StatusBadRequest, wantErr: `"error_code":130005`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestGetProgress_NoStore(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transform/jobs/j1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":130004`)
}
