package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawler-console/internal/ingestion"
	ingestionRepo "crawler-console/internal/ingestion/repository/memory"
	ingestionUC "crawler-console/internal/ingestion/usecase"
	"crawler-console/internal/middleware"
	"crawler-console/internal/session"
	sessionUC "crawler-console/internal/session/usecase"
	"crawler-console/pkg/log"
)

type upload struct {
	name string
	path string
	body string
}

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	sessions := sessionUC.New(l, func() ingestion.UseCase {
		return ingestionUC.New(l, ingestionRepo.New(), nil, ingestion.Config{})
	}, session.Config{})
	s, err := sessions.Create(context.Background())
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Recovery(l))
	New(l, sessions, 1<<20).RegisterRoutes(r.Group(""), middleware.New(l))
	return r, s.ID
}

func multipartBody(t *testing.T, files []upload) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		fw, err := mw.CreateFormFile(formFieldFiles, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.body))
		require.NoError(t, err)
	}
	for _, f := range files {
		require.NoError(t, mw.WriteField(formFieldPaths, f.path))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadListRemove(t *testing.T) {
	r, id := setup(t)
	base := "/sessions/" + id + "/files"

	body, contentType := multipartBody(t, []upload{
		{name: "contents.json", path: "export/douyin/contents.json", body: `[{"aweme_id":"1"}]`},
		{name: "broken.json", path: "export/broken.json", body: `[{`},
		{name: "notes.csv", path: "xhs/notes.csv", body: "note_id,title\nn1,hi\nn2,yo\n"},
	})
	req := httptest.NewRequest(http.MethodPost, base, body)
	req.Header.Set("Content-Type", contentType)
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded struct {
		Data struct {
			Files []struct {
				Name string `json:"name"`
			} `json:"files"`
			Failures []failureResp `json:"failures"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	assert.Len(t, uploaded.Data.Files, 2)
	require.Len(t, uploaded.Data.Failures, 1)
	assert.Equal(t, "broken.json", uploaded.Data.Failures[0].Name)
	assert.Equal(t, "export/broken.json", uploaded.Data.Failures[0].Path)

	w = do(r, httptest.NewRequest(http.MethodGet, base, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data struct {
			Files []struct {
				Name         string `json:"name"`
				Platform     string `json:"platform"`
				PlatformName string `json:"platform_name"`
				RecordCount  int    `json:"record_count"`
			} `json:"files"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 2, listed.Data.Total)

	byName := map[string]string{}
	for _, f := range listed.Data.Files {
		byName[f.Name] = f.PlatformName
	}
	assert.Equal(t, "抖音", byName["contents.json"])
	assert.Equal(t, "小红书", byName["notes.csv"])

	w = do(r, httptest.NewRequest(http.MethodGet, base+"?page=2&limit=1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var paged struct {
		Data struct {
			Files []struct {
				Name string `json:"name"`
			} `json:"files"`
			Total     int `json:"total"`
			Paginator struct {
				CurrentPage int  `json:"current_page"`
				TotalPages  int  `json:"total_pages"`
				HasPrev     bool `json:"has_prev"`
			} `json:"paginator"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Len(t, paged.Data.Files, 1)
	assert.Equal(t, 2, paged.Data.Total)
	assert.Equal(t, 2, paged.Data.Paginator.TotalPages)
	assert.True(t, paged.Data.Paginator.HasPrev)

	w = do(r, httptest.NewRequest(http.MethodGet, base+"?page=abc", nil))
	assert.Contains(t, w.Body.String(), `"error_code":120009`)

	w = do(r, httptest.NewRequest(http.MethodDelete, base+"/notes.csv", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, httptest.NewRequest(http.MethodDelete, base+"/notes.csv", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":120004`)

	w = do(r, httptest.NewRequest(http.MethodDelete, base, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, httptest.NewRequest(http.MethodGet, base, nil))
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestUpload_NoFiles(t *testing.T) {
	r, id := setup(t)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/files", body)
	req.Header.Set("Content-Type", contentType)
	w := do(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":120007`)
}

func TestUnknownSession(t *testing.T) {
	r, _ := setup(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/sessions/nope/files", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":110001`)
}

func TestImport_NoStorage(t *testing.T) {
	r, id := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/files/import", strings.NewReader(`{"bucket":"crawler","prefix":"2024/"}`))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":120005`)
}
