package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crawler-console/internal/model"
	"crawler-console/internal/normalize"
	"crawler-console/internal/transform"
	"crawler-console/internal/transform/repository"
	"crawler-console/pkg/log"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(repo repository.ProgressRepository, producer transform.Producer, cfg transform.Config) *implUseCase {
	n := normalize.New(normalize.WithClock(func() time.Time { return fixedNow }))
	uc := New(log.NewNop(), n, repo, producer, cfg).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	uc.newJobID = func() string { return "job-1" }
	return uc
}

func biliContent(name, path string) model.FileDescriptor {
	return model.FileDescriptor{
		Name:     name,
		Path:     path,
		Platform: model.PlatformBili,
		Kind:     model.KindContent,
		Records: []*model.Record{
			model.RecordOf("video_id", "v1", "title", "<原神> & co", "video_comment", 10, "tags", json.RawMessage(`["a","b"]`)),
			model.RecordOf("video_id", "v2", "title", "second"),
		},
	}
}

func xhsComments(name string) model.FileDescriptor {
	return model.FileDescriptor{
		Name:     name,
		Path:     "xhs/" + name,
		Platform: model.PlatformXHS,
		Kind:     model.KindComment,
		Records: []*model.Record{
			model.RecordOf("comment_id", "c1", "note_id", "n1", "content", "好看", "like_count", "1.2万", "sub_comment_count", "3"),
		},
	}
}

func unzip(t *testing.T, archive []byte) ([]string, map[string][]byte) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	var names []string
	files := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		names = append(names, f.Name)
		files[f.Name] = data
	}
	return names, files
}

func TestTransform_NoInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, transform.Config{})

	calls := 0
	_, err := uc.Transform(context.Background(), transform.TransformInput{Format: model.FormatJSON}, func(transform.Progress) { calls++ })

	assert.ErrorIs(t, err, transform.ErrNoInputSelected)
	assert.Zero(t, calls)
}

func TestTransform_UnsupportedFormat(t *testing.T) {
	uc := newTestUseCase(nil, nil, transform.Config{})

	_, err := uc.Transform(context.Background(), transform.TransformInput{
		Files:  []model.FileDescriptor{biliContent("p1.json", "bili/p1.json")},
		Format: "xml",
	}, nil)
	assert.ErrorIs(t, err, transform.ErrUnsupportedFormat)
}

func TestTransform_JSON(t *testing.T) {
	uc := newTestUseCase(nil, nil, transform.Config{})

	var events []transform.Progress
	out, err := uc.Transform(context.Background(), transform.TransformInput{
		Files:  []model.FileDescriptor{biliContent("p1.json", "export/bili/p1.json"), xhsComments("c.csv")},
		Format: model.FormatJSON,
	}, func(p transform.Progress) { events = append(events, p) })
	require.NoError(t, err)

	assert.Equal(t, "job-1", out.JobID)
	assert.Equal(t, "data_formatted_json_2024-05-01.zip", out.ArchiveName)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 2, out.Results[0].Count())

	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Completed)
	assert.Equal(t, 2, events[0].Total)
	assert.Equal(t, 50.0, events[0].Percent)
	assert.Equal(t, "p1.json", events[0].CurrentFile)
	assert.Equal(t, 100.0, events[1].Percent)
	assert.Equal(t, "c.csv", events[1].CurrentFile)

	names, files := unzip(t, out.Archive)
	assert.Equal(t, []string{"bili-p1-formatted.json", "xhs-c-formatted.json"}, names)

	content := string(files["bili-p1-formatted.json"])
	assert.True(t, strings.HasPrefix(content, "[\n  {\n    \"id\": \"v1\",\n    \"title\": \"<原神> & co\","), content)
	assert.False(t, strings.HasSuffix(content, "\n"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(files["bili-p1-formatted.json"], &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, float64(10), rows[0]["comment_count"])
	assert.Equal(t, "bili", rows[0]["platform"])
	assert.Equal(t, []any{"a", "b"}, rows[0]["tags"])

	var comments []map[string]any
	require.NoError(t, json.Unmarshal(files["xhs-c-formatted.json"], &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, float64(12000), comments[0]["like_count"])
	assert.Equal(t, "n1", comments[0]["content_id"])
}

func TestTransform_CSV(t *testing.T) {
	uc := newTestUseCase(nil, nil, transform.Config{})

	out, err := uc.Transform(context.Background(), transform.TransformInput{
		Files:  []model.FileDescriptor{biliContent("p1.JSON", "bili/p1.JSON")},
		Format: "CSV",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "data_formatted_csv_2024-05-01.zip", out.ArchiveName)

	names, files := unzip(t, out.Archive)
	require.Equal(t, []string{"bili-p1-formatted.csv"}, names)

	data := files["bili-p1-formatted.csv"]
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	lines := strings.Split(strings.TrimSuffix(string(data[len(utf8BOM):]), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	header := strings.Join(model.ContentKeys, ",") + ",video_id,video_comment,tags"
	assert.Equal(t, header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "v1,<原神> & co,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], `,v1,10,"[""a"",""b""]"`), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",v2,,"), lines[2])
}

func TestTransform_AbortsOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProgressRepo)
	producer := new(mockProducer)
	uc := newTestUseCase(repo, producer, transform.Config{})

	repo.On("SaveProgress", ctx, mock.Anything, transform.DefaultProgressTTL).Return(nil)
	producer.On("PublishProgress", ctx, mock.Anything).Return(nil)
	producer.On("PublishResult", ctx, mock.MatchedBy(func(r transform.JobResult) bool {
		return r.Status == transform.StatusFailed && strings.Contains(r.Error, "bad.json")
	})).Return(nil).Once()

	calls := 0
	uc.encode = func(format model.Format, rows []*model.Record) ([]byte, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("disk full")
		}
		return encode(format, rows)
	}

	var events []transform.Progress
	out, err := uc.Transform(ctx, transform.TransformInput{
		JobID:  "j-fail",
		Files:  []model.FileDescriptor{biliContent("ok.json", "bili/ok.json"), biliContent("bad.json", "bili/bad.json"), biliContent("never.json", "bili/never.json")},
		Format: model.FormatJSON,
	}, func(p transform.Progress) { events = append(events, p) })

	require.ErrorIs(t, err, transform.ErrTransformFailed)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Nil(t, out.Archive)
	assert.Equal(t, 2, calls)
	require.Len(t, events, 1)
	assert.Equal(t, "ok.json", events[0].CurrentFile)

	repo.AssertCalled(t, "SaveProgress", ctx, mock.MatchedBy(func(p transform.Progress) bool {
		return p.JobID == "j-fail" && p.Status == transform.StatusFailed && p.CurrentFile == "bad.json" && p.Completed == 1
	}), transform.DefaultProgressTTL)
	producer.AssertExpectations(t)
}

func TestTransform_RecoversPanic(t *testing.T) {
	uc := newTestUseCase(nil, nil, transform.Config{})
	uc.encode = func(model.Format, []*model.Record) ([]byte, error) {
		panic("boom")
	}

	_, err := uc.Transform(context.Background(), transform.TransformInput{
		Files:  []model.FileDescriptor{biliContent("p1.json", "bili/p1.json")},
		Format: model.FormatJSON,
	}, nil)
	require.ErrorIs(t, err, transform.ErrTransformFailed)
	assert.Contains(t, err.Error(), "panic: boom")
}

func TestTransform_Collisions(t *testing.T) {
	files := []model.FileDescriptor{
		biliContent("p1.json", "a/bili/p1.json"),
		biliContent("p1.csv", "b/bili/p1.csv"),
	}

	t.Run("suffix", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, transform.Config{})

		out, err := uc.Transform(context.Background(), transform.TransformInput{Files: files, Format: model.FormatJSON}, nil)
		require.NoError(t, err)

		names, _ := unzip(t, out.Archive)
		require.Len(t, names, 2)
		assert.Equal(t, "bili-p1-formatted.json", names[0])
		assert.Regexp(t, `^bili-p1-formatted-[0-9a-f]{8}\.json$`, names[1])
		assert.Equal(t, names[1], out.Results[1].FileName)
	})

	t.Run("overwrite", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, transform.Config{CollisionPolicy: transform.CollisionOverwrite})

		second := files[1]
		second.Records = second.Records[:1]

		out, err := uc.Transform(context.Background(), transform.TransformInput{Files: []model.FileDescriptor{files[0], second}, Format: model.FormatJSON}, nil)
		require.NoError(t, err)

		names, contents := unzip(t, out.Archive)
		assert.Equal(t, []string{"bili-p1-formatted.json"}, names)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(contents["bili-p1-formatted.json"], &rows))
		assert.Len(t, rows, 1, "last file wins")
	})
}

func TestTransform_RecordsProgress(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProgressRepo)
	producer := new(mockProducer)
	uc := newTestUseCase(repo, producer, transform.Config{ProgressTTL: time.Minute})

	var saved []transform.Progress
	repo.On("SaveProgress", ctx, mock.Anything, time.Minute).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(transform.Progress)) }).
		Return(errors.New("redis down"))
	producer.On("PublishProgress", ctx, mock.Anything).Return(nil)
	producer.On("PublishResult", ctx, mock.MatchedBy(func(r transform.JobResult) bool {
		return r.Status == transform.StatusCompleted && r.FileCount == 1 && r.RecordCount == 2 && r.ArchiveName != ""
	})).Return(nil)

	_, err := uc.Transform(ctx, transform.TransformInput{
		Files:  []model.FileDescriptor{biliContent("p1.json", "bili/p1.json")},
		Format: model.FormatJSON,
	}, nil)
	require.NoError(t, err, "progress store failures never abort a job")

	require.Len(t, saved, 3)
	assert.Equal(t, 0, saved[0].Completed)
	assert.Equal(t, transform.StatusRunning, saved[1].Status)
	assert.Equal(t, transform.StatusCompleted, saved[2].Status)
	producer.AssertNumberOfCalls(t, "PublishProgress", 3)
	producer.AssertExpectations(t)
}

func TestGetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("no store", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, transform.Config{})
		_, err := uc.GetProgress(ctx, "j1")
		assert.ErrorIs(t, err, transform.ErrJobNotFound)
	})

	t.Run("found", func(t *testing.T) {
		repo := new(mockProgressRepo)
		uc := newTestUseCase(repo, nil, transform.Config{})
		want := transform.Progress{JobID: "j1", Completed: 2, Total: 4, Percent: 50}
		repo.On("GetProgress", ctx, "j1").Return(want, nil)

		got, err := uc.GetProgress(ctx, "j1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(mockProgressRepo)
		uc := newTestUseCase(repo, nil, transform.Config{})
		repo.On("GetProgress", ctx, "j2").Return(transform.Progress{}, repository.ErrNotFound)

		_, err := uc.GetProgress(ctx, "j2")
		assert.ErrorIs(t, err, transform.ErrJobNotFound)
	})
}
