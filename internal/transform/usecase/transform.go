package usecase

import (
	"context"
	"fmt"

	"crawler-console/internal/model"
	"crawler-console/internal/normalize"
	"crawler-console/internal/transform"
)

// Transform normalizes the selected files one by one, in the order given,
// and packs them into a single archive. The first failing file aborts the
// whole job and no archive is returned.
func (uc *implUseCase) Transform(ctx context.Context, ip transform.TransformInput, observer transform.ProgressObserver) (transform.TransformOutput, error) {
	if len(ip.Files) == 0 {
		return transform.TransformOutput{}, transform.ErrNoInputSelected
	}
	format, ok := model.ParseFormat(string(ip.Format))
	if !ok {
		return transform.TransformOutput{}, fmt.Errorf("%w: %q", transform.ErrUnsupportedFormat, ip.Format)
	}

	jobID := ip.JobID
	if jobID == "" {
		jobID = uc.newJobID()
	}
	total := len(ip.Files)
	uc.record(ctx, transform.Progress{JobID: jobID, Total: total, Status: transform.StatusRunning})

	arc := newArchive(uc.cfg.CollisionPolicy)
	results := make([]model.TransformResult, 0, total)
	records := 0

	for i, fd := range ip.Files {
		res, data, err := uc.transformFile(fd, format)
		if err != nil {
			uc.l.Errorf(ctx, "transform.usecase.Transform: job %s: Failed to transform %s: %v", jobID, fd.Name, err)
			uc.fail(ctx, jobID, format, i, total, fd.Name, err)
			return transform.TransformOutput{}, fmt.Errorf("%w: %s: %v", transform.ErrTransformFailed, fd.Name, err)
		}

		if name := arc.add(res.FileName, fd.Path, data); name != res.FileName {
			uc.l.Warnf(ctx, "transform.usecase.Transform: job %s: %s renamed to %s", jobID, res.FileName, name)
			res.FileName = name
		}
		results = append(results, res)
		records += res.Count()

		uc.report(ctx, observer, transform.Progress{
			JobID:       jobID,
			Completed:   i + 1,
			Total:       total,
			Percent:     float64(i+1) / float64(total) * 100,
			CurrentFile: fd.Name,
			Status:      transform.StatusRunning,
		})
	}

	body, err := arc.build(uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "transform.usecase.Transform: job %s: Failed to write archive: %v", jobID, err)
		uc.fail(ctx, jobID, format, total, total, "", err)
		return transform.TransformOutput{}, fmt.Errorf("%w: archive: %v", transform.ErrTransformFailed, err)
	}

	out := transform.TransformOutput{
		JobID:       jobID,
		ArchiveName: normalize.ArchiveFileName(format, uc.now()),
		Archive:     body,
		Results:     results,
	}

	uc.record(ctx, transform.Progress{JobID: jobID, Completed: total, Total: total, Percent: 100, Status: transform.StatusCompleted})
	uc.publishResult(ctx, transform.JobResult{
		JobID:       jobID,
		Status:      transform.StatusCompleted,
		Format:      format,
		ArchiveName: out.ArchiveName,
		FileCount:   total,
		RecordCount: records,
	})

	uc.l.Infof(ctx, "transform.usecase.Transform: job %s: %d files, %d records, %d bytes", jobID, total, records, len(body))
	return out, nil
}

// transformFile turns a panic while normalizing or encoding into an error.
func (uc *implUseCase) transformFile(fd model.FileDescriptor, format model.Format) (res model.TransformResult, data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	res = uc.normalizer.Transform(fd, format)
	data, err = uc.encode(format, res.Rows())
	return res, data, err
}

func (uc *implUseCase) fail(ctx context.Context, jobID string, format model.Format, completed, total int, file string, cause error) {
	uc.record(ctx, transform.Progress{
		JobID:       jobID,
		Completed:   completed,
		Total:       total,
		Percent:     float64(completed) / float64(total) * 100,
		CurrentFile: file,
		Status:      transform.StatusFailed,
		Error:       cause.Error(),
	})
	uc.publishResult(ctx, transform.JobResult{
		JobID:     jobID,
		Status:    transform.StatusFailed,
		Format:    format,
		FileCount: total,
		Error:     fmt.Sprintf("%s: %v", file, cause),
	})
}
