package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"crawler-console/internal/model"
	"crawler-console/internal/session"
)

func (h *handler) processTransformRequest(c *gin.Context) (transformReq, session.Session, []model.FileDescriptor, error) {
	ctx := c.Request.Context()

	var req transformReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, session.Session{}, nil, errInvalidRequest
	}

	s, err := h.sessions.Get(ctx, c.Param("session_id"))
	if err != nil {
		return req, session.Session{}, nil, h.mapError(err)
	}

	if len(req.Files) == 0 {
		return req, s, s.Files.List(ctx), nil
	}
	files, err := s.Files.Select(ctx, req.Files)
	if err != nil {
		return req, s, nil, h.mapError(err)
	}
	return req, s, files, nil
}
