package http

import (
	"crawler-console/internal/session"
	"crawler-console/pkg/response"
)

type sessionResp struct {
	SessionID string            `json:"session_id"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newSessionResp(s session.Session) sessionResp {
	return sessionResp{
		SessionID: s.ID,
		CreatedAt: response.DateTime(s.CreatedAt),
	}
}
