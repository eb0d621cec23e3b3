package http

import (
	"kube-query-agent/internal/query"
)

// --- Request DTOs ---

type answerReq struct {
	Query string `json:"query" binding:"required"`
}

func (r answerReq) toInput() query.QueryInput {
	return query.QueryInput{
		Query: r.Query,
	}
}

// --- Response DTOs ---

type answerResp struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

func (h *handler) newAnswerResp(out query.QueryOutput) answerResp {
	return answerResp{
		Query:  out.Query,
		Answer: out.Answer,
	}
}
