// Package http provides http transport for the jobs operations endpoints
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"quipbot/internal/core/message"
	"quipbot/internal/modkit/httpkit"
	archdomain "quipbot/internal/services/archive/domain"
	"quipbot/internal/services/ops/jobs/domain"
	procdomain "quipbot/internal/services/processor/domain"
)

// Register mounts jobs endpoints on the given router
func Register(r httpkit.Router, insp procdomain.InspectorPort, archive archdomain.ReaderPort) {
	h := &handlers{insp: insp, archive: archive}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/triggers", h.triggers)
	httpkit.PostJSON[domain.AnswerInput](r, "/answer", h.answer)
	httpkit.Get(r, "/archive", h.archived)
}

type handlers struct {
	insp    procdomain.InspectorPort
	archive archdomain.ReaderPort
}

func (h *handlers) list(_ *stdhttp.Request) (any, error) {
	jobs := h.insp.Jobs()
	out := make([]domain.JobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.JobView{
			ID:             j.ID,
			Keywords:       j.Keywords,
			MessageType:    string(j.MessageType),
			Action:         string(j.Action),
			Data:           j.Data,
			Countdown:      j.Countdown,
			MinutesTimeout: j.MinutesTimeout,
		})
	}
	return out, nil
}

func (h *handlers) triggers(_ *stdhttp.Request) (any, error) {
	return domain.TriggersResponse{Records: h.insp.Triggers()}, nil
}

// answer runs a probe message through the engine with isolated trigger
// state so live throttling windows stay untouched
func (h *handlers) answer(r *stdhttp.Request, in domain.AnswerInput) (any, error) {
	msg := message.Classify(message.Incoming{
		ChatID:       in.ChatID,
		FromID:       in.FromID,
		FromUsername: in.FromUsername,
		Text:         in.Text,
	})
	ans := h.insp.Preview(r.Context(), msg)
	return domain.AnswerResponse{
		Answered: !ans.None(),
		JobID:    ans.JobID,
		Answer:   ans.Text,
	}, nil
}

func (h *handlers) archived(r *stdhttp.Request) (any, error) {
	if h.archive == nil {
		return []domain.ArchiveRow{}, nil
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := h.archive.Recent(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArchiveRow, 0, len(recs))
	for _, rec := range recs {
		out = append(out, domain.ArchiveRow{
			ChatID:       rec.ChatID,
			MessageID:    rec.MessageID,
			FromID:       rec.FromID,
			FromUsername: rec.FromUsername,
			JobID:        rec.JobID,
			Answer:       rec.Answer,
			CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}
