package telegram

import (
	"context"
	"time"

	"quipbot/internal/core/message"
	"quipbot/internal/platform/logger"
	archdomain "quipbot/internal/services/archive/domain"
	procdomain "quipbot/internal/services/processor/domain"
)

// API is the client surface the poller needs, seam for tests
type API interface {
	GetUpdates(ctx context.Context, offset int64) ([]Update, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// PollerOptions configures the update loop
type PollerOptions struct {
	// ErrorPause is how long to wait after a failed getUpdates call
	ErrorPause time.Duration
}

// Poller drives the answer loop: fetch updates, classify, answer, reply
type Poller struct {
	api      API
	answerer procdomain.AnswererPort
	archive  archdomain.WriterPort
	opts     PollerOptions

	offset int64
	log    logger.Logger
	sleep  func(time.Duration)
}

// NewPoller constructs a Poller, archive may be nil
func NewPoller(api API, answerer procdomain.AnswererPort, archive archdomain.WriterPort, opts PollerOptions) *Poller {
	if opts.ErrorPause <= 0 {
		opts.ErrorPause = 3 * time.Second
	}
	return &Poller{
		api:      api,
		answerer: answerer,
		archive:  archive,
		opts:     opts,
		log:      *logger.Named("poller"),
		sleep:    time.Sleep,
	}
}

// Run loops until ctx is cancelled
// each update advances the offset exactly once, whether or not it answered
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Msg("poller started")
	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("poller stopped")
			return ctx.Err()
		default:
		}

		updates, err := p.api.GetUpdates(ctx, p.offset+1)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Warn().Err(err).Dur("pause", p.opts.ErrorPause).Msg("getUpdates failed")
			p.sleep(p.opts.ErrorPause)
			continue
		}

		for _, u := range updates {
			p.handle(ctx, u)
		}
	}
}

// Offset returns the last processed update id
func (p *Poller) Offset() int64 { return p.offset }

func (p *Poller) handle(ctx context.Context, u Update) {
	if u.UpdateID > p.offset {
		p.offset = u.UpdateID
	}
	if u.Message == nil {
		return
	}

	msg := message.Classify(u.Incoming())
	ctx = logger.WithChat(ctx, msg.ChatID)

	ans := p.answerer.Answer(ctx, msg)
	if ans.None() {
		return
	}

	text := ExpandEmojis(ans.Text)
	if err := p.api.SendMessage(ctx, msg.ChatID, text); err != nil {
		logger.C(ctx).Warn().Err(err).Str("job_id", ans.JobID).Msg("send failed")
		return
	}

	if p.archive != nil {
		_ = p.archive.Record(ctx, archdomain.AnswerRecord{
			ChatID:       msg.ChatID,
			MessageID:    msg.MessageID,
			FromID:       msg.FromID,
			FromUsername: msg.FromUsername,
			JobID:        ans.JobID,
			Answer:       text,
		})
	}
}
