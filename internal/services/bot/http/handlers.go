// Package http provides http transport for the bot
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"wordlebot/internal/core/wordle"
	"wordlebot/internal/modkit/httpkit"

	perr "wordlebot/internal/platform/errors"
	dom "wordlebot/internal/services/bot/domain"
)

// Options carries what the handlers need besides the service
type Options struct {
	WordleChannel string
	SelfID        string
	Now           func() time.Time
}

// Register mounts bot endpoints on the given router
func Register(r httpkit.Router, s dom.BotPort, o Options) {
	if o.Now == nil {
		o.Now = time.Now
	}
	h := &handlers{svc: s, opt: o}

	// ingest
	httpkit.PostJSON[dom.IngestMessageInput](r, "/messages", h.ingestMessage)
	httpkit.PostJSON[dom.IngestAnnouncementInput](r, "/announcements", h.ingestAnnouncement)

	// read
	httpkit.Get(r, "/days/{day}", h.day)
	httpkit.Get(r, "/answers/{word}", h.answer)
	httpkit.PostJSON[dom.RoundupInput](r, "/roundup", h.roundup)

	// admin
	r.Group(func(ar httpkit.Router) {
		ar.Use(httpkit.AdminOnly(s.IsAdmin))
		httpkit.Post(ar, "/days/{day}/announce", h.announce)
	})
}

type handlers struct {
	svc dom.BotPort
	opt Options
}

// swagger:route POST /bot/messages Bot botIngestMessage
// @Summary Ingest a submissions channel message
// @Tags Bot
// @Accept json
// @Produce json
// @Param payload body domain.IngestMessageInput true "Message"
// @Success 200 {object} domain.IngestMessageOutput "ok"
// @Router /bot/messages [post]
func (h *handlers) ingestMessage(r *stdhttp.Request, in dom.IngestMessageInput) (any, error) {
	m := dom.Message{
		ID:        in.ID,
		ChannelID: h.opt.WordleChannel,
		AuthorID:  in.AuthorID,
		Timestamp: in.Timestamp,
		Content:   in.Content,
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = h.opt.Now()
	}

	replies, err := h.svc.HandleWordle(r.Context(), m, !in.Replay)
	if err != nil {
		return nil, err
	}
	out := dom.IngestMessageOutput{MessageID: m.ID, Replies: replies}
	if replies == nil {
		out.Replies = []dom.Reply{}
	}
	if in.Deliver && len(replies) > 0 {
		if err := h.svc.Deliver(r.Context(), replies); err != nil {
			return nil, err
		}
		out.Delivered = true
	}
	return out, nil
}

// swagger:route POST /bot/announcements Bot botIngestAnnouncement
// @Summary Ingest an announcement channel text
// @Tags Bot
// @Accept json
// @Produce json
// @Param payload body domain.IngestAnnouncementInput true "Announcement"
// @Success 200 {object} domain.IngestAnnouncementOutput "ok"
// @Router /bot/announcements [post]
func (h *handlers) ingestAnnouncement(r *stdhttp.Request, in dom.IngestAnnouncementInput) (any, error) {
	author := in.AuthorID
	if author == "" {
		author = h.opt.SelfID
	}
	a, ok := h.svc.HandleWinner(r.Context(), dom.Message{ID: uuid.NewString(), AuthorID: author, Content: in.Content})
	if !ok {
		return dom.IngestAnnouncementOutput{}, nil
	}
	return dom.IngestAnnouncementOutput{Recognized: true, Day: int(a.Day), Winner: a.Winner, Answer: a.Answer}, nil
}

// swagger:route GET /bot/days/{day} Bot botDay
// @Summary Ranked results of a puzzle day
// @Tags Bot
// @Produce json
// @Param day path int true "Puzzle number"
// @Success 200 {object} domain.DayView "ok"
// @Failure 404 {object} httpkit.Envelope "unknown day"
// @Router /bot/days/{day} [get]
func (h *handlers) day(r *stdhttp.Request) (any, error) {
	day, err := dayParam(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Day(r.Context(), day)
}

// swagger:route POST /bot/days/{day}/announce Bot botAnnounce
// @Summary Announce a day now
// @Tags Bot
// @Produce json
// @Param X-Wordle-Admin header string true "Admin user id"
// @Param day path int true "Puzzle number"
// @Success 200 {object} domain.Reply "ok"
// @Failure 403 {object} httpkit.Envelope "not an admin"
// @Router /bot/days/{day}/announce [post]
func (h *handlers) announce(r *stdhttp.Request) (any, error) {
	day, err := dayParam(r)
	if err != nil {
		return nil, err
	}
	reply, err := h.svc.Announce(r.Context(), day)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Deliver(r.Context(), []dom.Reply{reply}); err != nil {
		return nil, err
	}
	return reply, nil
}

// swagger:route GET /bot/answers/{word} Bot botAnswer
// @Summary When a word was the answer
// @Tags Bot
// @Produce json
// @Param word path string true "Five letter word"
// @Success 200 {object} domain.AnswerView "ok"
// @Failure 404 {object} httpkit.Envelope "never the answer"
// @Router /bot/answers/{word} [get]
func (h *handlers) answer(r *stdhttp.Request) (any, error) {
	word, err := httpkit.Param(r, "word", "required,alpha,len=5")
	if err != nil {
		return nil, err
	}
	v, ok := h.svc.FindAnswer(word)
	if !ok {
		return nil, perr.WithField(perr.NotFoundf("%s has not been the answer", word), "word")
	}
	return v, nil
}

// swagger:route POST /bot/roundup Bot botRoundup
// @Summary Season report from announcement texts
// @Tags Bot
// @Accept json
// @Produce json
// @Param payload body domain.RoundupInput true "Texts"
// @Success 200 {object} domain.RoundupOutput "ok"
// @Router /bot/roundup [post]
func (h *handlers) roundup(_ *stdhttp.Request, in dom.RoundupInput) (any, error) {
	report, days, err := h.svc.SeasonReport(in.Texts, in.Year)
	if err != nil {
		return nil, err
	}
	return dom.RoundupOutput{Year: in.Year, Days: days, Report: report}, nil
}

func dayParam(r *stdhttp.Request) (wordle.Day, error) {
	s, err := httpkit.Param(r, "day", "required,number,max=6")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("day must be a puzzle number"), "day")
	}
	return wordle.Day(n), nil
}
