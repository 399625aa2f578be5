// File: internal/usecase/chat_uc.go
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/crisis"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/logging"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/metrics"
	"github.com/ShamanRShetty/Mental-Wellness/internal/respond"
	"github.com/ShamanRShetty/Mental-Wellness/internal/sentiment"
)

// Responder routes one user turn to a reply. Satisfied by *respond.Router.
type Responder interface {
	Respond(ctx context.Context, message string, history []model.Message) (respond.Reply, error)
}

// Compile-time check
var _ ChatUseCase = (*chatUC)(nil)

// ChatReply is the full payload for one answered turn: the conversational
// reply plus any crisis safety payload and trend advisory.
type ChatReply struct {
	SessionID string           `json:"sessionId"`
	Reply     string           `json:"reply"`
	Language  string           `json:"language"`
	Source    string           `json:"source"`
	Sentiment *model.Sentiment `json:"sentiment,omitempty"`

	Crisis         *crisis.Response    `json:"crisis,omitempty"`
	CrisisSeverity string              `json:"crisisSeverity,omitempty"`
	Trend          *crisis.TrendResult `json:"trend,omitempty"`
}

type ChatUseCase interface {
	StartSession(ctx context.Context, language string) (*model.Session, error)
	SendMessage(ctx context.Context, sessionID, message string) (*ChatReply, error)
	History(ctx context.Context, sessionID string) ([]model.Message, error)
	ClearHistory(ctx context.Context, sessionID string) error
	SentimentTrend(ctx context.Context, sessionID string) (sentiment.TrendResult, error)
}

type chatUC struct {
	sessions repository.SessionRepository
	router   Responder
	analyzer *sentiment.Analyzer
	log      *zerolog.Logger
	dev      bool
}

func NewChatUseCase(sessions repository.SessionRepository, router Responder, analyzer *sentiment.Analyzer, logger *zerolog.Logger, dev bool) *chatUC {
	return &chatUC{sessions: sessions, router: router, analyzer: analyzer, log: logger, dev: dev}
}

func (c *chatUC) StartSession(ctx context.Context, language string) (*model.Session, error) {
	defer logging.TraceDuration(c.log, "ChatUC.StartSession")()

	s := model.NewSession(uuid.NewString(), language)
	if err := c.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	greeting := respond.ContextualGreeting(s.CreatedAt)
	msg := s.AddMessage(model.RoleAssistant, greeting, nil)
	if err := c.sessions.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *chatUC) SendMessage(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	defer logging.TraceDuration(c.log, "ChatUC.SendMessage")()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidArgument
	}
	c.log.Debug().Str("session_id", sessionID).Str("message", logging.Redact(message, c.dev)).Msg("inbound turn")

	s, err := c.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	analysis := c.analyzer.Analyze(ctx, message)
	sent := &model.Sentiment{Score: analysis.Score, Magnitude: analysis.Magnitude}
	userMsg := s.AddMessage(model.RoleUser, message, sent)
	if err := c.sessions.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	out := &ChatReply{SessionID: sessionID, Sentiment: sent}

	// A detected crisis never replaces the conversational reply: the safety
	// payload rides alongside whatever the router answers.
	detection := crisis.Classify(message)
	if detection.IsCrisis {
		event := s.AddCrisisEvent(string(detection.Severity), detection.Keywords, detection.Score)
		if err := c.sessions.AppendCrisisEvent(ctx, event); err != nil {
			return nil, err
		}
		metrics.IncCrisisEvent(string(detection.Severity))
		out.Crisis = crisis.ResponseFor(detection.Severity)
		out.CrisisSeverity = string(detection.Severity)
	}

	// History excludes the current turn: the router appends it itself.
	reply, err := c.router.Respond(ctx, message, s.History[:len(s.History)-1])
	switch {
	case err == nil:
		metrics.IncChatReply(reply.Source, string(reply.Language))
		out.Reply = reply.Message
		out.Language = string(reply.Language)
		out.Source = reply.Source
	case err == domain.ErrRateLimited && out.Crisis != nil:
		// A crisis turn must not bounce off the request budget; serve the
		// safety template as the reply instead.
		metrics.IncRateLimited()
		out.Reply = out.Crisis.Message
		out.Language = s.Preferences.Language
		out.Source = "crisis"
	default:
		if err == domain.ErrRateLimited {
			metrics.IncRateLimited()
		}
		return nil, err
	}

	assistantMsg := s.AddMessage(model.RoleAssistant, out.Reply, nil)
	if err := c.sessions.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	trend := crisis.AnalyzeTrend(s.History)
	metrics.IncTrendAnalysis(trend.Trend)
	if trend.Trend == crisis.TrendConcerning || trend.Trend == crisis.TrendWorsening {
		out.Trend = &trend
	}

	if err := c.sessions.Touch(ctx, sessionID); err != nil {
		c.log.Warn().Err(err).Str("session_id", sessionID).Msg("touch session failed")
	}
	return out, nil
}

func (c *chatUC) History(ctx context.Context, sessionID string) ([]model.Message, error) {
	return c.sessions.History(ctx, sessionID)
}

func (c *chatUC) ClearHistory(ctx context.Context, sessionID string) error {
	return c.sessions.ClearHistory(ctx, sessionID)
}

// SentimentTrend scores the session's user turns and compares half-window
// averages to spot direction of travel.
func (c *chatUC) SentimentTrend(ctx context.Context, sessionID string) (sentiment.TrendResult, error) {
	history, err := c.sessions.History(ctx, sessionID)
	if err != nil {
		return sentiment.TrendResult{}, err
	}
	var userTurns []model.Message
	for _, m := range history {
		if m.Role == model.RoleUser {
			userTurns = append(userTurns, m)
		}
	}
	return sentiment.AnalyzeTrend(userTurns), nil
}
