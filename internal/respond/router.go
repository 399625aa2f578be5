package respond

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/metrics"
)

// Reply source markers, mainly for logging and tests.
const (
	SourceCanned   = "canned"
	SourceIntent   = "intent"
	SourceCache    = "cache"
	SourceModel    = "model"
	SourceFallback = "fallback"
)

const fallbackMessage = "I'm having trouble connecting right now, but I'm here for you."

// Reply is the routed answer to one user turn.
type Reply struct {
	Message  string
	Language Language
	Source   string
}

// Router decides how a user turn is answered: canned reply, intent shortcut,
// cached reply, or a generative call. The generative path is the only one
// subject to the request budget.
type Router struct {
	ai      adapter.AIServiceAdapter
	model   string
	catalog *Catalog
	cache   *ResponseCache
	budget  *RequestBudget
	log     *zerolog.Logger
}

// NewRouter wires a router. cache may be nil to disable response caching.
func NewRouter(ai adapter.AIServiceAdapter, model string, catalog *Catalog, cache *ResponseCache, budget *RequestBudget, logger *zerolog.Logger) *Router {
	return &Router{
		ai:      ai,
		model:   model,
		catalog: catalog,
		cache:   cache,
		budget:  budget,
		log:     logger,
	}
}

// Respond routes one user message. The returned error is only ever
// domain.ErrRateLimited; upstream model failures are logged and degrade to a
// static fallback reply instead of surfacing.
func (r *Router) Respond(ctx context.Context, message string, history []model.Message) (Reply, error) {
	lang := DetectLanguage(message)

	if canned := r.catalog.Canned(lang, message); canned != "" {
		return Reply{Message: canned, Language: lang, Source: SourceCanned}, nil
	}

	if intent := DetectIntent(message); intent != IntentConversation {
		return Reply{Message: r.catalog.IntentReply(lang, intent), Language: lang, Source: SourceIntent}, nil
	}

	// A cache hit costs nothing: the budget only guards actual provider calls.
	key := Key(lang, message, len(history))
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			metrics.IncCacheRequest("chat_reply", "hit")
			return Reply{Message: cached, Language: lang, Source: SourceCache}, nil
		}
		metrics.IncCacheRequest("chat_reply", "miss")
	}

	if err := r.budget.Consume(); err != nil {
		return Reply{}, err
	}

	answer, err := r.ai.Chat(ctx, r.model, promptTurns(lang, message, history))
	if err != nil {
		r.log.Warn().Err(err).Str("language", string(lang)).Msg("generative call failed, serving fallback")
		return Reply{Message: fallbackMessage, Language: LangEnglish, Source: SourceFallback}, nil
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = fallbackMessage
	}

	if r.cache != nil {
		r.cache.Set(key, answer)
	}
	return Reply{Message: answer, Language: lang, Source: SourceModel}, nil
}

// maxHistoryTurns caps the context forwarded to the provider.
const maxHistoryTurns = 10

// promptTurns assembles the system instruction, recent history and the
// current message into adapter turns. Only the trailing turns go out; the
// full history stays server-side.
func promptTurns(lang Language, message string, history []model.Message) []adapter.Message {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	turns := make([]adapter.Message, 0, len(history)+2)
	turns = append(turns, adapter.Message{Role: "system", Content: SystemInstruction(lang)})
	for _, m := range history {
		turns = append(turns, adapter.Message{Role: m.Role, Content: m.Content})
	}
	turns = append(turns, adapter.Message{Role: model.RoleUser, Content: message})
	return turns
}
