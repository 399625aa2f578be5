package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(crisisEventsTotal, trendAnalysesTotal, chatRepliesTotal, rateLimitedTotal)
}

var (
	crisisEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crisis_events_total",
			Help: "Crisis detections by severity.",
		},
		[]string{"severity"},
	)

	trendAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crisis_trend_analyses_total",
			Help: "Conversation trend analyses by resulting trend.",
		},
		[]string{"trend"},
	)

	chatRepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Chat replies by source (canned/intent/cache/model/fallback).",
		},
		[]string{"source", "language"},
	)

	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_rate_limited_total",
			Help: "Chat turns rejected because the request budget was exhausted.",
		},
	)
)

func IncCrisisEvent(severity string) {
	crisisEventsTotal.WithLabelValues(norm(severity)).Inc()
}

func IncTrendAnalysis(trend string) {
	trendAnalysesTotal.WithLabelValues(norm(trend)).Inc()
}

func IncChatReply(source, language string) {
	chatRepliesTotal.WithLabelValues(norm(source), norm(language)).Inc()
}

func IncRateLimited() {
	rateLimitedTotal.Inc()
}
