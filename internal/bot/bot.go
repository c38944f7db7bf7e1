package bot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

// lockedSource serializes access to a rand.Source. math/rand sources are
// not safe for concurrent use, and one Bot serves every in-flight request.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// Bot runs the per-request pipeline: small-talk pre-check, context
// retrieval, model call, response validation, and the deterministic
// fallback. It never returns an empty answer.
type Bot struct {
	retriever    domain.Retriever
	generator    domain.Generator // nil when no API key is configured
	systemPrompt string
	genCfg       domain.GenerationConfig
	logger       *zap.Logger
	rng          *rand.Rand
}

// Option customizes a Bot.
type Option func(*Bot)

// WithRand injects the random source used for small-talk reply selection.
// An injected source is used as-is; callers sharing the Bot across
// goroutines must hand in one that is safe for concurrent use.
func WithRand(rng *rand.Rand) Option {
	return func(b *Bot) { b.rng = rng }
}

// New builds a Bot. generator may be nil, in which case every
// non-small-talk request goes straight to the fallback responder.
func New(retriever domain.Retriever, generator domain.Generator, systemPrompt string, genCfg domain.GenerationConfig, logger *zap.Logger, opts ...Option) *Bot {
	b := &Bot{
		retriever:    retriever,
		generator:    generator,
		systemPrompt: systemPrompt,
		genCfg:       genCfg,
		logger:       logger,
		rng:          rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano())}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reply answers a user message. Model failures of any kind, missing
// credentials included, collapse into the canned fallback: bad upstream
// weather is never the caller's problem.
func (b *Bot) Reply(ctx context.Context, message string) string {
	if cat := classifySmallTalk(message); cat != smallTalkNone {
		return smallTalkReply(cat, b.rng)
	}

	snippets := b.retriever.Search(message)
	b.logger.Debug("context retrieved", zap.Int("snippets", len(snippets)))

	if b.generator == nil {
		return Fallback(message)
	}

	prompt := buildPrompt(b.systemPrompt, snippets, message)
	answer, err := b.generator.Generate(ctx, prompt, b.genCfg)
	if err != nil {
		b.logger.Warn("model call failed, using fallback", zap.Error(err))
		return Fallback(message)
	}

	verdict := Validate(answer, message)
	if !verdict.Valid {
		b.logger.Warn("response failed validation, using fallback", zap.String("reason", verdict.Reason))
		return Fallback(message)
	}
	return answer
}
