package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rce-newyear/greetings-api/config"
	"github.com/rce-newyear/greetings-api/internal/cache"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/pkg/aigateway"
	"github.com/rce-newyear/greetings-api/pkg/httpclient"
	"github.com/rce-newyear/greetings-api/pkg/jsonextract"
	"github.com/rce-newyear/greetings-api/pkg/logger"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
	"github.com/rce-newyear/greetings-api/pkg/slug"
	"github.com/rce-newyear/greetings-api/pkg/trigger"
	"go.uber.org/zap"
)

// Gateway failures the caller must surface instead of falling back.
var (
	ErrGenerationRateLimited    = aigateway.ErrRateLimited
	ErrGenerationQuotaExhausted = aigateway.ErrQuotaExhausted
	ErrGenerationMisconfigured  = aigateway.ErrMissingCredential
)

// GreetingService produces festive greetings: remote generation first,
// deterministic local composition when the remote output is unusable.
type GreetingService struct {
	repo       GreetingRepositoryInterface
	gateway    TextGateway
	cache      *cache.GreetingCache
	config     *config.Config
	httpClient httpclient.Client
	composer   *fallbackComposer
}

func NewGreetingService(
	repo GreetingRepositoryInterface,
	gateway TextGateway,
	greetingCache *cache.GreetingCache,
	cfg *config.Config,
	httpClient httpclient.Client,
) *GreetingService {
	return &GreetingService{
		repo:       repo,
		gateway:    gateway,
		cache:      greetingCache,
		config:     cfg,
		httpClient: httpClient,
		composer:   newFallbackComposer(nil),
	}
}

// Generate validates the request, asks the gateway for a greeting and
// assembles the response. Recoverable gateway trouble (network errors,
// server errors, unusable output) is absorbed by the local composer;
// rate limiting, quota exhaustion and a missing credential propagate.
func (s *GreetingService) Generate(ctx context.Context, req *models.GenerateGreetingRequest) (*models.Greeting, error) {
	if verr := ValidateGreetingRequest(req); verr != nil {
		return nil, verr
	}

	yearOrdinal := ordinalYear(req.Year)
	systemPrompt, userPrompt := buildPrompts(req, yearOrdinal)

	source := models.SourceAI
	var payload *greetingPayload

	content, err := s.gateway.Complete(ctx, systemPrompt, userPrompt, s.config.AIGateway.Temperature)
	switch {
	case err == nil:
		payload = parseRemotePayload(content)
		if payload == nil {
			logger.Warn("Gateway returned unusable greeting content, composing locally",
				zap.String("language", string(req.Language)))
		}
	case stderrors.Is(err, aigateway.ErrRateLimited),
		stderrors.Is(err, aigateway.ErrQuotaExhausted),
		stderrors.Is(err, aigateway.ErrMissingCredential):
		metrics.GreetingGenerations.WithLabelValues(string(models.SourceAI), "error").Inc()
		return nil, err
	default:
		logger.Warn("Gateway call failed, composing locally",
			zap.String("language", string(req.Language)),
			zap.Error(err))
	}

	if payload == nil {
		payload = s.composer.Compose(req, yearOrdinal)
		source = models.SourceFallback
	}

	greeting := &models.Greeting{
		Name:              req.Name,
		Branch:            req.Branch,
		Year:              yearOrdinal + " Year",
		GreetingTitle:     payload.GreetingTitle,
		GreetingBody:      payload.GreetingBody,
		MotivationalQuote: payload.MotivationalQuote,
	}
	metrics.GreetingGenerations.WithLabelValues(string(source), "success").Inc()

	s.persist(ctx, req, greeting, source)

	return greeting, nil
}

// persist stores the greeting and attaches the share link. Storage is
// best effort: on failure the caller still gets the greeting, just
// without a link.
func (s *GreetingService) persist(ctx context.Context, req *models.GenerateGreetingRequest, greeting *models.Greeting, source models.GreetingSource) {
	id := uuid.New()
	suffix := strings.SplitN(id.String(), "-", 2)[0]
	greetingSlug := slug.GenerateGreetingSlug(req.Name, suffix)

	record := &models.GreetingRecord{
		ID:                id,
		Slug:              greetingSlug,
		Name:              req.Name,
		Branch:            req.Branch,
		Year:              req.Year,
		RollNumber:        optionalField(req.RollNumber),
		Goal:              optionalField(req.Goal),
		GreetingTitle:     greeting.GreetingTitle,
		GreetingBody:      greeting.GreetingBody,
		MotivationalQuote: greeting.MotivationalQuote,
		Language:          req.Language,
		Source:            source,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		metrics.GreetingsStored.WithLabelValues("error").Inc()
		logger.Error("Failed to store greeting",
			zap.String("slug", greetingSlug),
			zap.Error(err))
		return
	}
	metrics.GreetingsStored.WithLabelValues("success").Inc()

	greeting.Slug = greetingSlug
	greeting.ShareURL = fmt.Sprintf("%s/g/%s", s.config.Server.BaseURL, greetingSlug)

	if url := s.config.EventTriggers.GreetingCreatedTriggerURL; url != "" {
		trigger.CallAsync(url, record.ID.String(), s.httpClient)
	}
}

// GetBySlug resolves a shared greeting, serving repeated opens from cache.
func (s *GreetingService) GetBySlug(ctx context.Context, greetingSlug string) (*models.GreetingRecord, error) {
	if record, found := s.cache.Get(greetingSlug); found {
		return record, nil
	}

	record, err := s.repo.GetBySlug(ctx, greetingSlug)
	if err != nil {
		return nil, err
	}

	s.cache.Set(greetingSlug, record)
	return record, nil
}

// parseRemotePayload digs the greeting object out of the gateway reply,
// which may wrap it in prose or markdown fencing. Returns nil when no
// usable payload is present.
func parseRemotePayload(content string) *greetingPayload {
	raw, ok := jsonextract.FirstObject(content)
	if !ok {
		return nil
	}

	var payload greetingPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil
	}

	if strings.TrimSpace(payload.GreetingTitle) == "" ||
		strings.TrimSpace(payload.GreetingBody) == "" ||
		strings.TrimSpace(payload.MotivationalQuote) == "" {
		return nil
	}

	return &payload
}

func optionalField(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
