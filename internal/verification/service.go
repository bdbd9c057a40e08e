// Package verification runs breach verifications for authenticated callers:
// it rate limits, consults the result cache, queries the breach provider,
// scores the exposure and persists the outcome.
package verification

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"breachcheck/internal/config"
	"breachcheck/internal/exposure"
	"breachcheck/pkg/breachprovider"
	"breachcheck/pkg/domain"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/metrics"
	"breachcheck/pkg/ratelimit"
	"breachcheck/pkg/resultcache"
	"breachcheck/pkg/serrors"
	"breachcheck/pkg/storage"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

const instrumentationName = "breachcheck/internal/verification"

// Options configure how verifications are run.
type Options struct {
	// HistoryLimit is how many history rows History returns.
	HistoryLimit uint
	// StaleAfter is how long a search may stay PROCESSING before its expiry
	// job marks it FAILED.
	StaleAfter time.Duration
	// PasswordPepper keys the digest stored in place of exposed passwords.
	PasswordPepper string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HistoryLimit:   cfg.Verification.HistoryLimit,
		StaleAfter:     cfg.Worker.StaleAfter,
		PasswordPepper: cfg.Verification.PasswordPepper,
	}
}

// Deps are the collaborators of the verification service.
type Deps struct {
	Storage  storage.Storage
	Provider breachprovider.Client
	Limiter  *ratelimit.Limiter
	Cache    *resultcache.Cache
	Analyzer *exposure.Analyzer

	// MeterProvider and TracerProvider default to no-op and the global
	// provider respectively.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
	Clock          clockwork.Clock
}

type instruments struct {
	verifications    metric.Int64Counter
	cacheLookups     metric.Int64Counter
	providerDuration metric.Float64Histogram
}

type service struct {
	options Options
	deps    Deps

	pepper      []byte
	group       singleflight.Group
	tracer      trace.Tracer
	instruments instruments
}

// New creates a Verifier.
func New(deps Deps, options Options) (Verifier, error) {
	if deps.MeterProvider == nil {
		deps.MeterProvider = noop.NewMeterProvider()
	}
	if deps.TracerProvider == nil {
		deps.TracerProvider = otel.GetTracerProvider()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if options.HistoryLimit == 0 {
		options.HistoryLimit = 10
	}

	meter := deps.MeterProvider.Meter(instrumentationName)
	var ins instruments
	var err error
	ins.verifications, err = meter.Int64Counter("breachcheck.verifications",
		metric.WithDescription("Breach verifications by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create verifications counter: %w", err)
	}
	ins.cacheLookups, err = meter.Int64Counter("breachcheck.cache.lookups",
		metric.WithDescription("Result cache lookups by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create cache counter: %w", err)
	}
	ins.providerDuration, err = meter.Float64Histogram("breachcheck.provider.duration",
		metric.WithDescription("Breach provider search latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create provider histogram: %w", err)
	}

	return &service{
		options:     options,
		deps:        deps,
		pepper:      pepperKey(options.PasswordPepper),
		tracer:      deps.TracerProvider.Tracer(instrumentationName),
		instruments: ins,
	}, nil
}

// pepperKey fits the configured pepper into a BLAKE2b key.
func pepperKey(pepper string) []byte {
	if pepper == "" {
		return nil
	}
	if len(pepper) > blake2b.Size {
		sum := blake2b.Sum512([]byte(pepper))

		return sum[:]
	}

	return []byte(pepper)
}

func (s *service) countOutcome(ctx context.Context, outcome string) {
	s.instruments.verifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Verify runs a breach verification for userID.
func (s *service) Verify(ctx context.Context,
	userID domain.UserID,
	kind domain.SearchKind,
	value string) (*domain.Verification, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID), zap.String("type", string(kind)))

	allowed, err := s.deps.Limiter.Allow(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("could not check rate limit: %w", err)
	}
	if !allowed {
		s.countOutcome(ctx, "rate_limited")

		return nil, serrors.With(serrors.ErrRateLimited, "too many requests, try again later")
	}

	value, err = NormalizeSearchValue(kind, value)
	if err != nil {
		s.countOutcome(ctx, "invalid")

		return nil, err
	}
	if kind == domain.SearchKindEmail {
		ctx = logger.WithFields(ctx, logger.MaskedEmail("searchValue", value))
	} else {
		ctx = logger.WithFields(ctx, zap.String("searchValue", value))
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	req, err := s.createRequest(ctx, profile, kind, value)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithFields(ctx, zap.Stringer("searchRequestID", req.ID))

	query := breachprovider.BuildQuery(kind, value)

	cached, hit, err := s.deps.Cache.Get(ctx, query)
	if err != nil {
		logger.Warn(ctx, "could not read result cache", zap.Error(err))
	}
	s.instruments.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
	if hit {
		return s.completeFromCache(ctx, profile, req, cached)
	}

	res, err := s.search(ctx, kind, value, query)
	if err != nil {
		logger.Error(ctx, "breach provider search failed", zap.Error(err))
		s.fail(ctx, req.ID)
		s.countOutcome(ctx, "failed")

		return nil, err
	}

	v, err := s.evaluate(ctx, req, res)
	if err != nil {
		s.fail(ctx, req.ID)
		s.countOutcome(ctx, "failed")

		return nil, err
	}

	if err := s.persist(ctx, profile, req, v); err != nil {
		logger.Error(ctx, "could not persist verification", zap.Error(err))
		s.fail(ctx, req.ID)
		s.countOutcome(ctx, "failed")

		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not persist search results")
	}

	if err := s.deps.Cache.Put(ctx, query, v); err != nil {
		logger.Warn(ctx, "could not write result cache", zap.Error(err))
	}

	logger.Info(ctx, "breach verification completed",
		zap.Int("breachCount", v.BreachCount),
		zap.String("riskLevel", string(v.RiskLevel)))
	s.countOutcome(ctx, "completed")

	return v, nil
}

// History returns the caller's most recent searches.
func (s *service) History(ctx context.Context, userID domain.UserID) ([]domain.SearchHistory, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.deps.Storage.RecentSearchHistory(ctx, profile.ID, s.options.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get search history: %w", err)
	}

	return rows, nil
}

func (s *service) profile(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	profile, err := s.deps.Storage.ProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return profile, nil
}

// createRequest stores a PROCESSING search request together with its expiry job.
func (s *service) createRequest(ctx context.Context,
	profile *domain.Profile,
	kind domain.SearchKind,
	value string) (*domain.SearchRequest, error) {
	var req *domain.SearchRequest
	if err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err := tx.CreateSearchRequest(ctx, domain.SearchRequest{
			ProfileID:   profile.ID,
			Kind:        kind,
			SearchValue: value,
			Status:      domain.SearchStatusProcessing,
		})
		if err != nil {
			return fmt.Errorf("could not store search request: %w", err)
		}
		req = created

		if s.options.StaleAfter > 0 {
			if _, err := tx.AddJob(ctx, ExpireJobArgs{
				SearchRequestID: created.ID.String(),
				runAt:           s.deps.Clock.Now().Add(s.options.StaleAfter),
			}, nil); err != nil {
				return fmt.Errorf("could not add expiry job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create search request: %w", err)
	}

	return req, nil
}

// search calls the provider. Concurrent identical queries share one call, and
// each caller stops waiting when its own context ends.
func (s *service) search(ctx context.Context,
	kind domain.SearchKind,
	value, query string) (*breachprovider.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "breachprovider.Search",
		trace.WithAttributes(attribute.String("search.type", string(kind))))
	defer span.End()

	start := s.deps.Clock.Now()
	// bounded by the provider client timeout, not by the first caller
	sharedCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(query, func() (any, error) {
		return s.deps.Provider.Search(sharedCtx, kind, value)
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		err := fmt.Errorf("stopped waiting for breach provider: %w", ctx.Err())
		span.RecordError(err)
		span.SetStatus(codes.Error, "caller went away")

		return nil, err
	case r = <-ch:
	}
	v, err, shared := r.Val, r.Err, r.Shared
	elapsed := s.deps.Clock.Since(start).Seconds()
	span.SetAttributes(attribute.Bool("search.shared", shared))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider search failed")
		s.instruments.providerDuration.Record(ctx, elapsed, metric.WithAttributes(attribute.Bool("error", true)))

		return nil, err
	}
	s.instruments.providerDuration.Record(ctx, elapsed, metric.WithAttributes(attribute.Bool("error", false)))

	res, _ := v.(*breachprovider.SearchResult)
	if res == nil {
		res = &breachprovider.SearchResult{}
	}
	logger.Debug(ctx, "breach provider search finished",
		zap.Int("entries", len(res.Entries)),
		zap.Int("total", res.Total),
		zap.Bool("shared", shared))

	return res, nil
}

// evaluate aggregates, analyzes and scores provider entries.
func (s *service) evaluate(ctx context.Context,
	req *domain.SearchRequest,
	res *breachprovider.SearchResult) (*domain.Verification, error) {
	agg := exposure.Aggregate(res.Entries)

	analysis, err := s.deps.Analyzer.Analyze(ctx, agg)
	if err != nil {
		return nil, fmt.Errorf("could not analyze passwords: %w", err)
	}

	assessment := exposure.Score(agg, analysis)

	v := &domain.Verification{
		RequestID:        req.ID,
		SourceRequestID:  req.ID,
		RiskLevel:        assessment.Level,
		RiskScore:        assessment.Score,
		Results:          make([]domain.BreachResult, 0, agg.RecordCount()),
		PasswordAnalysis: make([]domain.PasswordAnalysis, 0, analysis.Len()),
	}

	for _, id := range agg.Identities {
		var domains []string
		if d := emailDomain(id.Email); d != "" {
			domains = []string{d}
		}
		for _, b := range id.Breaches {
			v.Results = append(v.Results, domain.BreachResult{
				RequestID:       req.ID,
				BreachName:      b,
				AffectedEmails:  []string{id.Email},
				AffectedDomains: domains,
				DataTypes:       id.DataTypes[b],
				Severity:        domain.SeverityMedium,
				IsVerified:      true,
			})
		}
	}
	v.BreachCount = len(v.Results)

	for _, p := range analysis.Passwords {
		recommendation := domain.RecommendationConsiderChange
		if p.Strength.IsWeak() {
			recommendation = domain.RecommendationChangeNow
		}
		v.PasswordAnalysis = append(v.PasswordAnalysis, domain.PasswordAnalysis{
			RequestID:      req.ID,
			PasswordHash:   s.passwordReference(p.Password),
			Strength:       p.Strength,
			Occurrences:    p.Occurrences,
			Reused:         p.Reused,
			ExampleEmail:   p.ExampleEmail,
			Recommendation: recommendation,
			CrackTime:      p.CrackTime,
			Patterns:       p.Patterns,
			Entropy:        p.Entropy,
		})
	}

	logger.Debug(ctx, "exposure evaluated",
		zap.Int("identities", len(agg.Identities)),
		zap.Int("passwords", analysis.Len()),
		zap.Int("riskScore", assessment.Score),
		zap.Any("factors", assessment.Factors))

	return v, nil
}

// passwordReference returns the keyed digest stored in place of a password.
func (s *service) passwordReference(pw string) string {
	h, err := blake2b.New256(s.pepper)
	if err != nil {
		// pepperKey never yields a key longer than blake2b.Size
		panic(err)
	}
	_, _ = h.Write([]byte(pw))

	return hex.EncodeToString(h.Sum(nil))
}

func emailDomain(email string) string {
	i := strings.LastIndexByte(email, '@')
	if i < 0 || i == len(email)-1 {
		return ""
	}

	return strings.ToLower(email[i+1:])
}

// persist writes the outcome of a search in a single transaction. Searches
// without results only complete the request.
func (s *service) persist(ctx context.Context,
	profile *domain.Profile,
	req *domain.SearchRequest,
	v *domain.Verification) error {
	ctx, span := s.tracer.Start(ctx, "verification.persist")
	defer span.End()

	err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if len(v.Results) > 0 {
			if err := tx.StoreBreachResults(ctx, v.Results...); err != nil {
				return fmt.Errorf("could not store breach results: %w", err)
			}
		}
		if len(v.PasswordAnalysis) > 0 {
			if err := tx.StorePasswordAnalyses(ctx, v.PasswordAnalysis...); err != nil {
				return fmt.Errorf("could not store password analyses: %w", err)
			}
		}

		return s.complete(ctx, tx, profile, req, v)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
	}

	return err
}

// complete marks req COMPLETED and records it in the profile's history.
func (s *service) complete(ctx context.Context,
	tx storage.AllStorage,
	profile *domain.Profile,
	req *domain.SearchRequest,
	v *domain.Verification) error {
	updated, err := tx.UpdateSearchRequest(ctx, req.ID, storage.SearchRequestUpdates{
		Status:           domain.SearchStatusCompleted,
		TotalBreaches:    &v.BreachCount,
		RiskLevel:        v.RiskLevel,
		RiskScore:        &v.RiskScore,
		OnlyIfProcessing: true,
	})
	if err != nil {
		return fmt.Errorf("could not complete search request: %w", err)
	}
	if updated == nil {
		return errors.New("search request is no longer processing")
	}

	if v.BreachCount == 0 {
		return nil
	}

	if _, err := tx.AppendSearchHistory(ctx, domain.SearchHistory{
		ProfileID:       profile.ID,
		SearchRequestID: req.ID,
		Kind:            req.Kind,
		SearchValue:     req.SearchValue,
		BreachCount:     v.BreachCount,
		RiskLevel:       v.RiskLevel,
	}); err != nil {
		return fmt.Errorf("could not append search history: %w", err)
	}

	return nil
}

// completeFromCache completes req with a cached outcome without calling the provider.
func (s *service) completeFromCache(ctx context.Context,
	profile *domain.Profile,
	req *domain.SearchRequest,
	cached *domain.Verification) (*domain.Verification, error) {
	v := *cached
	v.RequestID = req.ID
	v.Cached = true

	if err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return s.complete(ctx, tx, profile, req, &v)
	}); err != nil {
		logger.Error(ctx, "could not persist cached verification", zap.Error(err))
		s.fail(ctx, req.ID)
		s.countOutcome(ctx, "failed")

		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not persist search results")
	}

	logger.Info(ctx, "breach verification served from cache",
		zap.Stringer("sourceRequestID", v.SourceRequestID),
		zap.Int("breachCount", v.BreachCount))
	s.countOutcome(ctx, "cached")

	return &v, nil
}

// fail marks a search FAILED. It runs even when ctx is already cancelled.
func (s *service) fail(ctx context.Context, id domain.SearchRequestID) {
	ctx = context.WithoutCancel(ctx)
	if _, err := s.deps.Storage.UpdateSearchRequest(ctx, id, storage.SearchRequestUpdates{
		Status:           domain.SearchStatusFailed,
		OnlyIfProcessing: true,
	}); err != nil {
		logger.Warn(ctx, "could not mark search request as failed", zap.Error(err))
	}
}
