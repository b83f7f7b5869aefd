package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/jageocoder-go/app/models"
)

// AdminReviewService is the offline-only operator workflow for curating
// address aliases: queries the engine could not confidently resolve are
// queued here, an operator approves or rejects them, and an approval
// produces a LearnedAlias. Never consulted by the query-path walker
// (SPEC_FULL §1's "no write-through updates from the query path"
// Non-goal). Generalized from the teacher's AdminService, trading its
// Meilisearch-synonym-rebuild responsibility (dropped, see DESIGN.md)
// for this alias-curation one, keeping the same Mongo collection/stats
// patterns.
type AdminReviewService struct {
	db        *mongo.Database
	logger    *zap.Logger
	startTime time.Time
}

// SystemStats mirrors the teacher's admin stats shape, generalized to
// this service's collections.
type SystemStats struct {
	PendingReviews    int64                  `json:"pending_reviews"`
	ApprovedReviews   int64                  `json:"approved_reviews"`
	LearnedAliases    int64                  `json:"learned_aliases"`
	DictionaryReloads int64                  `json:"dictionary_reloads"`
	UptimeSeconds     int64                  `json:"uptime_seconds"`
	MemoryUsage       map[string]interface{} `json:"memory_usage"`
}

func NewAdminReviewService(db *mongo.Database, logger *zap.Logger) *AdminReviewService {
	return &AdminReviewService{db: db, logger: logger, startTime: time.Now()}
}

func (s *AdminReviewService) reviews() *mongo.Collection   { return s.db.Collection("alias_reviews") }
func (s *AdminReviewService) aliases() *mongo.Collection   { return s.db.Collection("learned_aliases") }
func (s *AdminReviewService) versions() *mongo.Collection  { return s.db.Collection("dictionary_versions") }

// QueueForReview records a query that came back unmatched or ambiguous.
func (s *AdminReviewService) QueueForReview(ctx context.Context, query string, candidates []models.GeocodeCandidate) error {
	review := models.NewAliasReview(query, candidates)
	_, err := s.reviews().InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("review: queueing %q: %w", query, err)
	}
	return nil
}

// ListPending returns reviews awaiting an operator decision, most
// recent first, capped at limit.
func (s *AdminReviewService) ListPending(ctx context.Context, limit int64) ([]models.AliasReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := s.reviews().Find(ctx, bson.M{"status": models.ReviewStatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("review: listing pending: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.AliasReview
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("review: decoding pending list: %w", err)
	}
	return out, nil
}

// Approve marks a queued query resolved and records the learned alias
// an operator decided it should map to.
func (s *AdminReviewService) Approve(ctx context.Context, query, reviewerID, originalToken, canonicalName string, nodeID int64, level int) error {
	alias := models.NewLearnedAlias(originalToken, canonicalName, nodeID, level)
	if _, err := s.aliases().InsertOne(ctx, alias); err != nil {
		return fmt.Errorf("review: inserting learned alias: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":      models.ReviewStatusApproved,
			"resolved_to": alias,
			"reviewer_id": reviewerID,
			"reviewed_at": time.Now(),
		},
	}
	res, err := s.reviews().UpdateOne(ctx, bson.M{"query": query, "status": models.ReviewStatusPending}, update)
	if err != nil {
		return fmt.Errorf("review: approving %q: %w", query, err)
	}
	if res.MatchedCount == 0 {
		s.logger.Warn("approve matched no pending review", zap.String("query", query))
	}
	return nil
}

// Reject marks a queued query as not resolvable.
func (s *AdminReviewService) Reject(ctx context.Context, query, reviewerID string) error {
	update := bson.M{
		"$set": bson.M{
			"status":      models.ReviewStatusRejected,
			"reviewer_id": reviewerID,
			"reviewed_at": time.Now(),
		},
	}
	_, err := s.reviews().UpdateOne(ctx, bson.M{"query": query, "status": models.ReviewStatusPending}, update)
	if err != nil {
		return fmt.Errorf("review: rejecting %q: %w", query, err)
	}
	return nil
}

// RecordDictionaryReload logs a dictionary (re)load observed by
// cmd/worker, purely for the operator-facing audit trail.
func (s *AdminReviewService) RecordDictionaryReload(ctx context.Context, signature, source string, nodeCount int) error {
	version := models.NewDictionaryVersion(signature, source, nodeCount)
	if _, err := s.versions().InsertOne(ctx, version); err != nil {
		return fmt.Errorf("review: recording dictionary reload: %w", err)
	}
	return nil
}

// GetSystemStats reports review-queue and reload-history counters plus
// basic process memory usage.
func (s *AdminReviewService) GetSystemStats(ctx context.Context) (*SystemStats, error) {
	pending, err := s.reviews().CountDocuments(ctx, bson.M{"status": models.ReviewStatusPending})
	if err != nil {
		return nil, fmt.Errorf("review: counting pending: %w", err)
	}
	approved, err := s.reviews().CountDocuments(ctx, bson.M{"status": models.ReviewStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("review: counting approved: %w", err)
	}
	aliasCount, err := s.aliases().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("review: counting aliases: %w", err)
	}
	reloadCount, err := s.versions().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("review: counting dictionary reloads: %w", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		PendingReviews:    pending,
		ApprovedReviews:   approved,
		LearnedAliases:    aliasCount,
		DictionaryReloads: reloadCount,
		UptimeSeconds:     int64(time.Since(s.startTime).Seconds()),
		MemoryUsage: map[string]interface{}{
			"alloc_mb": m.Alloc / 1024 / 1024,
			"sys_mb":   m.Sys / 1024 / 1024,
			"num_gc":   m.NumGC,
		},
	}, nil
}
