package models

import (
	"time"

	"github.com/jageocoder-go/helpers/utils"
)

// AliasReview is a query the geocoder could not confidently resolve,
// queued for an operator to curate into a LearnedAlias. Offline-only:
// nothing on the query path consults this collection.
type AliasReview struct {
	ReviewID   string     `bson:"review_id" json:"review_id"`
	Query      string     `bson:"query" json:"query"`
	Candidates []GeocodeCandidate `bson:"candidates" json:"candidates"`
	Status     string     `bson:"status" json:"status"`
	ResolvedTo *LearnedAlias `bson:"resolved_to,omitempty" json:"resolved_to,omitempty"`
	ReviewerID *string    `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	ReviewedAt *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}

// Status constants for AliasReview.Status.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// NewAliasReview queues a query with zero or ambiguous candidates.
func NewAliasReview(query string, candidates []GeocodeCandidate) *AliasReview {
	return &AliasReview{
		ReviewID:   utils.GenerateUUID(),
		Query:      query,
		Candidates: candidates,
		Status:     ReviewStatusPending,
		CreatedAt:  time.Now(),
	}
}

// Approve records the operator decision and the alias it resolved to.
func (r *AliasReview) Approve(reviewerID string, alias *LearnedAlias) {
	r.Status = ReviewStatusApproved
	r.ResolvedTo = alias
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// Reject marks the query as not resolvable into any existing node.
func (r *AliasReview) Reject(reviewerID string) {
	r.Status = ReviewStatusRejected
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// IsPending reports whether the review is still awaiting a decision.
func (r *AliasReview) IsPending() bool {
	return r.Status == ReviewStatusPending
}
