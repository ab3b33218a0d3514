package entities

import (
	"strings"

	"pupper-backend/pkg/utils"
)

// VoteType is a community signal on a dog: wag is an upvote, growl a downvote
type VoteType string

const (
	VoteWag   VoteType = "wag"
	VoteGrowl VoteType = "growl"
)

// Vote records a single (user, dog) vote. The table is keyed on
// (user_id, dog_id), so a re-vote overwrites the previous record.
type Vote struct {
	UserID    string   `json:"user_id" dynamodbav:"user_id"`
	DogID     string   `json:"dog_id" dynamodbav:"dog_id"`
	VoteType  VoteType `json:"vote_type" dynamodbav:"vote_type"`
	CreatedAt string   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt string   `json:"updated_at" dynamodbav:"updated_at"`
}

// NewVote builds a vote record with the type lowercased
func NewVote(userID, dogID string, voteType VoteType) *Vote {
	now := utils.NowUTC()
	return &Vote{
		UserID:    userID,
		DogID:     dogID,
		VoteType:  VoteType(strings.ToLower(string(voteType))),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Valid reports whether v is one of the accepted vote types
func (v VoteType) Valid() bool {
	switch VoteType(strings.ToLower(string(v))) {
	case VoteWag, VoteGrowl:
		return true
	}
	return false
}

// CounterField returns the dog attribute this vote type increments
func (v VoteType) CounterField() string {
	if VoteType(strings.ToLower(string(v))) == VoteGrowl {
		return "growl_count"
	}
	return "wag_count"
}
