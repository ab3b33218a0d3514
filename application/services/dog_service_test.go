package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pupper-backend/domain/entities"
	"pupper-backend/pkg/errors"
)

func newTestDogService() (*DogService, *fakeDogRepo, *fakeVoteRepo) {
	dogs := newFakeDogRepo()
	votes := newFakeVoteRepo()
	return NewDogService(dogs, votes, zap.NewNop()), dogs, votes
}

func validDogInput() CreateDogInput {
	return CreateDogInput{
		ShelterName:      "Happy Tails Shelter",
		City:             "Richmond",
		State:            "va",
		DogName:          "Max",
		DogSpecies:       "Labrador Retriever",
		ShelterEntryDate: "1/15/2024",
		DogDescription:   "Friendly and energetic",
		DogBirthday:      "3/20/2021",
		DogWeight:        65,
		DogColor:         "Yellow",
		Tags:             []string{"friendly"},
	}
}

func TestCreateDog(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	assert.NotEmpty(t, dog.DogID)
	assert.Equal(t, "VA", dog.State)
	assert.Equal(t, "yellow", dog.DogColor)
	assert.True(t, dog.IsLabrador)
	assert.Equal(t, entities.DogStatusAvailable, dog.Status)
	assert.Zero(t, dog.WagCount)
	assert.Zero(t, dog.GrowlCount)
	assert.Greater(t, dog.DogAgeYears, 0.0)
	assert.NotEmpty(t, dog.CreatedAt)
	assert.Equal(t, dog.CreatedAt, dog.UpdatedAt)

	// round trip
	got, err := svc.Get(ctx, dog.DogID)
	require.NoError(t, err)
	assert.Equal(t, dog, got)
}

func TestCreateDogRejectsOtherBreeds(t *testing.T) {
	svc, dogs, _ := newTestDogService()

	in := validDogInput()
	in.DogSpecies = "Golden Retriever"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, dogs.dogs)
}

func TestCreateDogRejectsBadFields(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	t.Run("non-positive weight", func(t *testing.T) {
		in := validDogInput()
		in.DogWeight = 0
		_, err := svc.Create(ctx, in)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("bad birthday format", func(t *testing.T) {
		in := validDogInput()
		in.DogBirthday = "2021-03-20"
		_, err := svc.Create(ctx, in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dog_birthday must be in MM/DD/YYYY format")
	})

	t.Run("bad entry date format", func(t *testing.T) {
		in := validDogInput()
		in.ShelterEntryDate = "yesterday"
		_, err := svc.Create(ctx, in)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestGetDogNotFound(t *testing.T) {
	svc, _, _ := newTestDogService()

	_, err := svc.Get(context.Background(), "no-such-dog")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateDog(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	weight := 70.0
	status := "Pending"
	color := "BLACK"
	updated, err := svc.Update(ctx, dog.DogID, UpdateDogInput{
		DogWeight: &weight,
		Status:    &status,
		DogColor:  &color,
	})
	require.NoError(t, err)

	assert.Equal(t, 70.0, updated.DogWeight)
	assert.Equal(t, entities.DogStatusPending, updated.Status)
	assert.Equal(t, "black", updated.DogColor)

	// untouched fields survive, identity fields never change
	assert.Equal(t, dog.DogID, updated.DogID)
	assert.Equal(t, dog.DogName, updated.DogName)
	assert.Equal(t, dog.CreatedAt, updated.CreatedAt)
}

func TestUpdateDogDerivedFields(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	t.Run("birthday recomputes age", func(t *testing.T) {
		birthday := "1/1/2015"
		updated, err := svc.Update(ctx, dog.DogID, UpdateDogInput{DogBirthday: &birthday})
		require.NoError(t, err)
		assert.Greater(t, updated.DogAgeYears, 9.0)
	})

	t.Run("species recomputes labrador flag", func(t *testing.T) {
		species := "lab"
		updated, err := svc.Update(ctx, dog.DogID, UpdateDogInput{DogSpecies: &species})
		require.NoError(t, err)
		assert.False(t, updated.IsLabrador)
	})
}

func TestUpdateDogValidation(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, dog.DogID, UpdateDogInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No updatable fields provided")
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status := "lost"
		_, err := svc.Update(ctx, dog.DogID, UpdateDogInput{Status: &status})
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("unknown dog is not found", func(t *testing.T) {
		name := "Rex"
		_, err := svc.Update(ctx, "no-such-dog", UpdateDogInput{DogName: &name})
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestDeleteDog(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, dog.DogID)
	require.NoError(t, err)
	assert.Equal(t, dog.DogID, deleted.DogID)

	_, err = svc.Get(ctx, dog.DogID)
	assert.True(t, errors.IsNotFound(err))

	// deleting again is still not found
	_, err = svc.Delete(ctx, dog.DogID)
	assert.True(t, errors.IsNotFound(err))
}

func TestVote(t *testing.T) {
	svc, _, votes := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	vote, err := svc.Vote(ctx, dog.DogID, "user-1", "wag")
	require.NoError(t, err)
	assert.Equal(t, entities.VoteWag, vote.VoteType)

	_, err = svc.Vote(ctx, dog.DogID, "user-2", "WAG")
	require.NoError(t, err)
	_, err = svc.Vote(ctx, dog.DogID, "user-1", "growl")
	require.NoError(t, err)

	got, err := svc.Get(ctx, dog.DogID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.WagCount)
	assert.Equal(t, 1, got.GrowlCount)

	// re-vote overwrote the (user, dog) record
	stored, err := votes.FindByUserAndDog(ctx, "user-1", dog.DogID)
	require.NoError(t, err)
	assert.Equal(t, entities.VoteGrowl, stored.VoteType)
}

func TestVoteSurvivesLookupFailure(t *testing.T) {
	svc, _, votes := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	votes.findErr = errors.NewExternalError("record store", assert.AnError)

	vote, err := svc.Vote(ctx, dog.DogID, "user-1", "wag")
	require.NoError(t, err)
	assert.Equal(t, entities.VoteWag, vote.VoteType)

	got, err := svc.Get(ctx, dog.DogID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WagCount)
}

func TestVoteValidation(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	dog, err := svc.Create(ctx, validDogInput())
	require.NoError(t, err)

	t.Run("invalid type", func(t *testing.T) {
		_, err := svc.Vote(ctx, dog.DogID, "user-1", "bark")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Vote type must be 'wag' or 'growl'")
	})

	t.Run("unknown dog", func(t *testing.T) {
		_, err := svc.Vote(ctx, "no-such-dog", "user-1", "wag")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestList(t *testing.T) {
	svc, _, _ := newTestDogService()
	ctx := context.Background()

	for _, in := range []CreateDogInput{
		validDogInput(),
		func() CreateDogInput {
			in := validDogInput()
			in.DogName = "Bella"
			in.State = "tx"
			in.DogWeight = 45
			return in
		}(),
		func() CreateDogInput {
			in := validDogInput()
			in.DogName = "Charlie"
			in.DogWeight = 80
			return in
		}(),
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	t.Run("unfiltered", func(t *testing.T) {
		res, err := svc.List(ctx, url.Values{})
		require.NoError(t, err)
		assert.Len(t, res.Dogs, 3)
		assert.Equal(t, 3, res.Pagination.TotalItems)
		assert.Empty(t, res.FiltersApplied)
		assert.Equal(t, SortInfo{SortBy: "created_at", SortOrder: "desc"}, res.Sort)
	})

	t.Run("filtered by weight range", func(t *testing.T) {
		q, err := url.ParseQuery("min_weight=30&max_weight=70&sort_by=dog_weight&sort_order=asc")
		require.NoError(t, err)

		res, err := svc.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, res.Dogs, 2)
		assert.Equal(t, "Bella", res.Dogs[0].DogName)
		assert.Equal(t, "Max", res.Dogs[1].DogName)
		assert.Equal(t, map[string]string{
			"min_weight": "30",
			"max_weight": "70",
		}, res.FiltersApplied)
		assert.Equal(t, SortInfo{SortBy: "dog_weight", SortOrder: "asc"}, res.Sort)
	})

	t.Run("paginated", func(t *testing.T) {
		q, err := url.ParseQuery("page=2&limit=2&sort_by=dog_name&sort_order=asc")
		require.NoError(t, err)

		res, err := svc.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, res.Dogs, 1)
		assert.Equal(t, "Max", res.Dogs[0].DogName)
		assert.True(t, res.Pagination.HasPrev)
		assert.False(t, res.Pagination.HasNext)
	})

	t.Run("pagination applies after filtering", func(t *testing.T) {
		q, err := url.ParseQuery("state=VA&limit=1")
		require.NoError(t, err)

		res, err := svc.List(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Pagination.TotalItems)
		assert.Len(t, res.Dogs, 1)
	})
}
