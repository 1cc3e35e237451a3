package service

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingPtr(v float64) *float64 { return &v }

func TestApplyNewRating(t *testing.T) {
	tests := []struct {
		name      string
		start     ratingAggregate
		rating    int
		wantMean  float64
		wantCount int
	}{
		{
			name:      "first review sets the mean",
			start:     ratingAggregate{Rating: nil, Count: 0},
			rating:    8,
			wantMean:  8.0,
			wantCount: 1,
		},
		{
			name:      "second review averages in",
			start:     ratingAggregate{Rating: ratingPtr(8.0), Count: 1},
			rating:    6,
			wantMean:  7.0,
			wantCount: 2,
		},
		{
			name:      "uneven division keeps full precision",
			start:     ratingAggregate{Rating: ratingPtr(7.0), Count: 2},
			rating:    10,
			wantMean:  8.0,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyNewRating(tt.start, tt.rating)
			require.NotNil(t, got.Rating)
			assert.InDelta(t, tt.wantMean, *got.Rating, 1e-9)
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}

func TestApplyRatingChange(t *testing.T) {
	// A changes 6 -> 10 against mean 7.0 of {8, 6}: new mean 9.0
	agg := ratingAggregate{Rating: ratingPtr(7.0), Count: 2}
	got := applyRatingChange(agg, 6, 10)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 9.0, *got.Rating, 1e-9)
	assert.Equal(t, 2, got.Count)

	// identical old and new rating leaves the mean alone
	got = applyRatingChange(got, 10, 10)
	assert.InDelta(t, 9.0, *got.Rating, 1e-9)
	assert.Equal(t, 2, got.Count)
}

func TestApplyRatingRemoval(t *testing.T) {
	// {10, 6} has mean 8.0; removing the 6 leaves 10.0
	agg := ratingAggregate{Rating: ratingPtr(8.0), Count: 2}
	got := applyRatingRemoval(agg, 6)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 10.0, *got.Rating, 1e-9)
	assert.Equal(t, 1, got.Count)

	// removing the last review resets the aggregate
	got = applyRatingRemoval(got, 10)
	assert.Nil(t, got.Rating)
	assert.Equal(t, 0, got.Count)
}

// Walks the worked sequence end to end: two reviews, one edit, two deletes.
func TestAggregateLifecycle(t *testing.T) {
	agg := ratingAggregate{}

	agg = applyNewRating(agg, 8) // A rates 8
	assert.InDelta(t, 8.0, *agg.Rating, 1e-9)
	assert.Equal(t, 1, agg.Count)

	agg = applyNewRating(agg, 6) // B rates 6
	assert.InDelta(t, 7.0, *agg.Rating, 1e-9)
	assert.Equal(t, 2, agg.Count)

	agg = applyRatingChange(agg, 8, 10) // A edits to 10
	assert.InDelta(t, 8.0, *agg.Rating, 1e-9)
	assert.Equal(t, 2, agg.Count)

	agg = applyRatingRemoval(agg, 6) // B deletes
	assert.InDelta(t, 10.0, *agg.Rating, 1e-9)
	assert.Equal(t, 1, agg.Count)

	agg = applyRatingRemoval(agg, 10) // A deletes
	assert.Nil(t, agg.Rating)
	assert.Equal(t, 0, agg.Count)
}

// For any sequence of inserts the incremental mean SHALL stay within 1e-6 of
// the mean recomputed from scratch, and the count SHALL equal the number of
// inserts.
func TestIncrementalMeanMatchesRecomputed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("incremental mean tracks the true mean", prop.ForAll(
		func(ratings []int) bool {
			agg := ratingAggregate{}
			sum := 0
			for _, r := range ratings {
				agg = applyNewRating(agg, r)
				sum += r
			}

			if agg.Count != len(ratings) {
				return false
			}
			if len(ratings) == 0 {
				return agg.Rating == nil
			}

			trueMean := float64(sum) / float64(len(ratings))
			return math.Abs(*agg.Rating-trueMean) < 1e-6
		},
		gen.SliceOf(gen.IntRange(1, 10)),
	))

	properties.Property("removal inverts insertion", prop.ForAll(
		func(ratings []int, extra int) bool {
			agg := ratingAggregate{}
			for _, r := range ratings {
				agg = applyNewRating(agg, r)
			}

			after := applyRatingRemoval(applyNewRating(agg, extra), extra)

			if after.Count != agg.Count {
				return false
			}
			if agg.Rating == nil {
				return after.Rating == nil
			}
			return math.Abs(*after.Rating-*agg.Rating) < 1e-6
		},
		gen.SliceOf(gen.IntRange(1, 10)),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
