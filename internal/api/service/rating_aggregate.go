package service

// ratingAggregate is a film's stored (rating, rating_count) pair. Rating is
// nil exactly when Count is zero. All writes to the pair go through the three
// apply functions below; no other code computes or assigns it.
type ratingAggregate struct {
	Rating *float64
	Count  int
}

func aggregateOf(rating *float64, count int) ratingAggregate {
	return ratingAggregate{Rating: rating, Count: count}
}

func (a ratingAggregate) mean() float64 {
	if a.Rating == nil {
		return 0
	}
	return *a.Rating
}

// applyNewRating folds one more review rating into the running mean.
func applyNewRating(a ratingAggregate, rating int) ratingAggregate {
	next := (a.mean()*float64(a.Count) + float64(rating)) / float64(a.Count+1)
	return ratingAggregate{Rating: &next, Count: a.Count + 1}
}

// applyRatingChange replaces one review's contribution without changing the
// count.
func applyRatingChange(a ratingAggregate, oldRating, newRating int) ratingAggregate {
	next := (a.mean()*float64(a.Count) - float64(oldRating) + float64(newRating)) / float64(a.Count)
	return ratingAggregate{Rating: &next, Count: a.Count}
}

// applyRatingRemoval subtracts one review's contribution. Removing the last
// review resets the aggregate to the undefined state.
func applyRatingRemoval(a ratingAggregate, rating int) ratingAggregate {
	if a.Count <= 1 {
		return ratingAggregate{Rating: nil, Count: 0}
	}
	next := (a.mean()*float64(a.Count) - float64(rating)) / float64(a.Count-1)
	return ratingAggregate{Rating: &next, Count: a.Count - 1}
}
