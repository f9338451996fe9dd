package dataset

import "errors"

// ErrEmptySplit is returned when every observation landed on one side of a
// Bernoulli split. Callers retry with a fresh random stream.
var ErrEmptySplit = errors.New("split left train or test empty")

// Rand is the randomness a split consumes. *fastrand.RNG satisfies it.
type Rand interface {
	Uint32() uint32
}

// Split partitions the dataset into disjoint train and test subsets by
// drawing an independent Bernoulli(p) test label per observation. The two
// subsets always cover the dataset; an all-one-side draw returns
// ErrEmptySplit.
func (ds *Dataset) Split(p float64, rng Rand) (train, test *Dataset, err error) {
	var trainIdx, testIdx []int
	for i := range ds.obs {
		u := float64(rng.Uint32()) / (1 << 32)
		if u < p {
			testIdx = append(testIdx, i)
		} else {
			trainIdx = append(trainIdx, i)
		}
	}
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, nil, ErrEmptySplit
	}
	if train, err = ds.Subset(trainIdx); err != nil {
		return nil, nil, err
	}
	if test, err = ds.Subset(testIdx); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
