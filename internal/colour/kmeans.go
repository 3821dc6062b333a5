package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrEmptyInput is returned when clustering is attempted on a sample
// set with no samples, e.g. a zero-size decode.
var ErrEmptyInput = errors.New("sample set contains no samples")

// Options configures a Quantizer.
type Options struct {
	// Iterations is the number of assignment/update passes to perform.
	// Zero is valid and returns the initial centroids unrefined.
	Iterations int

	// Seed seeds the initialization RNG for reproducible results.
	// When nil the quantizer draws a non-deterministic seed.
	Seed *int64

	// UseAlpha includes the alpha channel in the distance metric.
	// Cluster-mean alpha is accumulated and carried to output either way.
	UseAlpha bool

	// Logger receives per-iteration progress at debug level.
	Logger hclog.Logger
}

// Quantizer partitions colour samples into k clusters using k-means
// with uniform random initialization. Each Quantizer owns its RNG
// instance; there is no process-wide random state.
type Quantizer struct {
	iterations int
	useAlpha   bool
	rng        *rand.Rand
	logger     hclog.Logger
}

// NewQuantizer creates a Quantizer with the given options.
func NewQuantizer(opts Options) *Quantizer {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Quantizer{
		iterations: opts.Iterations,
		useAlpha:   opts.UseAlpha,
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 - palette seeding, not security sensitive
		logger:     logger,
	}
}

// centroid is the running per-channel mean of a cluster. Channels are
// accumulated at floating precision and only rounded when the final
// palette is produced.
type centroid struct {
	r, g, b, a float64
}

// Cluster runs k-means over the sample set and returns the final
// palette together with the assignment of each sample index to its
// centroid index.
//
// If k exceeds the number of samples it is clamped to the sample count,
// so clustering degenerates to one cluster per sample. A cluster that
// receives no samples in an iteration keeps its previous centroid; it
// is neither reseeded nor removed. The iteration count is a fixed
// budget, there is no early convergence exit.
func (q *Quantizer) Cluster(set *SampleSet, k int) (*Palette, []int, error) {
	if set == nil || len(set.Samples) == 0 {
		return nil, nil, fmt.Errorf("cannot cluster: %w", ErrEmptyInput)
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}

	samples := set.Samples
	if k > len(samples) {
		q.logger.Debug("clamping cluster count to sample count", "k", k, "samples", len(samples))
		k = len(samples)
	}

	centroids := q.initialCentroids(samples, k)
	assignments := make([]int, len(samples))

	for iter := 0; iter < q.iterations; iter++ {
		q.logger.Debug("k-means iteration", "iteration", iter+1, "total", q.iterations)

		// Assignment phase: every sample moves to its nearest centroid.
		for i, s := range samples {
			assignments[i] = q.nearestCentroid(s, centroids)
		}

		// Update phase: replace the centroid slice wholesale so the
		// assignment pass above never reads a half-updated centroid.
		centroids = q.recalculateCentroids(samples, assignments, centroids)
	}

	return q.finalize(centroids, set.HasAlpha), assignments, nil
}

// initialCentroids draws k distinct sample indices uniformly at random
// without replacement. Deliberately not k-means++: uniform selection is
// cheap and reproducible under a fixed seed.
func (q *Quantizer) initialCentroids(samples []Sample, k int) []centroid {
	centroids := make([]centroid, k)
	for i, idx := range q.rng.Perm(len(samples))[:k] {
		s := samples[idx]
		centroids[i] = centroid{
			r: float64(s.R),
			g: float64(s.G),
			b: float64(s.B),
			a: float64(s.A),
		}
	}
	return centroids
}

// distance is the squared Euclidean distance between a centroid and a
// sample, over the channels included in clustering.
func (q *Quantizer) distance(c centroid, s Sample) float64 {
	dr := c.r - float64(s.R)
	dg := c.g - float64(s.G)
	db := c.b - float64(s.B)
	d := dr*dr + dg*dg + db*db
	if q.useAlpha {
		da := c.a - float64(s.A)
		d += da * da
	}
	return d
}

// nearestCentroid returns the index of the centroid closest to the
// sample. Ties resolve to the lowest centroid index.
func (q *Quantizer) nearestCentroid(s Sample, centroids []centroid) int {
	nearest := 0
	minDist := q.distance(centroids[0], s)

	for j := 1; j < len(centroids); j++ {
		if d := q.distance(centroids[j], s); d < minDist {
			minDist = d
			nearest = j
		}
	}

	return nearest
}

// recalculateCentroids returns a new centroid slice where every cluster
// with at least one member moves to the per-channel mean of its
// members. Empty clusters keep their previous centroid. All four
// channels are accumulated so cluster-mean alpha survives even when
// alpha is excluded from the distance metric.
func (q *Quantizer) recalculateCentroids(samples []Sample, assignments []int, prev []centroid) []centroid {
	sums := make([]centroid, len(prev))
	counts := make([]int, len(prev))

	for i, s := range samples {
		j := assignments[i]
		sums[j].r += float64(s.R)
		sums[j].g += float64(s.G)
		sums[j].b += float64(s.B)
		sums[j].a += float64(s.A)
		counts[j]++
	}

	next := make([]centroid, len(prev))
	for j := range next {
		if counts[j] == 0 {
			next[j] = prev[j]
			continue
		}
		n := float64(counts[j])
		next[j] = centroid{
			r: sums[j].r / n,
			g: sums[j].g / n,
			b: sums[j].b / n,
			a: sums[j].a / n,
		}
	}

	return next
}

// finalize rounds each centroid to integer channels and produces the
// palette in centroid-creation order. Output is never sorted by
// frequency or brightness.
func (q *Quantizer) finalize(centroids []centroid, hasAlpha bool) *Palette {
	colours := make([]color.RGBA, len(centroids))
	for i, c := range centroids {
		colours[i] = color.RGBA{
			R: uint8(math.Round(c.r)),
			G: uint8(math.Round(c.g)),
			B: uint8(math.Round(c.b)),
			A: uint8(math.Round(c.a)),
		}
	}
	return &Palette{Colours: colours, HasAlpha: hasAlpha}
}
