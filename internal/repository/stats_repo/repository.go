package stats_repo

import (
	"maps"
	"slices"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	repoModel "lucky_wheel/internal/repository/stats_repo/model"
)

// DefaultWindowSize is how many recent spins the statistics cover.
const DefaultWindowSize = 500

type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.WheelStats
}

// NewStatsRepository keeps the last windowSize spins (DefaultWindowSize when
// not positive).
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.WheelStats{
			WindowSize: windowSize,
			Window:     make([]repoModel.Observation, 0, windowSize),
		},
	}
}

// Record adds a finished spin to the window.
func (r *StatsRepo) Record(obs model.SpinObservation) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.Window = append(r.state.Window, repoModel.Observation{
		Label:  obs.Label,
		Shares: maps.Clone(obs.Shares),
	})
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}
}

// Stats compares observed hits per label against the hits the wheel layout
// predicts. Each spin contributes its label's share of the wheel at the time
// it started, so edits between spins are accounted for. The p-value comes
// from a chi-square test with one degree of freedom less than the number of
// labels; it is 1 when there is nothing to compare.
func (r *StatsRepo) Stats() model.SpinStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	hits := make(map[string]int)
	expected := make(map[string]float64)
	for _, o := range r.state.Window {
		hits[o.Label]++
		for label, share := range o.Shares {
			expected[label] += share
		}
	}

	labels := slices.Sorted(maps.Keys(expected))
	for _, label := range slices.Sorted(maps.Keys(hits)) {
		if _, ok := expected[label]; !ok {
			labels = append(labels, label)
		}
	}

	out := model.SpinStats{
		TotalSpins: r.state.TotalSpins,
		WindowSize: r.state.WindowSize,
		Window:     len(r.state.Window),
		Labels:     make([]model.LabelStats, 0, len(labels)),
		PValue:     1,
	}

	var obs, exp []float64
	for _, label := range labels {
		out.Labels = append(out.Labels, model.LabelStats{
			Label:    label,
			Hits:     hits[label],
			Expected: expected[label],
		})
		if expected[label] > 0 {
			obs = append(obs, float64(hits[label]))
			exp = append(exp, expected[label])
		}
	}

	if len(exp) < 2 {
		return out
	}
	out.ChiSquare = stat.ChiSquare(obs, exp)
	out.PValue = distuv.ChiSquared{K: float64(len(exp) - 1)}.Survival(out.ChiSquare)
	return out
}
