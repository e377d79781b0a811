package main

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/llxisdsh/lpmap"
)

var hashers = map[string]lpmap.HashFunc[int]{
	"default":  nil,
	"identity": lpmap.IdentityHash[int],
	// collide sends every key to one of 8 home slots, so clusters get long
	// and erase compacts on almost every call.
	"collide": func(k int) uint64 { return uint64(k & 7) },
}

var errMismatch = errors.New("lpstress: map disagrees with reference")

// Result summarizes a run.
type Result struct {
	Steps    int
	Inserts  int
	Erases   int
	Indexes  int
	Ats      int
	Finds    int
	Clears   int
	Verifies int
	Stats    *lpmap.MapStats
}

func (r *Result) fields() []zap.Field {
	fields := []zap.Field{
		zap.Int("steps", r.Steps),
		zap.Int("inserts", r.Inserts),
		zap.Int("erases", r.Erases),
		zap.Int("indexes", r.Indexes),
		zap.Int("ats", r.Ats),
		zap.Int("finds", r.Finds),
		zap.Int("clears", r.Clears),
		zap.Int("verifies", r.Verifies),
	}
	if s := r.Stats; s != nil {
		fields = append(fields,
			zap.Int("size", s.Size),
			zap.Int("capacity", s.Capacity),
			zap.Float64("loadFactor", s.LoadFactor),
			zap.Int("maxCluster", s.MaxCluster),
			zap.Int("maxProbe", s.MaxProbeLength),
			zap.Float64("avgProbe", s.AvgProbeLength),
			zap.Uint32("growths", s.TotalGrowths),
			zap.Uint32("compactions", s.TotalCompactions),
		)
	}
	return fields
}

type workload struct {
	cfg    Config
	logger *zap.Logger
	rnd    *rand.Rand
	m      *lpmap.HashMap[int, int]
	ref    map[int]int
	res    Result
}

// Run replays cfg.Steps random operations against a HashMap and a builtin
// map, and fails on the first disagreement.
func Run(cfg Config, logger *zap.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	w := &workload{
		cfg:    cfg,
		logger: logger,
		rnd:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15)),
		m:      lpmap.NewWithHasher[int, int](hashers[cfg.Hasher]),
		ref:    make(map[int]int),
	}
	logger.Info("starting workload",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("steps", cfg.Steps),
		zap.Int("keySpace", cfg.KeySpace),
		zap.String("hasher", cfg.Hasher))

	for w.res.Steps < cfg.Steps {
		if err := w.step(); err != nil {
			w.res.Stats = w.m.Stats()
			logger.Error("mismatch", append(w.res.fields(), zap.Error(err))...)
			return w.res, err
		}
		w.res.Steps++
		if w.res.Steps%cfg.VerifyEvery == 0 || w.res.Steps == cfg.Steps {
			if err := w.verify(); err != nil {
				w.res.Stats = w.m.Stats()
				logger.Error("verification failed", append(w.res.fields(), zap.Error(err))...)
				return w.res, err
			}
		}
	}
	w.res.Stats = w.m.Stats()
	return w.res, nil
}

func (w *workload) step() error {
	k := w.rnd.IntN(w.cfg.KeySpace)
	mix := w.cfg.Mix
	n := w.rnd.IntN(mix.total())
	switch {
	case n < mix.Insert:
		w.res.Inserts++
		v := w.rnd.Int()
		_, had := w.ref[k]
		if added := w.m.Insert(k, v); added == had {
			return fmt.Errorf("%w: insert %d added=%v, key present=%v", errMismatch, k, added, had)
		}
		if !had {
			w.ref[k] = v
		}
	case n < mix.Insert+mix.Erase:
		w.res.Erases++
		_, had := w.ref[k]
		if erased := w.m.Erase(k); erased != had {
			return fmt.Errorf("%w: erase %d erased=%v, key present=%v", errMismatch, k, erased, had)
		}
		delete(w.ref, k)
	case n < mix.Insert+mix.Erase+mix.Index:
		w.res.Indexes++
		p := w.m.Index(k)
		if *p != w.ref[k] {
			return fmt.Errorf("%w: index %d got %d, want %d", errMismatch, k, *p, w.ref[k])
		}
		*p++
		w.ref[k]++
	case n < mix.Insert+mix.Erase+mix.Index+mix.At:
		w.res.Ats++
		v, err := w.m.At(k)
		want, ok := w.ref[k]
		switch {
		case ok && (err != nil || v != want):
			return fmt.Errorf("%w: at %d got (%d, %v), want %d", errMismatch, k, v, err, want)
		case !ok && !errors.Is(err, lpmap.ErrKeyNotFound):
			return fmt.Errorf("%w: at %d on a missing key returned %v", errMismatch, k, err)
		}
	case n < mix.total()-mix.Clear:
		w.res.Finds++
		it := w.m.Find(k)
		want, ok := w.ref[k]
		if it.Done() == ok {
			return fmt.Errorf("%w: find %d done=%v, key present=%v", errMismatch, k, it.Done(), ok)
		}
		if ok && (it.Key() != k || *it.Value() != want) {
			return fmt.Errorf("%w: find %d got (%d, %d), want %d", errMismatch, k, it.Key(), *it.Value(), want)
		}
	default:
		w.res.Clears++
		w.m.Clear()
		clear(w.ref)
	}
	if w.m.Size() != len(w.ref) {
		return fmt.Errorf("%w: size %d, want %d", errMismatch, w.m.Size(), len(w.ref))
	}
	if 2*w.m.Size() > w.m.Capacity() {
		return fmt.Errorf("%w: size %d over half of capacity %d", errMismatch, w.m.Size(), w.m.Capacity())
	}
	return nil
}

func (w *workload) verify() error {
	w.res.Verifies++
	stats := w.m.Stats()
	if stats.Size != stats.Counter {
		return fmt.Errorf("%w: %d occupied slots, counter %d", errMismatch, stats.Size, stats.Counter)
	}
	if !maps.Equal(w.m.ToMap(), w.ref) {
		return fmt.Errorf("%w: contents differ", errMismatch)
	}
	w.logger.Debug("verified", zap.Int("step", w.res.Steps), zap.Int("size", stats.Size),
		zap.Int("capacity", stats.Capacity), zap.Int("maxProbe", stats.MaxProbeLength))
	return nil
}
