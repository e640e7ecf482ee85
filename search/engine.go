package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/c360/sempath/errors"
	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/metric"
)

// State is the engine's position in its lifecycle.
type State int

const (
	// StateInitial means the search has not started expanding.
	StateInitial State = iota

	// StateExpanding means frontiers are still being advanced.
	StateExpanding

	// StateFound means a connecting path was discovered.
	StateFound

	// StateExhausted means both reachable regions were fully explored
	// within the depth limit without meeting.
	StateExhausted
)

// String returns a log-friendly name for the state.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateExpanding:
		return "expanding"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Adjacency is the edge source the engine expands through. adjacency.Store
// satisfies it.
type Adjacency interface {
	GetOrFetch(ctx context.Context, node graph.NodeID) ([]graph.Edge, error)
	Save() error
}

// Config holds engine configuration
type Config struct {
	MaxDepth int // Longest half-path, in edges, either frontier will expand
}

// DefaultMaxDepth bounds half-path length when no depth is configured.
const DefaultMaxDepth = 10

// Deps holds engine dependencies
type Deps struct {
	Config    Config
	Adjacency Adjacency
	Logger    *slog.Logger
	Metrics   *metric.Registry
}

// Engine runs bidirectional breadth-first searches over the remote concept
// graph. It expands one frontier from the start node and one from the end
// node, alternating a single node expansion per side, and terminates the
// moment a node appears in both frontiers' visited sets.
//
// The search loop is single-threaded: forward and backward expansion
// interleave within one flow of control, so the frontiers need no locking.
type Engine struct {
	adjacency Adjacency
	maxDepth  int
	logger    *slog.Logger
	metrics   *engineMetrics
}

// Result describes a terminated search.
type Result struct {
	State    State
	Path     graph.Path    // Steps from start to end; nil unless State is StateFound
	Meeting  graph.NodeID  // Node where the frontiers met; empty unless found
	Expanded int           // Nodes expanded across both frontiers
	Elapsed  time.Duration // Wall-clock search duration
}

// NewEngine creates a search engine over the given adjacency source.
func NewEngine(deps Deps) (*Engine, error) {
	if deps.Adjacency == nil {
		return nil, errors.WrapFatal(errors.ErrMissingConfig,
			"search.Engine", "NewEngine", "adjacency source required")
	}

	maxDepth := deps.Config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newEngineMetrics(deps.Metrics)
	if err != nil {
		return nil, err
	}

	return &Engine{
		adjacency: deps.Adjacency,
		maxDepth:  maxDepth,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// FindPath searches for a chain of relations connecting start to end. It
// returns a Found result carrying the reconstructed path, an Exhausted
// result when both frontiers empty out within the depth limit, or an error
// when ctx is cancelled mid-search.
//
// The adjacency cache is saved exactly once per call, whatever the outcome,
// so edges fetched by an interrupted or exhausted search are not lost. Save
// failures are logged and do not change the result.
func (e *Engine) FindPath(ctx context.Context, start, end graph.NodeID) (result *Result, err error) {
	if start == "" || end == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidData,
			"search.Engine", "FindPath", "start and end node IDs required")
	}

	began := time.Now()
	defer func() {
		if result != nil {
			result.Elapsed = time.Since(began)
		}
		if saveErr := e.adjacency.Save(); saveErr != nil {
			e.logger.Error("cache save failed",
				"component", "search", "error", saveErr)
		}
		if result != nil {
			e.metrics.recordSearch(result.State.String())
		} else {
			e.metrics.recordSearch("aborted")
		}
	}()

	e.logger.Info("search started",
		"component", "search", "start", start, "end", end, "max_depth", e.maxDepth)

	if start == end {
		// Degenerate input: the trivial empty path connects them.
		e.logger.Info("search finished",
			"component", "search", "state", StateFound, "expanded", 0)
		return &Result{State: StateFound, Path: graph.Path{}, Meeting: start}, nil
	}

	forward := newFrontier(start)
	backward := newFrontier(end)
	expanded := 0

	for !forward.empty() && !backward.empty() {
		if ctx.Err() != nil {
			e.logger.Warn("search aborted",
				"component", "search", "expanded", expanded, "error", ctx.Err())
			return nil, errors.WrapTransient(ctx.Err(),
				"search.Engine", "FindPath", "search interrupted")
		}

		if found, res := e.expandOne(ctx, forward, backward, "forward", &expanded); found {
			return res, nil
		}
		if backward.empty() {
			break
		}
		if found, res := e.expandOne(ctx, backward, forward, "backward", &expanded); found {
			return res, nil
		}
	}

	e.logger.Info("search finished",
		"component", "search", "state", StateExhausted,
		"expanded", expanded,
		"forward_visited", forward.size(), "backward_visited", backward.size())
	return &Result{State: StateExhausted, Expanded: expanded}, nil
}

// expandOne dequeues and expands a single node on the own frontier,
// checking every discovered neighbor against the other frontier's visited
// set. On intersection it reconstructs the full path and returns a Found
// result.
func (e *Engine) expandOne(ctx context.Context, own, other *frontier, side string, expanded *int) (bool, *Result) {
	if own.empty() {
		return false, nil
	}

	entry := own.dequeue()
	if entry.path.Len() > e.maxDepth {
		// Too deep: drop without contacting the cache or the network.
		e.metrics.recordDepthDiscard(side)
		return false, nil
	}

	edges, err := e.adjacency.GetOrFetch(ctx, entry.node)
	if err != nil {
		// Fetch failures degrade to "no edges": the node is a dead end
		// this run but stays fetchable on the next one.
		e.logger.Warn("node expansion failed",
			"component", "search", "side", side, "node", entry.node, "error", err)
		edges = nil
	}

	*expanded++
	e.metrics.recordExpansion(side)

	for _, edge := range edges {
		extended := entry.path.Extend(edge)

		if otherHalf, ok := other.seen(edge.Neighbor); ok {
			// The backward frontier's origin is the search's end node,
			// which the reconstructor needs to name the final step.
			var path graph.Path
			if side == "forward" {
				path = Reconstruct(other.origin, extended, otherHalf)
			} else {
				path = Reconstruct(own.origin, otherHalf, extended)
			}

			e.logger.Info("search finished",
				"component", "search", "state", StateFound,
				"meeting", edge.Neighbor, "expanded", *expanded,
				"path_length", path.Len())
			return true, &Result{
				State:    StateFound,
				Path:     path,
				Meeting:  edge.Neighbor,
				Expanded: *expanded,
			}
		}

		if _, ok := own.seen(edge.Neighbor); !ok {
			own.visit(edge.Neighbor, extended)
		}
	}

	return false, nil
}
