// Package conceptnet provides the HTTP client for the remote concept-relation
// service. It fetches the edge list for a node, classifies each edge's
// direction relative to the queried node, and maps failures onto the
// transport/protocol error taxonomy.
package conceptnet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/c360/sempath/errors"
	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/metric"
	"github.com/c360/sempath/pkg/retry"
)

// DefaultBaseURL is the public ConceptNet API endpoint.
const DefaultBaseURL = "https://api.conceptnet.io"

// Waiter gates outbound requests. throttle.Throttle satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Config holds client configuration
type Config struct {
	BaseURL     string        // Remote service base URL
	Timeout     time.Duration // Per-request timeout
	EdgeLimit   int           // Maximum edges requested per node
	MaxAttempts int           // Fetch attempts per node (1 = no retry)
}

// DefaultConfig returns the client defaults: 10s request timeout, 50 edges
// per node, single attempt.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     10 * time.Second,
		EdgeLimit:   50,
		MaxAttempts: 1,
	}
}

// Deps holds client dependencies
type Deps struct {
	Config   Config
	Throttle Waiter
	Logger   *slog.Logger
	Metrics  *metric.Registry
}

// Client fetches adjacency lists from the remote graph service. Every
// network call, including retries, first acquires a throttle permit.
type Client struct {
	config     Config
	httpClient *http.Client
	throttle   Waiter
	retryCfg   retry.Config
	logger     *slog.Logger
	metrics    *clientMetrics
}

// NewClient creates a new remote graph client
func NewClient(deps Deps) (*Client, error) {
	if deps.Throttle == nil {
		return nil, errors.WrapFatal(errors.ErrMissingConfig,
			"conceptnet.Client", "NewClient", "request throttle required")
	}

	cfg := deps.Config
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.EdgeLimit <= 0 {
		cfg.EdgeLimit = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newClientMetrics(deps.Metrics)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		throttle: deps.Throttle,
		retryCfg: retry.Config{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
			AddJitter:    true,
		},
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Fetch retrieves the directed edge list for node. Transient transport
// failures are retried up to the configured attempt count; protocol
// failures abort immediately. Callers treat any error as "no edges known"
// and must not cache the node.
func (c *Client) Fetch(ctx context.Context, node graph.NodeID) ([]graph.Edge, error) {
	edges, err := retry.DoWithResult(ctx, c.retryCfg, func() ([]graph.Edge, error) {
		return c.fetchOnce(ctx, node)
	})
	if err != nil {
		c.logger.Debug("remote fetch failed", "component", "conceptnet", "node", node, "error", err)
		return nil, err
	}
	return edges, nil
}

// fetchOnce performs a single throttled request/decode cycle.
func (c *Client) fetchOnce(ctx context.Context, node graph.NodeID) ([]graph.Edge, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	edges, err := c.query(ctx, node)
	c.metrics.recordRequest(statusOf(err), time.Since(start))

	if err != nil && errors.IsInvalid(err) {
		// Malformed responses will not improve on retry
		return nil, retry.NonRetryable(err)
	}
	return edges, err
}

func (c *Client) query(ctx context.Context, node graph.NodeID) ([]graph.Edge, error) {
	url := fmt.Sprintf("%s%s?limit=%d", c.config.BaseURL, node, c.config.EdgeLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapInvalid(err, "conceptnet.Client", "query", "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrTransport, err),
			"conceptnet.Client", "query", "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: status %d", errors.ErrTransport, resp.StatusCode),
			"conceptnet.Client", "query", "check response status")
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: status %d", errors.ErrProtocol, resp.StatusCode),
			"conceptnet.Client", "query", "check response status")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapTransient(
			fmt.Errorf("%w: %v", errors.ErrTransport, err),
			"conceptnet.Client", "query", "read response body")
	}

	var envelope edgeEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrProtocol, err),
			"conceptnet.Client", "query", "decode edge list")
	}

	return c.classify(node, envelope.Edges), nil
}

// classify converts remote edge descriptors into directed edges relative to
// the queried node. Edges whose endpoints do not name the queried node are
// dropped: the remote service occasionally returns sense-tagged variants of
// the query URI and those cannot be oriented.
func (c *Client) classify(node graph.NodeID, remote []remoteEdge) []graph.Edge {
	edges := make([]graph.Edge, 0, len(remote))
	for _, re := range remote {
		switch node {
		case graph.NodeID(re.Start.ID):
			edges = append(edges, graph.Edge{
				Rel:       re.Rel.Label,
				Neighbor:  graph.NodeID(re.End.ID),
				Direction: graph.DirectionOutgoing,
			})
		case graph.NodeID(re.End.ID):
			edges = append(edges, graph.Edge{
				Rel:       re.Rel.Label,
				Neighbor:  graph.NodeID(re.Start.ID),
				Direction: graph.DirectionIncoming,
			})
		default:
			c.metrics.recordDroppedEdge()
		}
	}
	return edges
}

// edgeEnvelope mirrors the remote response shape: a list of edge
// descriptors, each with a labeled relation and two endpoint URIs.
type edgeEnvelope struct {
	Edges []remoteEdge `json:"edges"`
}

type remoteEdge struct {
	Rel   endpoint `json:"rel"`
	Start endpoint `json:"start"`
	End   endpoint `json:"end"`
}

type endpoint struct {
	ID    string `json:"@id"`
	Label string `json:"label"`
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.IsInvalid(err):
		return "protocol_error"
	default:
		return "transport_error"
	}
}
