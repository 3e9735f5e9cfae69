package dirtree

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pwasilewski/dirtree/config"
)

const (
	defaultMaxNameLength = 255
	defaultMaxPathLength = 4096
)

// Tree is one in-memory hierarchical directory tree. A process may
// construct any number of independent Trees.
type Tree struct {
	id uuid.UUID

	root    *node
	maxName int
	maxPath int
	logger  *zap.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger attaches a structured logger; nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithLimits overrides MAX_NAME/MAX_PATH; non-positive values are
// ignored, leaving the previous (default) value in place.
func WithLimits(maxName, maxPath int) Option {
	return func(t *Tree) {
		if maxName > 0 {
			t.maxName = maxName
		}
		if maxPath > 0 {
			t.maxPath = maxPath
		}
	}
}

// WithConfig applies a config.Config loaded by the config package,
// overriding both the path limits and the logger's level.
func WithConfig(cfg config.Config) Option {
	return func(t *Tree) {
		WithLimits(cfg.MaxNameLength, cfg.MaxPathLength)(t)
		t.logger = NewLogger(cfg.LogLevel)
	}
}

// New constructs an empty tree (root only).
func New(opts ...Option) *Tree {
	t := &Tree{
		id:      uuid.New(),
		root:    newNode(nil, ""),
		maxName: defaultMaxNameLength,
		maxPath: defaultMaxPathLength,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.logger = t.logger.With(zap.String("tree", t.id.String()))
	return t
}

// Free tears the tree down recursively. The caller must guarantee no
// operation is in flight on this tree; Free does not synchronize
// against concurrent List/Create/Remove/Move calls, so a host needing
// to tear a live tree down has to gate new operations itself before
// calling Free.
func (t *Tree) Free() {
	freeSubtree(t.root)
	t.logger.Info("tree freed")
}

func freeSubtree(n *node) {
	for _, name := range n.children.sortedNames() {
		if child, ok := n.children.get(name); ok {
			freeSubtree(child)
		}
	}
	n.children = nil
	n.parent = nil
}
