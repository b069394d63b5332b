package tablekit

import (
	"log/slog"

	"github.com/tablekit/tablekit/search"
	"github.com/tablekit/tablekit/selection"
)

type options[T any, K comparable] struct {
	logger             *Logger
	metrics            MetricsCollector
	pageSize           int
	paginate           bool
	predicate          search.Predicate[T]
	set                selection.Set[K]
	controlledSnapshot func() []K
	controlledOnChange func([]K)
}

// Option configures a Table at construction time.
type Option[T any, K comparable] func(*options[T, K])

// WithLogger configures structured logging for pipeline recomputations.
// Pass nil to keep the default (no logging).
func WithLogger[T any, K comparable](logger *Logger) Option[T, K] {
	return func(o *options[T, K]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[T any, K comparable](level slog.Level) Option[T, K] {
	return func(o *options[T, K]) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector[T any, K comparable](mc MetricsCollector) Option[T, K] {
	return func(o *options[T, K]) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithPageSize sets the initial page size. The default is 10 rows per page.
func WithPageSize[T any, K comparable](size int) Option[T, K] {
	return func(o *options[T, K]) {
		o.pageSize = size
	}
}

// WithPagination enables or disables the paginator. When disabled the full
// filtered/sorted collection is treated as a single page.
func WithPagination[T any, K comparable](enabled bool) Option[T, K] {
	return func(o *options[T, K]) {
		o.paginate = enabled
	}
}

// WithSearchPredicate replaces the default field-scan matching with a custom
// predicate. The predicate receives the lowercased query.
func WithSearchPredicate[T any, K comparable](pred search.Predicate[T]) Option[T, K] {
	return func(o *options[T, K]) {
		o.predicate = pred
	}
}

// WithSelectionSet backs the table's own (uncontrolled) tracker with the
// given set, e.g. selection.NewBitmap() for dense uint32 row keys.
// Ignored when WithControlledSelection is also supplied.
func WithSelectionSet[T any, K comparable](set selection.Set[K]) Option[T, K] {
	return func(o *options[T, K]) {
		o.set = set
	}
}

// WithControlledSelection puts selection state under caller ownership:
// snapshot returns the current selection and onChange receives the full new
// selection on every mutation. The table retains no selection state of its
// own in this mode.
func WithControlledSelection[T any, K comparable](snapshot func() []K, onChange func([]K)) Option[T, K] {
	return func(o *options[T, K]) {
		o.controlledSnapshot = snapshot
		o.controlledOnChange = onChange
	}
}

func applyOptions[T any, K comparable](optFns []Option[T, K]) options[T, K] {
	o := options[T, K]{
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
		pageSize: 10,
		paginate: true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
