package logging

// enricher enriches a log record with further meaningful attributes that aren't
// readily available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, en := range e.updaters {
		args = en.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// Enricher is implemented by loggers that accept args updaters.
type Enricher interface {
	AddArgsUpdater(updater ArgsUpdater)
}

// ReferenceUpdater looks for an integer argument following Key, e.g. a page
// index, retrieves the T it refers to, and adds T to the log arguments under
// Name.
type ReferenceUpdater[T any] struct {
	Getter[T]

	Key  string
	Name string
}

type Getter[T any] interface {
	Get(index int) (T, error)
}

func (e *ReferenceUpdater[T]) UpdateArgs(args ...any) []any {
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); !ok || key != e.Key {
			continue
		}
		index, ok := args[i+1].(int)
		if !ok {
			continue
		}
		t, err := e.Get(index)
		if err != nil {
			// nothing at that index
			continue
		}
		return append(args, e.Name, t)
	}
	return args
}
