package table

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/match"

	"github.com/ib-77/switch3/pkg/sw"
)

var ErrInvalidTable = errors.New("invalid table")

// Bounds is a closed integer range. Step defaults to 1.
type Bounds struct {
	Start int `koanf:"start"`
	Stop  int `koanf:"stop"`
	Step  int `koanf:"step"`
}

type Case struct {
	Name        string   `koanf:"name"`
	Values      []string `koanf:"values"`
	Range       *Bounds  `koanf:"range"`
	Glob        string   `koanf:"glob"`
	Result      string   `koanf:"result"`
	FallThrough bool     `koanf:"fallthrough"`
}

type Table struct {
	Name    string  `koanf:"name"`
	Default *string `koanf:"default"`
	Cases   []Case  `koanf:"cases"`
}

// Decision is the outcome of evaluating one value.
type Decision struct {
	ID      uuid.UUID
	Value   string
	Result  string
	Visited []string
}

// Validate reports every structural problem in the table at once.
func (t *Table) Validate() error {
	var errs []error
	names := make(map[string]struct{}, len(t.Cases))

	for i, c := range t.Cases {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%w: case %d has no name", ErrInvalidTable, i))
		} else if _, ok := names[c.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: case name %q is used twice", ErrInvalidTable, c.Name))
		}
		names[c.Name] = struct{}{}

		if c.Result == "" {
			errs = append(errs, fmt.Errorf("%w: case %d has no result", ErrInvalidTable, i))
		}
		if len(c.Values) == 0 && c.Range == nil && c.Glob == "" {
			errs = append(errs, fmt.Errorf("%w: case %d needs values, range or glob", ErrInvalidTable, i))
		}
		if c.Range != nil {
			if _, err := c.Range.seq(); err != nil {
				errs = append(errs, fmt.Errorf("%w: case %d: %w", ErrInvalidTable, i, err))
			}
		}
	}

	return errors.Join(errs...)
}

// Check validates the table and registers every case once, which surfaces
// duplicate literals without evaluating anything.
func (t *Table) Check() error {
	if err := t.Validate(); err != nil {
		return err
	}

	s := sw.New[string, string]("")
	for _, c := range t.Cases {
		if err := s.Case(c.key(), func() string { return c.Result }); err != nil {
			return fmt.Errorf("table %s: case %s: %w", t.Name, c.Name, err)
		}
	}
	return nil
}

// Evaluate runs value through the table's cases in order.
func (t *Table) Evaluate(value string, opts ...sw.Option) (Decision, error) {
	if err := t.Validate(); err != nil {
		return Decision{}, err
	}

	var visited []string
	visit := func(name, result string) func() string {
		return func() string {
			visited = append(visited, name)
			return result
		}
	}

	s := sw.New[string, string](value, opts...)
	for _, c := range t.Cases {
		flow := sw.Stop
		if c.FallThrough {
			flow = sw.FallThrough
		}
		if err := s.Case(c.key(), visit(c.Name, c.Result), flow); err != nil {
			return Decision{}, fmt.Errorf("table %s: case %s: %w", t.Name, c.Name, err)
		}
	}
	if t.Default != nil {
		if err := s.Default(visit("default", *t.Default)); err != nil {
			return Decision{}, fmt.Errorf("table %s: %w", t.Name, err)
		}
	}

	if err := s.Close(); err != nil {
		return Decision{}, fmt.Errorf("table %s: %w", t.Name, err)
	}

	res, err := s.Result()
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		ID:      s.ID(),
		Value:   value,
		Result:  res,
		Visited: visited,
	}, nil
}

func (c Case) key() sw.Key[string] {
	members := make([]sw.Key[string], 0, len(c.Values)+2)
	for _, v := range c.Values {
		members = append(members, sw.Is(v))
	}
	if c.Range != nil {
		seq, err := c.Range.seq()
		if err == nil {
			members = append(members, sw.In(seq))
		}
	}
	if c.Glob != "" {
		pattern := c.Glob
		members = append(members, sw.When(func(v string) bool {
			return match.Match(v, pattern)
		}))
	}
	return sw.AnyOf(members...)
}

func (b Bounds) seq() (iter.Seq[string], error) {
	step := b.Step
	if step == 0 {
		step = 1
	}

	ints, err := sw.ClosedRange(b.Start, b.Stop, step)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for v := range ints {
			if !yield(strconv.Itoa(v)) {
				return
			}
		}
	}, nil
}
