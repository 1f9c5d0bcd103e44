// Package catalog registers a runnable demo for every pattern example.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jsando/patterns/config"
	"github.com/jsando/patterns/console"
)

var ErrUnknownDemo = errors.New("unknown demo")

const (
	Creational = "Creational"
	Structural = "Structural"
)

// Env is what a demo gets to work with.
type Env struct {
	Log    console.Log
	Config config.Config

	// Confirm answers yes/no questions a demo asks the user. Nil answers yes.
	Confirm func(prompt string) bool
}

func (e Env) confirm(prompt string) bool {
	if e.Confirm == nil {
		return true
	}
	return e.Confirm(prompt)
}

// Demo is one runnable example.
type Demo struct {
	Name     string // unique key used on the command line
	Category string // Creational or Structural
	Pattern  string
	Summary  string
	Run      func(ctx context.Context, env Env) error
}

type Registry struct {
	demos map[string]*Demo
}

func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]*Demo)}
}

// Register adds a demo; names must be unique.
func (r *Registry) Register(d *Demo) error {
	if d.Name == "" || d.Run == nil {
		return fmt.Errorf("demo must have a name and a Run function")
	}
	if _, found := r.demos[d.Name]; found {
		return fmt.Errorf("demo '%s' already registered", d.Name)
	}
	r.demos[d.Name] = d
	return nil
}

func (r *Registry) Get(name string) (*Demo, error) {
	d, found := r.demos[name]
	if !found {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownDemo, name)
	}
	return d, nil
}

// List returns all demos ordered by category, pattern and name.
func (r *Registry) List() []*Demo {
	demos := make([]*Demo, 0, len(r.demos))
	for _, d := range r.demos {
		demos = append(demos, d)
	}
	sort.Slice(demos, func(i, j int) bool {
		a, b := demos[i], demos[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Pattern != b.Pattern {
			return a.Pattern < b.Pattern
		}
		return a.Name < b.Name
	})
	return demos
}

// Run runs the named demos in order, reporting each as a step. It keeps going
// after a failure and returns the joined errors.
func (r *Registry) Run(ctx context.Context, env Env, names ...string) error {
	var errs []error
	for _, name := range names {
		d, err := r.Get(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		env.Log.Section(fmt.Sprintf("%s (%s)", d.Pattern, d.Name))
		err = d.Run(ctx, env)
		if env.Log.Done(d.Name, err) {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Names returns the names of all demos in List order.
func (r *Registry) Names() []string {
	var names []string
	for _, d := range r.List() {
		names = append(names, d.Name)
	}
	return names
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range creationalDemos() {
		mustRegister(r, d)
	}
	for _, d := range structuralDemos() {
		mustRegister(r, d)
	}
	return r
}

func mustRegister(r *Registry, d *Demo) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Global default registry holding every built-in demo
var defaultRegistry = newDefaultRegistry()

// GetDefaultRegistry returns the global registry
func GetDefaultRegistry() *Registry {
	return defaultRegistry
}

// SetDefaultRegistry replaces the global registry (useful for testing)
func SetDefaultRegistry(r *Registry) {
	defaultRegistry = r
}
