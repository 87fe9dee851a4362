// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Constructor builds one kind of source from the tokens following its command.
// Build may call back into reg to build nested sources.
type Constructor interface {
	Command() string
	Build(reg *Registry, in *Tokens) (Audio, error)
}

// Registry maps command tokens to constructors.
type Registry struct {
	constructors []Constructor

	mtx *sync.RWMutex
}

func NewRegistry(constructors ...Constructor) *Registry {
	r := &Registry{mtx: &sync.RWMutex{}}
	for _, c := range constructors {
		r.Register(c)
	}
	return r
}

// Register appends c. Commands are not checked for uniqueness; the first
// registered constructor for a command wins.
func (r *Registry) Register(c Constructor) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.constructors = append(r.constructors, c)
}

func (r *Registry) Lookup(command string) (Constructor, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, c := range r.constructors {
		if c.Command() == command {
			return c, true
		}
	}
	return nil, false
}

// Commands lists the registered command tokens in registration order.
func (r *Registry) Commands() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, len(r.constructors))
	for i, c := range r.constructors {
		out[i] = c.Command()
	}
	return out
}

// Build reads a command token and delegates the rest of the stream to its
// constructor. An unknown command discards the rest of its line.
func (r *Registry) Build(in *Tokens) (Audio, error) {
	cmd, err := in.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty command", ErrMalformedCommand)
	}
	if err != nil {
		return nil, err
	}

	c, ok := r.Lookup(cmd)
	if !ok {
		in.SkipLine()
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	return c.Build(r, in)
}

func (r *Registry) BuildString(s string) (Audio, error) {
	return r.Build(NewTokens(strings.NewReader(s)))
}
