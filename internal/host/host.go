// Package host is the registry of frontends that drive a session: they own
// the window or terminal, turn key state into player input and present
// each frame.
package host

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/poke3d/internal/session"
)

// Host runs the frame loop for a session until the user quits or ctx ends.
type Host interface {
	Run(ctx context.Context, s *session.Session) error
}

type Factory func(log logrus.FieldLogger) Host

var (
	mu       sync.RWMutex
	backends = map[string]Factory{}
)

// Register makes a backend available by name. It panics on a duplicate.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := backends[name]; dup {
		panic(fmt.Sprintf("host: backend %q registered twice", name))
	}
	backends[name] = f
}

func New(name string, log logrus.FieldLogger) (Host, error) {
	mu.RLock()
	f, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("host: unknown backend %q (have %v)", name, Names())
	}
	return f(log.WithField("host", name)), nil
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
