package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// The router is a map from a client type to the LightClientModule implementing
// that client kind. Supported kinds are enumerated at wiring time; lookups for
// anything else fail, which keeps "what client kinds exist" a closed set.
type Router struct {
	routes map[string]exported.LightClientModule
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]exported.LightClientModule),
	}
}

// AddRoute adds LightClientModule for a given client type. It returns the
// Router so AddRoute calls can be linked. It will panic if the client type has
// already been registered.
func (rtr *Router) AddRoute(clientType string, module exported.LightClientModule) *Router {
	if clientType == "" {
		panic(errors.New("client type cannot be empty"))
	}
	if rtr.HasRoute(clientType) {
		panic(fmt.Errorf("route %s has already been registered", clientType))
	}

	rtr.routes[clientType] = module
	return rtr
}

// HasRoute returns true if the Router has a module registered for the client
// type and false otherwise.
func (rtr *Router) HasRoute(clientType string) bool {
	_, ok := rtr.routes[clientType]
	return ok
}

// GetRoute returns the LightClientModule registered for the client type.
func (rtr *Router) GetRoute(clientType string) (exported.LightClientModule, bool) {
	if !rtr.HasRoute(clientType) {
		return nil, false
	}
	return rtr.routes[clientType], true
}
