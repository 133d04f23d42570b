package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the wallet API accepts connections on
// and reports the URL scheme clients reach it with.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
	Scheme() string
}

// Server runs the wallet API until stopped.
type Server interface {
	// Start blocks until the server stops. A graceful Stop is not an error.
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	// Address is the configured address, or the bound one once listening.
	Address() string
}
