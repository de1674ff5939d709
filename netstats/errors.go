// SPDX-License-Identifier: MIT

package netstats

import "errors"

var (
	// ErrDegenerateGraph is returned by Assortativity when the degree
	// sequences along the edges have zero variance (or there are no edges).
	ErrDegenerateGraph = errors.New("netstats: degree assortativity undefined")

	// ErrNotStronglyConnected is returned when a BFS inside a component
	// cannot reach every member.
	ErrNotStronglyConnected = errors.New("netstats: vertex set is not strongly connected")

	// ErrEmptyComponent is returned when a diameter is requested for no vertices.
	ErrEmptyComponent = errors.New("netstats: empty component")
)
