package seq

import "github.com/pkg/errors"

// ErrNonConformingProducer is returned, or carried by a panic, when a value
// that cannot hand out cursors is used as a sequence source.
var ErrNonConformingProducer = errors.New("seq: value does not produce cursors")
