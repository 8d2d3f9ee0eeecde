//go:build !unix

package sys

import "os"

func notifySignals() chan os.Signal {
	return make(chan os.Signal, sigsChanBufferSize)
}
