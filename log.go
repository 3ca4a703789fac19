package fcmp

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	logger = log.New(io.Discard, "fcmp: ", log.LstdFlags|log.Lmicroseconds)

	logMu     sync.Mutex
	logOutput io.Writer = io.Discard
)

// SetLogOutput redirects the package logger. An init with Config.Debug set
// switches it to stderr until the next init without Debug.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logOutput = w
	logger.SetOutput(w)
}

func enableDebugLog(debug bool) {
	logMu.Lock()
	defer logMu.Unlock()
	if debug {
		logger.SetOutput(os.Stderr)
		return
	}
	logger.SetOutput(logOutput)
}
