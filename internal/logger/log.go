// Released under an MIT license. See LICENSE.

// Package logger provides leveled diagnostics for the calculator.
package logger

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

//nolint:gochecknoglobals
var (
	level   int32 = ERROR
	limiter int64
	filter  atomic.Pointer[regexp.Regexp]
	counter = &hashmap.HashMap{}
)

// Level converts a name (error, info, verbose or debug) to a level.
func Level(name string) (int, error) {
	switch name {
	case "error":
		return ERROR, nil
	case "info":
		return INFO, nil
	case "verbose":
		return VERBOSE, nil
	case "debug":
		return DEBUG, nil
	}

	return 0, fmt.Errorf("unknown log level %q", name)
}

// SetLevel sets the most detailed level that will be written.
func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

// SetLimiter caps how many times an identical message is written.
// Zero means no cap.
func SetLimiter(l int) {
	atomic.StoreInt64(&limiter, int64(l))
}

// SetFilter only lets messages matching pattern through.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter.Store(nil)

		return nil
	}

	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}

	filter.Store(reg)

	return nil
}

// SetOutput redirects all messages to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, format, v...)
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func enabled(l int) bool {
	return int(atomic.LoadInt32(&level)) >= l
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if !enabled(l) {
		return
	}

	out := filterOutput(format, v...)
	if out == "" {
		return
	}

	if !limiterAvailable(out) {
		return
	}

	log.Print(out)
}

func limiterAvailable(out string) bool {
	n := atomic.LoadInt64(&limiter)
	if n == 0 {
		return true
	}

	var i int64

	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)

	return atomic.AddInt64(actual, 1) <= n
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)

	reg := filter.Load()
	if reg == nil || reg.MatchString(out) {
		return out
	}

	return ""
}
