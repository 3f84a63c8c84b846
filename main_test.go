package wander

import (
	"testing"

	"go.uber.org/goleak"
)

// Everything in wander runs on the caller's goroutine; nothing may outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}
