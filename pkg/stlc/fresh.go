package stlc

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// FreshPrefix starts every identifier of the fresh supply.
const FreshPrefix = "#"

// FreshName returns the i-th identifier of the fresh supply: #0, #1, ...
func FreshName(i int) string {
	return FreshPrefix + strconv.Itoa(i)
}

// IsFresh reports whether name belongs to the fresh supply.
func IsFresh(name string) bool {
	n, ok := strings.CutPrefix(name, FreshPrefix)
	if !ok || n == "" {
		return false
	}
	_, err := strconv.Atoi(n)
	return err == nil
}

// machine is the state threaded through one substitution or evaluation:
// the index of the next unused fresh identifier and the reduction steps
// taken so far. A machine is never shared between two top-level calls.
type machine struct {
	next  int
	steps int
	trace TraceFunc
}

// fresh draws the next identifier of the supply that does not occur in
// avoid. Identifiers skipped over are consumed too, so no two draws on the
// same machine return the same name.
func (m *machine) fresh(avoid *set.Set[string]) string {
	for {
		name := FreshName(m.next)
		m.next++
		if !avoid.Contains(name) {
			return name
		}
	}
}
