package engine

import (
	"sort"
	"time"
)

// maxCatchUp bounds how many times one periodic timer fires per Advance
// after the host stalls.
const maxCatchUp = 32

type timerKind uint8

const (
	timerSpawn timerKind = iota
	timerExpire
)

// timer is a deadline owned by one session generation.
type timer struct {
	kind   timerKind
	due    time.Time
	period time.Duration // 0 for one-shot timers
	gen    uint64
	ref    uint64 // Effect id for expiry timers
}

// timers is the deadline set of an engine. Cancelling bumps the
// generation, so a stale timer can never act on a newer session.
type timers struct {
	list []timer
	gen  uint64
}

func (t *timers) arm(kind timerKind, due time.Time, period time.Duration, ref uint64) {
	t.list = append(t.list, timer{kind: kind, due: due, period: period, gen: t.gen, ref: ref})
}

func (t *timers) cancelAll() {
	t.list = t.list[:0]
	t.gen++
}

func (t *timers) current(tm timer) bool {
	return tm.gen == t.gen
}

// pop removes the earliest timer due at or before now. Periodic timers are
// rescheduled; after maxCatchUp consecutive late fires they skip ahead.
func (t *timers) pop(now time.Time, fired map[int]int) (timer, bool) {
	if len(t.list) == 0 {
		return timer{}, false
	}
	sort.SliceStable(t.list, func(i, j int) bool {
		return t.list[i].due.Before(t.list[j].due)
	})
	tm := t.list[0]
	if tm.due.After(now) {
		return timer{}, false
	}

	if tm.period <= 0 {
		t.list = t.list[1:]
		return tm, true
	}

	fired[int(tm.kind)]++
	next := tm.due.Add(tm.period)
	if fired[int(tm.kind)] >= maxCatchUp && !next.After(now) {
		next = now.Add(tm.period)
	}
	t.list[0].due = next
	return tm, true
}
