package idgen

import (
	"fmt"
	"sync"
	"time"
)

// SnowflakeIDGenerator simplified snowflake generator
// ID layout: seconds since epoch * 100000 + machine id (2 digits) * 1000 + sequence (3 digits)
type SnowflakeIDGenerator struct {
	mu        sync.Mutex
	epoch     int64
	machineID int64
	sequence  int64
	lastTime  int64
	now       func() time.Time
}

const (
	maxMachineID = 99
	maxSequence  = 999
)

// NewSnowflakeIDGenerator creates a generator; machineID out of 0-99 falls back to 0
func NewSnowflakeIDGenerator(machineID int64) *SnowflakeIDGenerator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}

	return &SnowflakeIDGenerator{
		epoch:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
		machineID: machineID,
		now:       time.Now,
	}
}

// NextID returns the next id, strictly increasing for one generator
func (g *SnowflakeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().Unix()
	if now < g.lastTime {
		now = g.lastTime
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// sequence exhausted, borrow the next second
			now = g.lastTime + 1
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	return (now-g.epoch)*100000 + g.machineID*1000 + g.sequence
}

// OrderNumber formats the next id as a customer facing order number
func (g *SnowflakeIDGenerator) OrderNumber() string {
	return fmt.Sprintf("ORD-%d", g.NextID())
}
