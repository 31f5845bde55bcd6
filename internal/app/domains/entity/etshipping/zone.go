package etshipping

import (
	"errors"
	"fmt"
	"math"
)

// ZoneRule a distance bucket (MinMiles, MaxMiles] with its surcharge.
// The first rule also includes MinMiles itself (0).
type ZoneRule struct {
	Zone      int
	Name      string
	MinMiles  float64
	MaxMiles  float64 // math.Inf(1) for the last bucket
	Surcharge float64
}

// Unbounded reports whether the rule has no upper limit
func (r ZoneRule) Unbounded() bool {
	return math.IsInf(r.MaxMiles, 1)
}

// ZoneTable ordered zone rules covering [0, ∞)
type ZoneTable struct {
	rules []ZoneRule
}

// DefaultZoneTable zone 1 (local) through zone 8 (cross-country)
func DefaultZoneTable() *ZoneTable {
	return &ZoneTable{rules: []ZoneRule{
		{Zone: 1, Name: "Local", MinMiles: 0, MaxMiles: 50, Surcharge: 0.00},
		{Zone: 2, Name: "Regional", MinMiles: 50, MaxMiles: 150, Surcharge: 2.50},
		{Zone: 3, Name: "Near", MinMiles: 150, MaxMiles: 300, Surcharge: 5.00},
		{Zone: 4, Name: "Mid", MinMiles: 300, MaxMiles: 600, Surcharge: 7.50},
		{Zone: 5, Name: "Far", MinMiles: 600, MaxMiles: 1000, Surcharge: 10.00},
		{Zone: 6, Name: "Distant", MinMiles: 1000, MaxMiles: 1400, Surcharge: 12.50},
		{Zone: 7, Name: "Remote", MinMiles: 1400, MaxMiles: 1800, Surcharge: 15.00},
		{Zone: 8, Name: "Cross-Country", MinMiles: 1800, MaxMiles: math.Inf(1), Surcharge: 17.50},
	}}
}

// NewZoneTable validates that rules are contiguous, ordered and cover [0, ∞)
func NewZoneTable(rules []ZoneRule) (*ZoneTable, error) {
	if len(rules) == 0 {
		return nil, errors.New("zone table needs at least one rule")
	}
	if rules[0].MinMiles != 0 {
		return nil, errors.New("first zone must start at 0 miles")
	}
	for i, r := range rules {
		if r.MaxMiles <= r.MinMiles {
			return nil, fmt.Errorf("zone %d: max %.2f must exceed min %.2f", r.Zone, r.MaxMiles, r.MinMiles)
		}
		if r.Surcharge < 0 {
			return nil, fmt.Errorf("zone %d: negative surcharge", r.Zone)
		}
		if i > 0 && r.MinMiles != rules[i-1].MaxMiles {
			return nil, fmt.Errorf("zone %d: gap or overlap at %.2f miles", r.Zone, r.MinMiles)
		}
	}
	if !rules[len(rules)-1].Unbounded() {
		return nil, errors.New("last zone must be unbounded")
	}

	copied := make([]ZoneRule, len(rules))
	copy(copied, rules)
	return &ZoneTable{rules: copied}, nil
}

// Lookup returns the rule whose bucket contains miles. Negative or NaN
// distances are treated as 0.
func (t *ZoneTable) Lookup(miles float64) ZoneRule {
	if miles < 0 || math.IsNaN(miles) {
		miles = 0
	}
	for _, r := range t.rules {
		if miles <= r.MaxMiles {
			return r
		}
	}
	return t.rules[len(t.rules)-1]
}

// Rules copy of the rules in order
func (t *ZoneTable) Rules() []ZoneRule {
	out := make([]ZoneRule, len(t.rules))
	copy(out, t.rules)
	return out
}
