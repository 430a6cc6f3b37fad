package models

// Aircraft is a mutable unit of fleet owned by exactly one Airline.
type Aircraft struct {
	ID             string
	Registration   string // "N" + 5 digits, unique within an airline
	TypeName       string // references the compiled AircraftType catalog by Name
	Leased         bool
	MonthlyLease   float64 // 0 if owned
	AssignedRoute  string  // route id, "" if none
	Condition      float64 // [0,1], starts at 1.0
	FlightHours    float64 // cumulative
	DayAcquired    int
}

// Available reports whether an aircraft can be assigned to a route:
// unassigned and not grounded for poor condition.
func (a *Aircraft) Available() bool {
	return a.AssignedRoute == "" && a.Condition > 0.3
}

// Route is a mutable entity owned by exactly one Airline.
type Route struct {
	ID                   string
	Origin               string
	Destination          string
	DistanceNM           float64
	AssignedAircraft     string // aircraft id, "" if none
	Price                float64
	DailyFlights         int
	Active               bool
	LoadFactor           float64
	DailyProfit          float64
	CumulativePassengers int64
	DayOpened            int
}

// FlightTimeHours is distance / 450.
func (r *Route) FlightTimeHours() float64 { return r.DistanceNM / 450.0 }

// CityPairKey returns an unordered key identifying the city pair this route serves.
func (r *Route) CityPairKey() string { return CityPairKey(r.Origin, r.Destination) }

// CityPairKey builds the unordered key used to group routes sharing a city pair.
func CityPairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// Airline is the mutable aggregate root: a carrier's cash, fleet, routes, events.
type Airline struct {
	ID       string
	Name     string
	Cash     float64
	HomeHub  string
	Reputation float64

	Routes   []*Route
	Fleet    []*Aircraft
	Events   []*GameEvent

	CurrentDay           int
	CumulativePassengers int64
	CumulativeRevenue    float64
	CumulativeCosts      float64

	// RecentEvents is a bounded, purely observational activity log; never
	// consulted by simulation logic.
	RecentEvents []string
}

const recentEventsCap = 20

// LogEvent appends a human-readable line to RecentEvents, trimming to the last 20.
func (al *Airline) LogEvent(msg string) {
	if msg == "" {
		return
	}
	al.RecentEvents = append(al.RecentEvents, msg)
	if len(al.RecentEvents) > recentEventsCap {
		al.RecentEvents = al.RecentEvents[len(al.RecentEvents)-recentEventsCap:]
	}
}

// RouteByID finds a route owned by this airline.
func (al *Airline) RouteByID(id string) *Route {
	for _, r := range al.Routes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AircraftByID finds an aircraft owned by this airline.
func (al *Airline) AircraftByID(id string) *Aircraft {
	for _, a := range al.Fleet {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ActiveRoutes returns every active route.
func (al *Airline) ActiveRoutes() []*Route {
	out := make([]*Route, 0, len(al.Routes))
	for _, r := range al.Routes {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// UnassignedAircraft returns available aircraft not assigned to a route.
func (al *Airline) UnassignedAircraft() []*Aircraft {
	out := make([]*Aircraft, 0)
	for _, a := range al.Fleet {
		if a.Available() {
			out = append(out, a)
		}
	}
	return out
}

// ServesFromHub reports whether the airline already has a route between its
// home hub and dest, in either direction.
func (al *Airline) ServesFromHub(dest string) bool {
	for _, r := range al.Routes {
		if (r.Origin == al.HomeHub && r.Destination == dest) || (r.Origin == dest && r.Destination == al.HomeHub) {
			return true
		}
	}
	return false
}

// AIPersonality is an immutable parameter bundle driving a competitor's decisions.
type AIPersonality struct {
	Name                  string
	ExpansionRate         float64
	PricingModifier       float64
	RiskTolerance         float64
	CompetitiveAggression float64
	ServiceQuality        float64
}

// CompetitorAirline pairs an Airline with its AIPersonality.
type CompetitorAirline struct {
	Airline     *Airline
	Personality AIPersonality
}

// EventKind categorizes a GameEvent.
type EventKind int

const (
	Weather EventKind = iota
	Economic
	Operational
	Market
	PositivePR
	NegativePR
)

func (k EventKind) String() string {
	switch k {
	case Weather:
		return "Weather"
	case Economic:
		return "Economic"
	case Operational:
		return "Operational"
	case Market:
		return "Market"
	case PositivePR:
		return "PositivePR"
	case NegativePR:
		return "NegativePR"
	default:
		return "Unknown"
	}
}

// EventSeverity bounds a GameEvent's impact magnitude.
type EventSeverity int

const (
	Minor EventSeverity = iota
	Moderate
	Major
	Critical
)

func (s EventSeverity) String() string {
	switch s {
	case Minor:
		return "Minor"
	case Moderate:
		return "Moderate"
	case Major:
		return "Major"
	case Critical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// GameEvent is a one-shot-and/or-ongoing modifier affecting an airline.
type GameEvent struct {
	ID               string
	Kind             EventKind
	Severity         EventSeverity
	Title            string
	Description      string
	DayOccurred      int
	DurationDays     int // 0 => instantaneous
	FinancialImpact  float64
	ReputationImpact float64
	DemandModifier   float64 // >=0, 1.0 = neutral
	CostModifier     float64
	AllRoutes        bool
	RouteIDs         []string
}

// ActiveOn reports whether the event is active on day d.
func (e *GameEvent) ActiveOn(d int) bool {
	return d >= e.DayOccurred && d < e.DayOccurred+e.DurationDays
}

// AffectsRoute reports whether this event's scope covers the given route id.
func (e *GameEvent) AffectsRoute(routeID string) bool {
	if e.AllRoutes {
		return true
	}
	for _, id := range e.RouteIDs {
		if id == routeID {
			return true
		}
	}
	return false
}

// FuelMarketState is the process-wide fuel market, owned by a single World.
type FuelMarketState struct {
	Price          float64
	EMA            float64
	Trend          float64
	DaysSinceTrend int
}

const (
	FuelBaseline = 3.00
	FuelMin      = 1.50
	FuelMax      = 6.00
)

// DailyReport is the atomic per-day result returned by advance_day.
type DailyReport struct {
	Day        int
	Revenue    float64
	Costs      float64
	Profit     float64
	Passengers int64
	Cash       float64
	Reputation float64
	NewEvents  []*GameEvent
	Bankrupt   bool
}
