package eventengine

import "airlinetycoon/internal/models"

// template is a deterministic event blueprint: kind, severity, copy, and the
// ranges Roll draws concrete impact values from. Higher severities get wider
// DemandMod/CostMod ranges (deviation from 1.0). Minor templates stay within
// 10%; Moderate, Major and Critical ranges are not held to fixed percentage
// bands and overlap one another.
type template struct {
	Kind        models.EventKind
	Severity    models.EventSeverity
	Title       string
	Description string

	DurationMin, DurationMax int // days; 0,0 => instantaneous

	FinMin, FinMax float64 // one-shot financial impact range
	RepMin, RepMax float64 // one-shot reputation impact range

	DemandModMin, DemandModMax float64
	CostModMin, CostModMax     float64

	// FuelShock marks Economic templates that also jolt the fuel market.
	FuelShock                bool
	FuelShockMagMin, FuelShockMagMax float64
	FuelShockDurMin, FuelShockDurMax int

	// Weight is this template's relative selection weight once the daily
	// roll decides an event fires at all.
	Weight float64
}

// templates is the template pool. It spans all six kinds and four
// severities with multiple variants each.
var templates = buildTemplates()

func buildTemplates() []template {
	var t []template

	weather := []struct {
		sev                  models.EventSeverity
		title, desc          string
		durMin, durMax       int
		finMin, finMax       float64
		demMin, demMax       float64
		costMin, costMax     float64
	}{
		{models.Minor, "Morning Fog Delays", "Low visibility causes minor departure delays.", 1, 1, -20_000, -2_000, 0.95, 1.0, 1.0, 1.05},
		{models.Minor, "Light Crosswinds", "Gusty crosswinds slow ground operations slightly.", 0, 1, -15_000, 0, 0.97, 1.02, 1.0, 1.03},
		{models.Moderate, "Regional Thunderstorms", "Storm cells force ground stops on affected routes.", 2, 4, -250_000, -40_000, 0.78, 0.85, 1.05, 1.15},
		{models.Moderate, "Early Season Snow", "Snow crews work overtime to keep runways open.", 2, 5, -300_000, -60_000, 0.80, 0.88, 1.08, 1.18},
		{models.Major, "Major Winter Storm", "A multi-day storm system grounds a large share of flights.", 4, 8, -2_000_000, -400_000, 0.55, 0.68, 1.20, 1.35},
		{models.Major, "Tropical Storm Warning", "Coastal routes curtail schedules ahead of landfall.", 3, 7, -1_800_000, -350_000, 0.58, 0.70, 1.18, 1.30},
		{models.Critical, "Historic Blizzard", "Airports shut down for days under record snowfall.", 7, 14, -8_000_000, -2_000_000, 0.10, 0.40, 1.40, 1.70},
		{models.Critical, "Category 4 Hurricane", "A major hurricane closes multiple coastal hubs.", 6, 12, -9_000_000, -2_500_000, 0.08, 0.38, 1.45, 1.80},
		{models.Minor, "Patchy Morning Mist", "A thin mist briefly slows taxi operations.", 0, 1, -8_000, 0, 0.98, 1.01, 1.0, 1.02},
		{models.Moderate, "Sustained High Winds", "Sustained winds force occasional go-arounds.", 2, 4, -220_000, -35_000, 0.79, 0.86, 1.06, 1.16},
		{models.Major, "Volcanic Ash Advisory", "An ash cloud forces route diversions for days.", 3, 8, -2_200_000, -450_000, 0.52, 0.66, 1.22, 1.38},
		{models.Critical, "Arctic Polar Vortex", "Extreme cold shuts down de-icing capacity region-wide.", 6, 13, -7_500_000, -1_800_000, 0.12, 0.36, 1.42, 1.75},
	}
	for _, w := range weather {
		t = append(t, template{Kind: models.Weather, Severity: w.sev, Title: w.title, Description: w.desc,
			DurationMin: w.durMin, DurationMax: w.durMax, FinMin: w.finMin, FinMax: w.finMax,
			RepMin: -1, RepMax: 0, DemandModMin: w.demMin, DemandModMax: w.demMax,
			CostModMin: w.costMin, CostModMax: w.costMax, Weight: severityWeight(w.sev)})
	}

	economic := []struct {
		sev              models.EventSeverity
		title, desc      string
		durMin, durMax   int
		finMin, finMax   float64
		demMin, demMax   float64
		costMin, costMax float64
		fuelShock        bool
		fsMagMin, fsMagMax float64
		fsDurMin, fsDurMax int
	}{
		{models.Minor, "Modest Fuel Uptick", "Refinery maintenance nudges jet fuel prices up.", 0, 0, 0, 0, 0.98, 1.0, 1.0, 1.04, true, 1.02, 1.06, 3, 7},
		{models.Minor, "Local Economic Softening", "A soft local labor report dents near-term bookings.", 2, 4, -30_000, 0, 0.95, 1.0, 1.0, 1.0, false, 0, 0, 0, 0},
		{models.Moderate, "Regional Recession Signals", "Weak regional indicators reduce discretionary travel.", 5, 10, -400_000, -80_000, 0.78, 0.87, 1.0, 1.02, false, 0, 0, 0, 0},
		{models.Moderate, "OPEC Supply Cut", "An output cut tightens crude supply and fuel prices.", 5, 10, 0, 0, 0.95, 1.0, 1.02, 1.10, true, 1.10, 1.20, 7, 14},
		{models.Major, "Sharp Oil Price Spike", "Geopolitical tension drives a sudden crude rally.", 7, 14, -500_000, -100_000, 0.90, 1.0, 1.10, 1.25, true, 1.25, 1.40, 10, 21},
		{models.Major, "Credit Market Freeze", "Tight credit conditions suppress corporate travel budgets.", 8, 16, -1_500_000, -300_000, 0.55, 0.68, 1.0, 1.05, false, 0, 0, 0, 0},
		{models.Critical, "Global Financial Crisis", "A systemic shock collapses travel demand broadly.", 14, 30, -6_000_000, -1_500_000, 0.15, 0.42, 1.0, 1.05, false, 0, 0, 0, 0},
		{models.Critical, "Oil Supply Shock", "A disruption to a major producing region spikes fuel prices.", 10, 25, -2_000_000, -500_000, 0.85, 0.95, 1.30, 1.60, true, 1.55, 1.90, 14, 30},
		{models.Minor, "Currency Fluctuation", "A minor currency swing nudges international demand.", 1, 3, -20_000, 10_000, 0.97, 1.03, 1.0, 1.01, false, 0, 0, 0, 0},
		{models.Moderate, "Interest Rate Hike", "A rate hike cools consumer travel spending.", 4, 9, -350_000, -60_000, 0.80, 0.90, 1.0, 1.0, false, 0, 0, 0, 0},
		{models.Major, "Jet Fuel Refinery Fire", "A refinery fire tightens regional fuel supply.", 6, 12, -400_000, -80_000, 0.92, 1.0, 1.15, 1.30, true, 1.20, 1.35, 8, 18},
		{models.Critical, "Currency Crisis Abroad", "A foreign currency collapse guts inbound international demand.", 12, 28, -4_000_000, -900_000, 0.20, 0.45, 1.0, 1.08, false, 0, 0, 0, 0},
	}
	for _, e := range economic {
		t = append(t, template{Kind: models.Economic, Severity: e.sev, Title: e.title, Description: e.desc,
			DurationMin: e.durMin, DurationMax: e.durMax, FinMin: e.finMin, FinMax: e.finMax,
			RepMin: 0, RepMax: 0, DemandModMin: e.demMin, DemandModMax: e.demMax,
			CostModMin: e.costMin, CostModMax: e.costMax,
			FuelShock: e.fuelShock, FuelShockMagMin: e.fsMagMin, FuelShockMagMax: e.fsMagMax,
			FuelShockDurMin: e.fsDurMin, FuelShockDurMax: e.fsDurMax, Weight: severityWeight(e.sev)})
	}

	operational := []struct {
		sev              models.EventSeverity
		title, desc      string
		durMin, durMax   int
		finMin, finMax   float64
		costMin, costMax float64
	}{
		{models.Minor, "Minor Crew Scheduling Snag", "A scheduling conflict causes a handful of short delays.", 0, 1, -25_000, -5_000, 1.0, 1.03},
		{models.Minor, "Gate Equipment Hiccup", "A jet bridge fault adds minor turnaround time.", 0, 1, -10_000, 0, 1.0, 1.02},
		{models.Moderate, "Ground Crew Shortage", "Staffing gaps slow baggage and pushback operations.", 2, 5, -200_000, -40_000, 1.05, 1.15},
		{models.Moderate, "IT Systems Outage", "A check-in system outage snarls several stations.", 1, 3, -350_000, -60_000, 1.03, 1.12},
		{models.Major, "Regional ATC Slowdown", "Air traffic control staffing cuts throughput sharply.", 3, 7, -1_200_000, -250_000, 1.15, 1.30},
		{models.Major, "Maintenance Compliance Audit", "A surprise audit grounds part of the fleet for inspection.", 4, 9, -1_600_000, -300_000, 1.20, 1.35},
		{models.Critical, "Fleet-Wide Grounding Order", "A regulator orders an immediate fleet-type grounding.", 10, 21, -7_000_000, -1_800_000, 1.35, 1.65},
		{models.Critical, "Multi-Hub Systems Failure", "A cascading outage disrupts operations at several hubs.", 7, 15, -5_000_000, -1_200_000, 1.30, 1.55},
		{models.Minor, "Late Catering Delivery", "A catering delay pushes back a few departures.", 0, 1, -12_000, -2_000, 1.0, 1.02},
		{models.Moderate, "Union Work-to-Rule Action", "A labor dispute slows operations without a full strike.", 3, 7, -300_000, -60_000, 1.08, 1.18},
		{models.Major, "Key Hub Runway Closure", "An emergency runway closure forces schedule cuts.", 4, 10, -1_400_000, -280_000, 1.18, 1.32},
		{models.Critical, "Pilot Strike", "A full pilot strike halts most scheduled departures.", 8, 18, -6_500_000, -1_600_000, 1.32, 1.60},
	}
	for _, o := range operational {
		t = append(t, template{Kind: models.Operational, Severity: o.sev, Title: o.title, Description: o.desc,
			DurationMin: o.durMin, DurationMax: o.durMax, FinMin: o.finMin, FinMax: o.finMax,
			RepMin: -2, RepMax: 0, DemandModMin: 1.0, DemandModMax: 1.0,
			CostModMin: o.costMin, CostModMax: o.costMax, Weight: severityWeight(o.sev)})
	}

	market := []struct {
		sev            models.EventSeverity
		title, desc    string
		durMin, durMax int
		demMin, demMax float64
	}{
		{models.Minor, "Competitor Schedule Tweak", "A rival's minor schedule change barely moves demand.", 1, 3, 0.97, 1.02},
		{models.Minor, "Local Event Bump", "A local convention lifts demand slightly.", 1, 2, 1.0, 1.05},
		{models.Moderate, "New Entrant on the Corridor", "A new carrier begins service on an overlapping route.", 5, 12, 0.80, 0.90},
		{models.Moderate, "Major Convention in Town", "A large trade show boosts travel to the market.", 3, 6, 1.12, 1.22},
		{models.Major, "Competitor Capacity Surge", "A rival adds significant capacity on shared city pairs.", 7, 15, 0.65, 0.78},
		{models.Major, "Regional Travel Boom", "A tourism surge lifts demand across the region.", 5, 12, 1.25, 1.42},
		{models.Critical, "Hub Consolidation by Rival", "A competitor's hub buildout reshapes the market.", 14, 30, 0.45, 0.62},
		{models.Critical, "Mega-Event Demand Surge", "A world-scale event multiplies travel demand.", 7, 20, 1.55, 1.85},
		{models.Minor, "Loyalty Program Refresh", "A minor loyalty perk change barely shifts bookings.", 1, 2, 0.98, 1.02},
		{models.Moderate, "Codeshare Partnership Announced", "A new codeshare deal opens modest connecting demand.", 4, 9, 1.08, 1.18},
		{models.Major, "Rival Airline Bankruptcy", "A competitor's exit frees up significant demand.", 10, 21, 1.30, 1.50},
		{models.Critical, "Open Skies Agreement Signed", "A new bilateral agreement floods the corridor with demand.", 14, 30, 1.50, 1.80},
	}
	for _, m := range market {
		t = append(t, template{Kind: models.Market, Severity: m.sev, Title: m.title, Description: m.desc,
			DurationMin: m.durMin, DurationMax: m.durMax, FinMin: 0, FinMax: 0,
			RepMin: 0, RepMax: 0, DemandModMin: m.demMin, DemandModMax: m.demMax,
			CostModMin: 1.0, CostModMax: 1.0, Weight: severityWeight(m.sev)})
	}

	positivePR := []struct {
		sev            models.EventSeverity
		title, desc    string
		durMin, durMax int
		finMin, finMax float64
		repMin, repMax float64
		demMin, demMax float64
	}{
		{models.Minor, "Friendly Press Mention", "A travel blog gives the airline a favorable nod.", 1, 3, 0, 10_000, 0.5, 1.5, 1.0, 1.03},
		{models.Minor, "On-Time Award Nomination", "An industry tracker shortlists the airline for punctuality.", 1, 3, 0, 15_000, 0.5, 1.5, 1.0, 1.02},
		{models.Moderate, "Best Regional Carrier Award", "A trade publication names the airline a regional leader.", 3, 7, 20_000, 120_000, 2, 5, 1.05, 1.15},
		{models.Moderate, "Viral Customer Service Story", "A crew's kindness to a passenger goes viral.", 2, 6, 10_000, 100_000, 2, 5, 1.08, 1.18},
		{models.Major, "National Safety Recognition", "A federal agency commends the airline's safety record.", 5, 12, 50_000, 300_000, 4, 9, 1.20, 1.35},
		{models.Major, "Celebrity Endorsement", "A well-known traveler publicly praises the airline.", 5, 14, 40_000, 250_000, 4, 9, 1.22, 1.38},
		{models.Critical, "Top Airline of the Year", "A major outlet names the airline the year's best.", 10, 25, 200_000, 800_000, 8, 15, 1.45, 1.70},
		{models.Critical, "Historic Rescue Mission Praised", "The airline's disaster-relief airlift earns national acclaim.", 10, 20, 150_000, 700_000, 8, 15, 1.40, 1.65},
		{models.Minor, "Clean Gate Turnaround Streak", "A run of fast turnarounds earns quiet praise.", 1, 2, 0, 8_000, 0.5, 1.5, 1.0, 1.02},
		{models.Moderate, "Community Outreach Recognized", "A local charity drive earns the airline goodwill.", 2, 6, 15_000, 90_000, 2, 5, 1.05, 1.14},
		{models.Major, "Sustainability Leadership Award", "An industry group praises the airline's emissions record.", 5, 12, 45_000, 280_000, 4, 9, 1.18, 1.32},
		{models.Critical, "Landmark Diversity Initiative Praised", "A flagship hiring initiative draws nationwide acclaim.", 10, 22, 180_000, 750_000, 8, 15, 1.42, 1.68},
	}
	for _, p := range positivePR {
		t = append(t, template{Kind: models.PositivePR, Severity: p.sev, Title: p.title, Description: p.desc,
			DurationMin: p.durMin, DurationMax: p.durMax, FinMin: p.finMin, FinMax: p.finMax,
			RepMin: p.repMin, RepMax: p.repMax, DemandModMin: p.demMin, DemandModMax: p.demMax,
			CostModMin: 1.0, CostModMax: 1.0, Weight: severityWeight(p.sev)})
	}

	negativePR := []struct {
		sev            models.EventSeverity
		title, desc    string
		durMin, durMax int
		finMin, finMax float64
		repMin, repMax float64
		demMin, demMax float64
	}{
		{models.Minor, "Minor Complaint Thread", "A handful of social posts gripe about a delay.", 1, 2, -10_000, 0, -1.5, -0.5, 0.98, 1.0},
		{models.Minor, "Local News Blurb", "A local station runs a short, unflattering clip.", 1, 3, -15_000, 0, -1.5, -0.5, 0.97, 1.0},
		{models.Moderate, "Overbooking Controversy", "A viral overbooking incident draws press attention.", 3, 7, -200_000, -30_000, -5, -2, 0.85, 0.92},
		{models.Moderate, "Baggage Handling Complaints", "A wave of lost-luggage complaints hits social media.", 2, 6, -150_000, -25_000, -5, -2, 0.88, 0.94},
		{models.Major, "Safety Incident Investigation", "Regulators open an inquiry after an in-flight incident.", 6, 14, -1_500_000, -300_000, -9, -4, 0.62, 0.78},
		{models.Major, "Crew Misconduct Scandal", "A widely shared incident embarrasses the airline publicly.", 5, 12, -1_200_000, -250_000, -9, -4, 0.65, 0.80},
		{models.Critical, "Fatal Accident Fallout", "A catastrophic incident devastates public confidence.", 14, 30, -10_000_000, -2_500_000, -20, -10, 0.20, 0.45},
		{models.Critical, "Data Breach Scandal", "A massive breach of passenger data triggers public outrage.", 10, 25, -5_000_000, -1_200_000, -18, -9, 0.30, 0.55},
		{models.Minor, "Seat-Pitch Complaint", "A handful of passengers grumble about legroom online.", 1, 2, -8_000, 0, -1.5, -0.5, 0.98, 1.0},
		{models.Moderate, "Discrimination Complaint Filed", "A passenger complaint draws unfavorable coverage.", 3, 7, -180_000, -30_000, -5, -2, 0.85, 0.92},
		{models.Major, "Whistleblower Safety Claims", "A former employee's safety claims make national news.", 6, 14, -1_400_000, -280_000, -9, -4, 0.62, 0.78},
		{models.Critical, "Executive Misconduct Scandal", "A leadership scandal triggers sustained public backlash.", 14, 28, -9_000_000, -2_200_000, -20, -10, 0.22, 0.48},
	}
	for _, n := range negativePR {
		t = append(t, template{Kind: models.NegativePR, Severity: n.sev, Title: n.title, Description: n.desc,
			DurationMin: n.durMin, DurationMax: n.durMax, FinMin: n.finMin, FinMax: n.finMax,
			RepMin: n.repMin, RepMax: n.repMax, DemandModMin: n.demMin, DemandModMax: n.demMax,
			CostModMin: 1.0, CostModMax: 1.0, Weight: severityWeight(n.sev)})
	}

	return t
}

func severityWeight(s models.EventSeverity) float64 {
	switch s {
	case models.Minor:
		return 4.0
	case models.Moderate:
		return 2.0
	case models.Major:
		return 0.9
	case models.Critical:
		return 0.3
	default:
		return 1.0
	}
}
