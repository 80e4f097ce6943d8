package recommend

// seedCategories defines the equipment-fault taxonomy: ten categories
// covering the subsystems of a CVD tool, each with the keywords that
// identify it in operation descriptions and the theory topics that
// remediate failures in it.
var seedCategories = []Category{
	{
		ID:       "cooling",
		Label:    "Cooling system",
		Priority: PriorityHigh,
		Keywords: []string{"cooling", "coolant", "chiller", "water flow", "fan", "overheat"},
		Topics:   []string{"cooling-principles", "thermal-management", "filter-maintenance", "coolant-circulation"},
	},
	{
		ID:       "vacuum",
		Label:    "Vacuum system",
		Priority: PriorityHigh,
		Keywords: []string{"vacuum", "pumpdown", "leak", "roughing", "turbo"},
		Topics:   []string{"vacuum-principles", "vacuum-pump-operation", "leak-detection", "vacuum-level-control"},
	},
	{
		ID:       "alignment",
		Label:    "Alignment system",
		Priority: PriorityMedium,
		Keywords: []string{"alignment", "align", "offset", "calibrat", "vibration", "positioning"},
		Topics:   []string{"alignment-principles", "mechanical-stability", "vibration-control", "precision-positioning"},
	},
	{
		ID:       "optics",
		Label:    "Optical system",
		Priority: PriorityHigh,
		Keywords: []string{"optic", "lens", "light source", "focus", "mirror", "beam"},
		Topics:   []string{"optics-principles", "lens-cleaning", "light-source-management", "optical-path-adjustment"},
	},
	{
		ID:       "temperature",
		Label:    "Temperature control",
		Priority: PriorityHigh,
		Keywords: []string{"temperature", "thermal drift", "heater", "thermostat", "setpoint"},
		Topics:   []string{"temperature-control-principles", "thermal-equilibrium", "temperature-sensors", "pid-control"},
	},
	{
		ID:       "pressure",
		Label:    "Pressure control",
		Priority: PriorityMedium,
		Keywords: []string{"pressure", "gas flow", "regulator", "mfc", "throttle valve"},
		Topics:   []string{"pressure-control-principles", "gas-supply-system", "pressure-sensors", "pressure-regulation"},
	},
	{
		ID:       "chemical",
		Label:    "Process chemistry",
		Priority: PriorityMedium,
		Keywords: []string{"chemical", "reaction", "precursor", "deposition", "cvd"},
		Topics:   []string{"cvd-principles", "chemical-reactions", "gas-chemistry", "deposition-mechanisms"},
	},
	{
		ID:       "electrical",
		Label:    "Electrical system",
		Priority: PriorityLow,
		Keywords: []string{"electrical", "power supply", "voltage", "current", "short circuit", "breaker"},
		Topics:   []string{"electrical-principles", "power-management", "grounding-practices", "electrical-troubleshooting"},
	},
	{
		ID:       "mechanical",
		Label:    "Mechanical system",
		Priority: PriorityLow,
		Keywords: []string{"mechanical", "motor", "bearing", "drive", "jam", "friction", "lubric"},
		Topics:   []string{"mechanical-structure", "drive-systems", "lubrication", "mechanical-fault-diagnosis"},
	},
	{
		ID:       "safety",
		Label:    "Safety and emergency response",
		Priority: PriorityCritical,
		Keywords: []string{"safety", "emergency", "shutdown", "alarm", "interlock", "sop"},
		Topics:   []string{"safety-regulations", "emergency-shutdown", "standard-operating-procedures", "risk-assessment"},
	},
}

// seedPrerequisites maps a topic to the topics that must be studied
// first. Every referenced topic must exist in some category, and the
// resulting graph must be acyclic; init() enforces both.
var seedPrerequisites = map[string][]string{
	"thermal-management":      {"cooling-principles"},
	"coolant-circulation":     {"cooling-principles"},
	"vacuum-pump-operation":   {"vacuum-principles"},
	"leak-detection":          {"vacuum-principles"},
	"precision-positioning":   {"alignment-principles"},
	"vibration-control":       {"mechanical-stability"},
	"pid-control":             {"temperature-control-principles"},
	"pressure-regulation":     {"pressure-control-principles"},
	"chemical-reactions":      {"cvd-principles"},
	"gas-chemistry":           {"chemical-reactions"},
	"deposition-mechanisms":   {"cvd-principles", "gas-chemistry"},
	"emergency-shutdown":      {"safety-regulations"},
	"optical-path-adjustment": {"optics-principles"},
}

// seedStudyMinutes holds per-topic review time estimates; topics not
// listed fall back to defaultStudyMinutes.
var seedStudyMinutes = map[string]int{
	"cvd-principles":                 45,
	"chemical-reactions":             45,
	"vacuum-principles":              45,
	"pid-control":                    45,
	"temperature-control-principles": 30,
	"pressure-control-principles":    30,
	"alignment-principles":           30,
	"optics-principles":              30,
}

const defaultStudyMinutes = 20
