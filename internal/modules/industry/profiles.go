package industry

// Metric names a fundamental field an industry profile may require.
type Metric string

const (
	MetricROE  Metric = "ROE"
	MetricROCE Metric = "ROCE"
	MetricOPM  Metric = "OPM"
)

// Weights holds per-sub-score multipliers applied during normalization.
type Weights struct {
	Business   float64
	Moat       float64
	Management float64
	Risk       float64
}

// Profile describes one industry: the keywords that identify it, the
// sub-score weights applied during normalization, and the metrics whose
// absence triggers a missing-data penalty.
type Profile struct {
	Name     string
	Keywords []string
	Weights  Weights
	Required []Metric
}

// General is the fallback profile: neutral weights, no required metrics.
const General = "GENERAL"

// profiles is scanned in declaration order; the first profile with a
// keyword contained in the uppercased asset name wins.
var profiles = []Profile{
	{
		Name:     "BANKING",
		Keywords: []string{"BANK", "FINANCE", "CAPITAL", "HOLDINGS", "INVEST", "BAJAJ", "HDFC", "ICICI", "KOTAK", "AXIS", "SBI", "CHOLA", "MUTHOOT"},
		Weights:  Weights{Business: 1.1, Moat: 1.2, Management: 1.0, Risk: 0.9},
		Required: []Metric{MetricROE},
	},
	{
		Name:     "IT",
		Keywords: []string{"TECH", "INFOSYS", "TCS", "WIPRO", "HCL", "MINDTREE", "LTIM", "PERSISTENT", "COFORGE", "SYSTEMS", "SOFTWARE", "DATA"},
		Weights:  Weights{Business: 1.2, Moat: 1.0, Management: 1.1, Risk: 1.0},
		Required: []Metric{MetricOPM},
	},
	{
		Name:     "FMCG",
		Keywords: []string{"HUL", "NESTLE", "BRITANNIA", "DABUR", "GODREJ", "MARICO", "TATA CONSUMER", "ITC", "FOODS", "CONSUMER", "VARUN"},
		Weights:  Weights{Business: 1.0, Moat: 1.3, Management: 1.1, Risk: 1.0},
		Required: []Metric{MetricROCE},
	},
	{
		Name:     "PHARMA",
		Keywords: []string{"PHARMA", "LAB", "DRUG", "REDDY", "SUN", "CIPLA", "DIVIS", "LUPIN", "ALKEM", "TORRENT"},
		Weights:  Weights{Business: 1.1, Moat: 1.0, Management: 1.0, Risk: 0.9},
	},
	{
		Name:     "AUTO",
		Keywords: []string{"MOTOR", "AUTO", "MARUTI", "MAHINDRA", "TATA MOTORS", "EICHER", "BAJAJ AUTO", "TVS"},
		Weights:  Weights{Business: 1.2, Moat: 0.9, Management: 1.0, Risk: 0.9},
	},
	{
		Name:     "POWER",
		Keywords: []string{"POWER", "ENERGY", "NTPC", "ADANI", "GRID", "TATA POWER", "NHPC", "JSW ENERGY"},
		Weights:  Weights{Business: 1.0, Moat: 1.2, Management: 0.9, Risk: 0.8},
	},
	{
		Name:     "REAL_ESTATE",
		Keywords: []string{"REALTY", "DLF", "GODREJ PROP", "OBEROI", "PRESTIGE", "LODHA", "MACROTECH"},
		Weights:  Weights{Business: 1.1, Moat: 0.8, Management: 1.0, Risk: 0.8},
	},
	{
		Name:    General,
		Weights: Weights{Business: 1.0, Moat: 1.0, Management: 1.0, Risk: 1.0},
	},
}

// GeneralProfile returns the neutral fallback profile.
func GeneralProfile() Profile {
	return profiles[len(profiles)-1]
}

// ProfileByName returns the named profile, falling back to GENERAL.
func ProfileByName(name string) Profile {
	for _, p := range profiles {
		if p.Name == name {
			return p
		}
	}
	return GeneralProfile()
}
