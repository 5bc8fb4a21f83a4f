package riskscoring

// Rules maps responses to per-question risk sub-scores in [0,100],
// lower meaning lower risk. The tables are plain data so new templates
// can extend scoring without code changes; callers pass a Rules value
// into Score/Calculate explicitly, which keeps tests on fixture tables.
type Rules struct {
	// BoolTrue/BoolFalse score yes/no answers regardless of question
	// ID: affirmative answers to "do you have X control" reduce risk.
	BoolTrue  float64
	BoolFalse float64

	// Select maps question ID -> literal answer -> score.
	Select map[string]map[string]float64

	// Multi maps question ID -> option -> score; a multiselect answer
	// scores the arithmetic mean of its selected options.
	Multi map[string]map[string]float64

	// Number maps question ID -> scoring function. No built-in rules
	// define one; unknown numeric answers score Neutral.
	Number map[string]func(float64) float64

	// Neutral is the fallback for unknown questions, unknown literals
	// and unanswered values. Scoring never fails on bad data.
	Neutral float64
}

// Score computes the sub-score for a single question. Dispatch is on
// the runtime shape of the response, not the question's declared type.
func (r Rules) Score(questionID string, resp Response) float64 {
	if resp.isEmpty() {
		return r.Neutral
	}

	switch resp.Kind {
	case KindBool:
		if resp.Bool {
			return r.BoolTrue
		}
		return r.BoolFalse

	case KindText:
		if table, ok := r.Select[questionID]; ok {
			if score, ok := table[resp.Text]; ok {
				return score
			}
		}
		return r.Neutral

	case KindTextList:
		table, ok := r.Multi[questionID]
		if !ok || len(resp.List) == 0 {
			return r.Neutral
		}
		var sum float64
		for _, item := range resp.List {
			if score, ok := table[item]; ok {
				sum += score
			} else {
				sum += r.Neutral
			}
		}
		return sum / float64(len(resp.List))

	case KindNumber:
		if fn, ok := r.Number[questionID]; ok {
			return fn(resp.Number)
		}
		return r.Neutral

	default:
		return r.Neutral
	}
}

// DefaultRules returns the built-in rule tables the seeded General,
// Cybersecurity and Financial templates depend on. The values must not
// change: identical submissions have to keep producing identical
// scores.
func DefaultRules() Rules {
	return Rules{
		BoolTrue:  20,
		BoolFalse: 80,
		Neutral:   50,
		Select: map[string]map[string]float64{
			// Company information
			"q1": { // years in business
				"Less than 1 year":   80,
				"1-3 years":          60,
				"3-5 years":          40,
				"5-10 years":         20,
				"More than 10 years": 10,
			},
			"q2": { // company size
				"1-10":           70,
				"11-50":          50,
				"51-200":         30,
				"201-1000":       20,
				"More than 1000": 10,
			},
			"q3": { // annual revenue
				"Less than $1M":   80,
				"$1M-$10M":        60,
				"$10M-$50M":       40,
				"$50M-$100M":      20,
				"More than $100M": 10,
			},
			// Financial stability
			"q4": { // financial resources
				"Yes": 20,
				"No":  80,
			},
			"q5": { // bankruptcy history
				"Yes": 90,
				"No":  20,
			},
			"q6": { // insurance coverage
				"Yes": 20,
				"No":  80,
			},
			// Security and compliance
			"q7": { // security program
				"Yes": 20,
				"No":  80,
			},
			"q8": { // security certifications
				"Yes": 20,
				"No":  80,
			},
			"q9": { // security training
				"Yes": 20,
				"No":  80,
			},
			// Data protection
			"q5_encryption": { // encryption at rest
				"AES-256":          10,
				"AES-128":          20,
				"Other encryption": 40,
				"No encryption":    90,
			},
			"q6_backup": { // data backup
				"Yes": 20,
				"No":  80,
			},
			// Network security
			"q9_network": { // firewalls and IDS
				"Yes": 20,
				"No":  80,
			},
			"q10_network": { // network segmentation
				"Yes": 20,
				"No":  60,
			},
			"q11_network": { // network monitoring
				"24/7 monitoring":     10,
				"Business hours only": 40,
				"On-demand":           60,
				"No monitoring":       90,
			},
			// Financial health
			"q1_financial": { // credit rating
				"AAA":       5,
				"AA":        10,
				"A":         20,
				"BBB":       40,
				"BB":        60,
				"B":         80,
				"Below B":   95,
				"Not rated": 70,
			},
			"q2_financial": { // audited statements
				"Yes": 20,
				"No":  80,
			},
			"q3_financial": { // debt-to-equity ratio
				"Less than 0.5": 10,
				"0.5-1.0":       20,
				"1.0-2.0":       40,
				"2.0-3.0":       60,
				"More than 3.0": 90,
				"Unknown":       70,
			},
			"q4_financial": { // working capital
				"Yes": 20,
				"No":  80,
			},
			// Insurance
			"q5_insurance": { // general liability
				"Yes": 20,
				"No":  80,
			},
			"q6_insurance": { // professional liability
				"Yes": 20,
				"No":  80,
			},
			"q7_insurance": { // coverage limit
				"Less than $1M":  60,
				"$1M-$5M":        40,
				"$5M-$10M":       20,
				"More than $10M": 10,
				"Unknown":        70,
			},
			// Business continuity
			"q8_continuity": { // continuity plans
				"Yes": 20,
				"No":  80,
			},
			"q9_continuity": { // key person insurance
				"Yes": 20,
				"No":  50,
			},
			"q10_continuity": { // operating without revenue
				"Less than 1 month":   90,
				"1-3 months":          70,
				"3-6 months":          50,
				"6-12 months":         30,
				"More than 12 months": 10,
			},
		},
		Multi: map[string]map[string]float64{
			"q8": { // security certifications
				"ISO 27001": 10,
				"SOC 2":     15,
				"PCI DSS":   20,
				"HIPAA":     25,
				"None":      80,
			},
		},
		Number: map[string]func(float64) float64{},
	}
}
