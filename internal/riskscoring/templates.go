package riskscoring

// BuiltinTemplate bundles one of the shipped assessment forms with its
// weight tables and catalog metadata. These seed the template table on
// first migration; their question IDs line up with DefaultRules.
type BuiltinTemplate struct {
	Name        string
	Description string
	Category    string
	Template    Template
	Weights     Weights
}

// BuiltinTemplates returns the General, Cybersecurity and Financial
// assessment forms.
func BuiltinTemplates() []BuiltinTemplate {
	return []BuiltinTemplate{
		{
			Name:        "General Vendor Risk Assessment",
			Description: "Comprehensive risk assessment covering all major risk categories",
			Category:    "GENERAL",
			Template: Template{
				Sections: []Section{
					{
						Title: "Company Information",
						Questions: []Question{
							{
								ID:       "q1",
								Text:     "How long has your company been in business?",
								Type:     TypeSelect,
								Options:  []string{"Less than 1 year", "1-3 years", "3-5 years", "5-10 years", "More than 10 years"},
								Required: true,
							},
							{
								ID:       "q2",
								Text:     "What is your company size (number of employees)?",
								Type:     TypeSelect,
								Options:  []string{"1-10", "11-50", "51-200", "201-1000", "More than 1000"},
								Required: true,
							},
							{
								ID:       "q3",
								Text:     "What is your annual revenue?",
								Type:     TypeSelect,
								Options:  []string{"Less than $1M", "$1M-$10M", "$10M-$50M", "$50M-$100M", "More than $100M"},
								Required: true,
							},
						},
					},
					{
						Title: "Financial Stability",
						Questions: []Question{
							{
								ID:       "q4",
								Text:     "Do you have adequate financial resources to fulfill this contract?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q5",
								Text:     "Have you filed for bankruptcy in the past 5 years?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q6",
								Text:     "Do you have professional liability insurance?",
								Type:     TypeYesNo,
								Required: true,
							},
						},
					},
					{
						Title: "Security and Compliance",
						Questions: []Question{
							{
								ID:       "q7",
								Text:     "Do you have a formal information security program?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q8",
								Text:     "Are you certified to any security standards?",
								Type:     TypeMultiSelect,
								Options:  []string{"ISO 27001", "SOC 2", "PCI DSS", "HIPAA", "None"},
								Required: false,
							},
							{
								ID:       "q9",
								Text:     "Do you conduct regular security awareness training?",
								Type:     TypeYesNo,
								Required: true,
							},
						},
					},
					{
						Title: "Operational Capabilities",
						Questions: []Question{
							{
								ID:       "q10",
								Text:     "Do you have business continuity and disaster recovery plans?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q11",
								Text:     "What is your average response time for support requests?",
								Type:     TypeSelect,
								Options:  []string{"Same day", "1-2 business days", "3-5 business days", "More than 5 business days"},
								Required: true,
							},
							{
								ID:       "q12",
								Text:     "Do you have 24/7 support available?",
								Type:     TypeYesNo,
								Required: false,
							},
						},
					},
				},
			},
			Weights: Weights{
				Sections: map[string]float64{
					"Company Information":      0.15,
					"Financial Stability":      0.25,
					"Security and Compliance":  0.35,
					"Operational Capabilities": 0.25,
				},
				Questions: map[string]float64{
					"q1": 0.05, "q2": 0.05, "q3": 0.05,
					"q4": 0.10, "q5": 0.10, "q6": 0.05,
					"q7": 0.15, "q8": 0.10, "q9": 0.10,
					"q10": 0.10, "q11": 0.10, "q12": 0.05,
				},
			},
		},
		{
			Name:        "Cybersecurity Assessment",
			Description: "Focused assessment on cybersecurity controls and practices",
			Category:    "CYBERSECURITY",
			Template: Template{
				Sections: []Section{
					{
						Title: "Security Controls",
						Questions: []Question{
							{
								ID:       "q1",
								Text:     "Do you have multi-factor authentication enabled for all systems?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q2",
								Text:     "Do you conduct regular security awareness training?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q3",
								Text:     "Do you have an incident response plan?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q4",
								Text:     "How often do you perform security assessments?",
								Type:     TypeSelect,
								Options:  []string{"Monthly", "Quarterly", "Annually", "As needed", "Never"},
								Required: true,
							},
						},
					},
					{
						Title: "Data Protection",
						Questions: []Question{
							{
								ID:       "q5",
								Text:     "How do you encrypt data at rest?",
								Type:     TypeSelect,
								Options:  []string{"AES-256", "AES-128", "Other encryption", "No encryption"},
								Required: true,
							},
							{
								ID:       "q6",
								Text:     "Do you have data backup and recovery procedures?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q7",
								Text:     "Do you have data classification policies?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q8",
								Text:     "How do you handle data retention and disposal?",
								Type:     TypeSelect,
								Options:  []string{"Automated with policies", "Manual process", "Ad-hoc", "No formal process"},
								Required: true,
							},
						},
					},
					{
						Title: "Network Security",
						Questions: []Question{
							{
								ID:       "q9",
								Text:     "Do you use firewalls and intrusion detection systems?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q10",
								Text:     "Do you have network segmentation in place?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q11",
								Text:     "How do you monitor network traffic?",
								Type:     TypeSelect,
								Options:  []string{"24/7 monitoring", "Business hours only", "On-demand", "No monitoring"},
								Required: true,
							},
						},
					},
				},
			},
			Weights: Weights{
				Sections: map[string]float64{
					"Security Controls": 0.40,
					"Data Protection":   0.35,
					"Network Security":  0.25,
				},
				Questions: map[string]float64{
					"q1": 0.10, "q2": 0.10, "q3": 0.10, "q4": 0.10,
					"q5": 0.15, "q6": 0.10, "q7": 0.05, "q8": 0.05,
					"q9": 0.10, "q10": 0.10, "q11": 0.05,
				},
			},
		},
		{
			Name:        "Financial Stability Assessment",
			Description: "Assessment focused on financial health and stability",
			Category:    "FINANCIAL",
			Template: Template{
				Sections: []Section{
					{
						Title: "Financial Health",
						Questions: []Question{
							{
								ID:       "q1",
								Text:     "What is your current credit rating?",
								Type:     TypeSelect,
								Options:  []string{"AAA", "AA", "A", "BBB", "BB", "B", "Below B", "Not rated"},
								Required: true,
							},
							{
								ID:       "q2",
								Text:     "Do you have audited financial statements?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q3",
								Text:     "What is your debt-to-equity ratio?",
								Type:     TypeSelect,
								Options:  []string{"Less than 0.5", "0.5-1.0", "1.0-2.0", "2.0-3.0", "More than 3.0", "Unknown"},
								Required: true,
							},
							{
								ID:       "q4",
								Text:     "Do you have sufficient working capital?",
								Type:     TypeYesNo,
								Required: true,
							},
						},
					},
					{
						Title: "Insurance Coverage",
						Questions: []Question{
							{
								ID:       "q5",
								Text:     "Do you have general liability insurance?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q6",
								Text:     "Do you have professional liability insurance?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q7",
								Text:     "What is your insurance coverage limit?",
								Type:     TypeSelect,
								Options:  []string{"Less than $1M", "$1M-$5M", "$5M-$10M", "More than $10M", "Unknown"},
								Required: true,
							},
						},
					},
					{
						Title: "Business Continuity",
						Questions: []Question{
							{
								ID:       "q8",
								Text:     "Do you have business continuity plans?",
								Type:     TypeYesNo,
								Required: true,
							},
							{
								ID:       "q9",
								Text:     "Do you have key person insurance?",
								Type:     TypeYesNo,
								Required: false,
							},
							{
								ID:       "q10",
								Text:     "How long can you operate without revenue?",
								Type:     TypeSelect,
								Options:  []string{"Less than 1 month", "1-3 months", "3-6 months", "6-12 months", "More than 12 months"},
								Required: true,
							},
						},
					},
				},
			},
			Weights: Weights{
				Sections: map[string]float64{
					"Financial Health":    0.50,
					"Insurance Coverage":  0.30,
					"Business Continuity": 0.20,
				},
				Questions: map[string]float64{
					"q1": 0.15, "q2": 0.15, "q3": 0.10, "q4": 0.10,
					"q5": 0.10, "q6": 0.10, "q7": 0.10,
					"q8": 0.10, "q9": 0.05, "q10": 0.05,
				},
			},
		},
	}
}
