package catalog

import "maison/models"

var consultationTypes = []models.ConsultationType{
	{
		ID:          "bespoke-design",
		Name:        "Bespoke Design Consultation",
		Description: "Work one-on-one with our head designer to sketch and commission a piece made only for you.",
		Duration:    90,
		Price:       250,
		Icon:        "✦",
		Features: []string{
			"Private designer session",
			"Hand-drawn concept sketches",
			"Gemstone sourcing guidance",
			"Complimentary champagne",
		},
		Popular: true,
	},
	{
		ID:          "private-viewing",
		Name:        "Private Collection Viewing",
		Description: "An after-hours viewing of the high jewelry collection in our private salon.",
		Duration:    60,
		Price:       200,
		Icon:        "◆",
		Features: []string{
			"Dedicated salon",
			"Curated selection for your occasion",
			"Personal stylist on hand",
		},
	},
	{
		ID:          "appraisal",
		Name:        "Appraisal & Valuation",
		Description: "Certified gemologist appraisal with full written valuation for insurance or estate purposes.",
		Duration:    60,
		Price:       150,
		Icon:        "✧",
		Features: []string{
			"GIA-certified gemologist",
			"Written valuation document",
			"Cleaning and inspection included",
		},
	},
	{
		ID:          "restoration",
		Name:        "Restoration Assessment",
		Description: "Assessment of heirloom and vintage pieces with a restoration plan and quote.",
		Duration:    45,
		Price:       100,
		Icon:        "❖",
		Features: []string{
			"Condition report",
			"Restoration roadmap",
			"Fixed-price quote",
		},
	},
	{
		ID:          "sizing",
		Name:        "Ring Sizing & Fitting",
		Description: "Precise sizing and comfort fitting for engagement rings and bands.",
		Duration:    30,
		Price:       75,
		Icon:        "◇",
		Features: []string{
			"Professional sizing",
			"Same-visit adjustments where possible",
		},
	},
}

// ConsultationTypes returns all offerings in display order.
func ConsultationTypes() []models.ConsultationType {
	out := make([]models.ConsultationType, len(consultationTypes))
	copy(out, consultationTypes)
	return out
}

// ConsultationTypeByID looks up an offering by id.
func ConsultationTypeByID(id string) (models.ConsultationType, bool) {
	for _, ct := range consultationTypes {
		if ct.ID == id {
			return ct, true
		}
	}
	return models.ConsultationType{}, false
}
