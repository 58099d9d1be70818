package salary

const (
	DeductionKindTax       = "TAX"
	DeductionKindInsurance = "INSURANCE"
	DeductionKindCustom    = "CUSTOM"
)

func IsValidDeductionKind(kind string) bool {
	switch kind {
	case DeductionKindTax, DeductionKindInsurance, DeductionKindCustom:
		return true
	}
	return false
}

type Breakdown struct {
	Tax       float64
	Insurance float64
	Other     float64
	Net       float64
}

// ComputeNet applies deduction rules to a gross amount. TAX and INSURANCE
// rules each set their whole component, so when several are present the
// one listed last wins; CUSTOM rules accumulate into the other bucket.
// The net is clamped at zero.
func ComputeNet(gross float64, deductions []Deduction) Breakdown {
	var b Breakdown

	for _, d := range deductions {
		amount := d.Value
		if d.IsPercentage {
			amount = gross * d.Value / 100
		}

		switch d.Kind {
		case DeductionKindTax:
			b.Tax = amount
		case DeductionKindInsurance:
			b.Insurance = amount
		case DeductionKindCustom:
			b.Other += amount
		}
	}

	b.Net = gross - b.Tax - b.Insurance - b.Other
	if b.Net < 0 {
		b.Net = 0
	}

	return b
}
