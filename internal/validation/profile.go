package validation

import "taxpilot/internal/services/taxengine"

// CompanyProfile validates a caller-supplied company profile. Beyond the
// per-field checks, profit above revenue is rejected here instead of being
// clamped: the health scorer's margin factor assumes profit <= revenue.
func (v *Validator) CompanyProfile(p *taxengine.CompanyProfile) {
	v.Required("name", p.Name)
	v.Required("legalForm", string(p.LegalForm))
	v.Check(p.LegalForm == "" || taxengine.ValidLegalForm(p.LegalForm),
		"legalForm", "must be one of GmbH, AG, Einzelfirma, Kollektivgesellschaft")
	v.Min("revenue", p.Revenue, 0)
	v.Min("profit", p.Profit, 0)
	v.Check(p.Profit <= p.Revenue, "profit", "cannot exceed revenue")
	v.Check(p.Employees >= 1, "employees", "must be at least 1")
}
