package models

// SetMarker assigns a marker value by its canonical (json) name. It returns
// false for names the panel does not track.
func (e *BloodEntry) SetMarker(name string, v float64) bool {
	val := v
	switch name {
	case "testosteroneTotal":
		e.TestosteroneTotal = &val
	case "testosteroneFree":
		e.TestosteroneFree = &val
	case "estradiol":
		e.Estradiol = &val
	case "shbg":
		e.SHBG = &val
	case "lh":
		e.LH = &val
	case "fsh":
		e.FSH = &val
	case "prolactin":
		e.Prolactin = &val
	case "cortisol":
		e.Cortisol = &val
	case "dheaS":
		e.DHEAS = &val
	case "igf1":
		e.IGF1 = &val
	case "tsh":
		e.TSH = &val
	case "freeT4":
		e.FreeT4 = &val
	case "freeT3":
		e.FreeT3 = &val
	case "cholesterolTotal":
		e.CholesterolTotal = &val
	case "hdl":
		e.HDL = &val
	case "ldl":
		e.LDL = &val
	case "triglycerides":
		e.Triglycerides = &val
	case "glucose":
		e.Glucose = &val
	case "hba1c":
		e.HbA1c = &val
	case "insulin":
		e.Insulin = &val
	case "vitaminD":
		e.VitaminD = &val
	case "vitaminB12":
		e.VitaminB12 = &val
	case "folate":
		e.Folate = &val
	case "ferritin":
		e.Ferritin = &val
	case "iron":
		e.Iron = &val
	case "magnesium":
		e.Magnesium = &val
	case "zinc":
		e.Zinc = &val
	case "alt":
		e.ALT = &val
	case "ast":
		e.AST = &val
	case "creatinine":
		e.Creatinine = &val
	case "egfr":
		e.EGFR = &val
	case "hemoglobin":
		e.Hemoglobin = &val
	case "hematocrit":
		e.Hematocrit = &val
	case "wbc":
		e.WBC = &val
	case "crp":
		e.CRP = &val
	case "psa":
		e.PSA = &val
	default:
		return false
	}
	return true
}
