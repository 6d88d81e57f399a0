package payroll

// Premium multipliers from the payroll schedule. The hourly base is the
// monthly basic rate over 26 working days of 8 hours.
const (
	workingDaysPerMonth = 26
	hoursPerDay         = 8

	regularOTMultiplier      = 1.25
	regularHolidayMultiplier = 2.6
	specialHolidayMultiplier = 1.3
	restDayMultiplier        = 1.69
	nightDiffMultiplier      = 2.20
)

// DeriveOvertimeRates prices the overtime hours off the basic rate. The
// backwage rate is keyed off a separate base, so it is left as provided.
func DeriveOvertimeRates(basicRate float64, ot Overtime) Overtime {
	hourly := coerce(basicRate) / workingDaysPerMonth / hoursPerDay

	ot.RegularOT.Rate = Round2(hourly * regularOTMultiplier * coerce(ot.RegularOT.Hours))
	ot.RestDay.Rate = Round2(hourly * restDayMultiplier * coerce(ot.RestDay.Hours))
	ot.NightDiff.Rate = Round2(hourly * nightDiffMultiplier * coerce(ot.NightDiff.Hours))
	ot.RegularHoliday.Rate = Round2(hourly * regularHolidayMultiplier * coerce(ot.RegularHoliday.Hours))
	ot.SpecialHoliday.Rate = Round2(hourly * specialHolidayMultiplier * coerce(ot.SpecialHoliday.Hours))
	return ot
}
