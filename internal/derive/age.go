package derive

import (
	"fmt"
	"time"
)

const minBreedingAgeMonths = 6

// AgeInMonths counts whole calendar months between the birth date and today.
// Day-of-month is deliberately ignored: an animal born on the 28th counts a
// full month older on the 1st of the next month. This coarse arithmetic is the
// displayed-age contract and must not be refined.
func AgeInMonths(birthDate string, today time.Time) int {
	birth := parseDay(birthDate)
	return (today.Year()-birth.Year())*12 + int(today.Month()) - int(birth.Month())
}

// FormatAge renders a month count the way the herd list shows it.
func FormatAge(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years := months / 12
	remainder := months % 12
	if remainder > 0 {
		return fmt.Sprintf("%dy %dm", years, remainder)
	}
	return fmt.Sprintf("%d years", years)
}

// TooYoungToBreed reports whether the animal is under the fixed six-month
// minimum breeding age.
func TooYoungToBreed(birthDate string, today time.Time) bool {
	return AgeInMonths(birthDate, today) < minBreedingAgeMonths
}
