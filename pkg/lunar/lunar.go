// Package lunar converts Gregorian dates to the Vietnamese lunisolar calendar.
//
// The conversion uses the classic new-moon and solar-longitude series
// evaluated for the UTC+7 meridian. All functions are pure and safe for
// concurrent use.
package lunar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TimeZoneOffset смещение часового пояса (часы), для которого считаются новолуния
const TimeZoneOffset = 7

const (
	// gregorianReformJDN первый день григорианского календаря (15.10.1582)
	gregorianReformJDN = 2299161

	synodicMonth   = 29.530588853
	newMoonEpochJD = 2415021.076998695

	dr = math.Pi / 180
)

// ErrInvalidArgument возвращается при некорректной солнечной дате
var ErrInvalidArgument = errors.New("lunar: invalid argument")

// SolarDate дата григорианского календаря
type SolarDate struct {
	Day   int
	Month int
	Year  int
}

// LunarDate дата вьетнамского лунного календаря
type LunarDate struct {
	Day         int  `json:"day"`
	Month       int  `json:"month"`
	Year        int  `json:"year"`
	IsLeapMonth bool `json:"isLeapMonth"`
}

// String компактная запись "d/m/y" для логов и тестов, високосный месяц помечается "+"
// Для пользователя используется vntime.FormatLunar
func (d LunarDate) String() string {
	if d.IsLeapMonth {
		return fmt.Sprintf("%d/%d+/%d", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// Validate проверяет диапазоны дня и месяца
func (s SolarDate) Validate() error {
	if s.Month < 1 || s.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidArgument, s.Month)
	}
	if s.Day < 1 || s.Day > 31 {
		return fmt.Errorf("%w: day %d out of range 1-31", ErrInvalidArgument, s.Day)
	}
	return nil
}

// Convert returns the lunar date for the given solar day, month and year.
// The day is not checked against the month length: out-of-range days are
// normalised by the Julian day arithmetic.
func Convert(day, month, year int) LunarDate {
	dayNumber := JulianDayNumber(day, month, year)

	k := int(math.Floor((float64(dayNumber) - newMoonEpochJD) / synodicMonth))
	monthStart := newMoonDay(k + 1)
	if monthStart > dayNumber {
		monthStart = newMoonDay(k)
	}

	a11 := lunarMonth11(year)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = lunarMonth11(year - 1)
	} else {
		lunarYear = year + 1
		b11 = lunarMonth11(year + 1)
	}

	lunarDay := dayNumber - monthStart + 1
	diff := floorDiv(monthStart-a11, 29)
	isLeap := false
	lunarMonth := diff + 11

	if b11-a11 > 365 {
		leapMonthDiff := leapMonthOffset(a11)
		if diff >= leapMonthDiff {
			lunarMonth = diff + 10
			if diff == leapMonthDiff {
				isLeap = true
			}
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return LunarDate{
		Day:         lunarDay,
		Month:       lunarMonth,
		Year:        lunarYear,
		IsLeapMonth: isLeap,
	}
}

// ConvertChecked is Convert with range checks on month and day.
func ConvertChecked(day, month, year int) (LunarDate, error) {
	if err := (SolarDate{Day: day, Month: month, Year: year}).Validate(); err != nil {
		return LunarDate{}, err
	}
	return Convert(day, month, year), nil
}

// FromSolar converts a SolarDate.
func FromSolar(s SolarDate) LunarDate {
	return Convert(s.Day, s.Month, s.Year)
}

// FromTime converts the calendar date of t as seen at UTC+7.
func FromTime(t time.Time) LunarDate {
	local := t.In(time.FixedZone("UTC+7", TimeZoneOffset*60*60))
	return Convert(local.Day(), int(local.Month()), local.Year())
}

// JulianDayNumber returns the Julian day number of a solar date. Dates
// before 15 October 1582 are read in the Julian calendar.
func JulianDayNumber(day, month, year int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3

	jd := day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	if jd < gregorianReformJDN {
		jd = day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
	}
	return jd
}

// newMoonDay возвращает номер юлианского дня k-го новолуния (по UTC+7)
func newMoonDay(k int) int {
	kf := float64(k)
	t := kf / 1236.85
	t2 := t * t
	t3 := t2 * t

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*dr)

	// аномалия Солнца, аномалия Луны, аргумент широты
	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 = c1 - 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 = c1 - 0.0004*math.Sin(dr*3*mpr)
	c1 = c1 + 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000262*t2
	}

	jdNew := jd1 + c1 - deltaT
	return int(math.Floor(jdNew + 0.5 + float64(TimeZoneOffset)/24))
}

// sunSector возвращает сектор (0..11) эклиптической долготы Солнца
// в начале дня jdn
func sunSector(jdn int) int {
	t := (float64(jdn) - 2451545.5 - float64(TimeZoneOffset)/24) / 36525
	t2 := t * t

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2

	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl = dl + (0.019993-0.000101*t)*math.Sin(dr*2*m) + 0.000290*math.Sin(dr*3*m)

	l := (l0 + dl) * dr
	l -= math.Pi * 2 * math.Floor(l/(math.Pi*2))
	return int(math.Floor(l / math.Pi * 6))
}

// lunarMonth11 возвращает день начала 11-го лунного месяца (содержащего
// зимнее солнцестояние) для года yy
func lunarMonth11(yy int) int {
	off := JulianDayNumber(31, 12, yy) - 2415021
	k := int(math.Floor(float64(off) / synodicMonth))
	nm := newMoonDay(k)
	if sunSector(nm) >= 9 {
		nm = newMoonDay(k - 1)
	}
	return nm
}

// leapMonthOffset возвращает номер (от a11) месяца без нового солнечного
// сектора, то есть вставного месяца
func leapMonthOffset(a11 int) int {
	k := int(math.Floor((float64(a11)-newMoonEpochJD)/synodicMonth + 0.5))
	i := 1
	arc := sunSector(newMoonDay(k + i))
	for {
		last := arc
		i++
		arc = sunSector(newMoonDay(k + i))
		if arc == last || i >= 14 {
			break
		}
	}
	return i - 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
