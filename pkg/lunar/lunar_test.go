package lunar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConverterSuite struct {
	suite.Suite
}

func TestConverterSuite(t *testing.T) {
	suite.Run(t, new(ConverterSuite))
}

func (s *ConverterSuite) TestKnownDates() {
	cases := []struct {
		name  string
		solar SolarDate
		want  LunarDate
	}{
		{"Tết 2024", SolarDate{10, 2, 2024}, LunarDate{Day: 1, Month: 1, Year: 2024}},
		{"Tết 2025", SolarDate{29, 1, 2025}, LunarDate{Day: 1, Month: 1, Year: 2025}},
		{"Tết 2023", SolarDate{22, 1, 2023}, LunarDate{Day: 1, Month: 1, Year: 2023}},
		{"last day of 2023 lunar year", SolarDate{9, 2, 2024}, LunarDate{Day: 30, Month: 12, Year: 2023}},
		{"regular 2nd month 2023", SolarDate{20, 2, 2023}, LunarDate{Day: 1, Month: 2, Year: 2023}},
		{"leap 2nd month 2023 starts", SolarDate{22, 3, 2023}, LunarDate{Day: 1, Month: 2, Year: 2023, IsLeapMonth: true}},
		{"inside leap 2nd month 2023", SolarDate{1, 4, 2023}, LunarDate{Day: 11, Month: 2, Year: 2023, IsLeapMonth: true}},
		{"3rd month 2023 after leap", SolarDate{20, 4, 2023}, LunarDate{Day: 1, Month: 3, Year: 2023}},
		{"mid-autumn 2024", SolarDate{17, 9, 2024}, LunarDate{Day: 15, Month: 8, Year: 2024}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got := FromSolar(tc.solar)
			s.Equal(tc.want, got)
		})
	}
}

func (s *ConverterSuite) TestDeterministic() {
	first := Convert(15, 6, 2031)
	for i := 0; i < 100; i++ {
		s.Equal(first, Convert(15, 6, 2031))
	}
}

func (s *ConverterSuite) TestContinuityAcrossYears() {
	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC)

	prev := Convert(start.Day(), int(start.Month()), start.Year())
	leapStarts := make(map[int]int)

	for d := start.AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		cur := Convert(d.Day(), int(d.Month()), d.Year())

		if cur.Day == prev.Day+1 {
			s.Require().Equal(prev.Month, cur.Month, "month changed mid-month at %s", d.Format("2006-01-02"))
			s.Require().Equal(prev.Year, cur.Year, "year changed mid-month at %s", d.Format("2006-01-02"))
			s.Require().Equal(prev.IsLeapMonth, cur.IsLeapMonth, "leap flag changed mid-month at %s", d.Format("2006-01-02"))
			prev = cur
			continue
		}

		s.Require().Equal(1, cur.Day, "day did not wrap to 1 at %s", d.Format("2006-01-02"))
		s.Require().Contains([]int{29, 30}, prev.Day, "month of odd length ending %s", d.Format("2006-01-02"))

		if cur.IsLeapMonth {
			s.Require().False(prev.IsLeapMonth)
			s.Require().Equal(prev.Month, cur.Month, "leap month must repeat previous month at %s", d.Format("2006-01-02"))
			s.Require().Equal(prev.Year, cur.Year)
			leapStarts[cur.Year]++
		} else {
			wantMonth := prev.Month%12 + 1
			wantYear := prev.Year
			if prev.Month == 12 {
				wantYear++
			}
			s.Require().Equal(wantMonth, cur.Month, "unexpected month at %s", d.Format("2006-01-02"))
			s.Require().Equal(wantYear, cur.Year, "unexpected year at %s", d.Format("2006-01-02"))
		}
		prev = cur
	}

	for year, n := range leapStarts {
		s.LessOrEqual(n, 1, "lunar year %d has more than one leap month", year)
	}
	// 19-летний цикл даёт 7 вставных месяцев: за 1990-2039 их 19
	s.InDelta(19, len(leapStarts), 1)
}

func (s *ConverterSuite) TestNoLeapFlagInCommonYear() {
	// 2024 лунный год без вставного месяца
	for d := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC); d.Before(time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)); d = d.AddDate(0, 0, 1) {
		got := Convert(d.Day(), int(d.Month()), d.Year())
		s.Require().False(got.IsLeapMonth, "unexpected leap flag at %s", d.Format("2006-01-02"))
		s.Require().Equal(2024, got.Year)
	}
}

func TestJulianDayNumber_GregorianReform(t *testing.T) {
	before := JulianDayNumber(4, 10, 1582)
	after := JulianDayNumber(15, 10, 1582)

	assert.Equal(t, 2299160, before)
	assert.Equal(t, 2299161, after)
	assert.Equal(t, 1, after-before, "4 Oct 1582 (Julian) is followed by 15 Oct 1582 (Gregorian)")
}

func TestJulianDayNumber_KnownValues(t *testing.T) {
	assert.Equal(t, 2451545, JulianDayNumber(1, 1, 2000))
	assert.Equal(t, 2415021, JulianDayNumber(1, 1, 1900))
}

func TestConvert_NormalisesInvalidDay(t *testing.T) {
	// 30 февраля 2023 == 2 марта 2023
	assert.Equal(t, Convert(2, 3, 2023), Convert(30, 2, 2023))
}

func TestConvertChecked(t *testing.T) {
	_, err := ConvertChecked(1, 13, 2024)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ConvertChecked(0, 1, 2024)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err := ConvertChecked(10, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, LunarDate{Day: 1, Month: 1, Year: 2024}, got)
}

func TestFromTime_UsesVietnamDate(t *testing.T) {
	// 9 фев 2024 18:00 UTC это уже 10 фев 01:00 во Вьетнаме
	instant := time.Date(2024, 2, 9, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, LunarDate{Day: 1, Month: 1, Year: 2024}, FromTime(instant))
}

func TestLunarDate_String(t *testing.T) {
	assert.Equal(t, "1/1/2024", LunarDate{Day: 1, Month: 1, Year: 2024}.String())
	assert.Equal(t, "11/2+/2023", LunarDate{Day: 11, Month: 2, Year: 2023, IsLeapMonth: true}.String())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, -1, floorDiv(-1, 12))
	assert.Equal(t, 0, floorDiv(11, 12))
	assert.Equal(t, -2, floorDiv(-13, 12))
	assert.Equal(t, 2, floorDiv(24, 12))
}
