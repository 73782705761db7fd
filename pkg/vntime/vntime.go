// Package vntime форматирует даты для отображения во вьетнамском часовом поясе
package vntime

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
)

const zoneName = "Asia/Ho_Chi_Minh"

var (
	locOnce sync.Once
	loc     *time.Location
)

var weekdayNames = [7]string{"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy"}

var weekdayShortNames = [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

// Location возвращает часовой пояс Вьетнама
// Если база tzdata недоступна, используется фиксированное смещение UTC+7
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(zoneName)
		if err != nil {
			l = time.FixedZone("ICT", lunar.TimeZoneOffset*60*60)
		}
		loc = l
	})
	return loc
}

// ToVietnam переводит время в часовой пояс Вьетнама
func ToVietnam(t time.Time) time.Time {
	return t.In(Location())
}

// Date возвращает полночь указанного дня по времени Вьетнама
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

// FormatDate форматирует дату как dd/mm/yyyy
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return ToVietnam(t).Format("02/01/2006")
}

// FormatTime форматирует время как HH:MM
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return ToVietnam(t).Format("15:04")
}

// WeekdayName возвращает полное вьетнамское название дня недели
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// WeekdayShortNames возвращает сокращённые названия дней недели начиная с воскресенья
func WeekdayShortNames() []string {
	out := make([]string, len(weekdayShortNames))
	copy(out, weekdayShortNames[:])
	return out
}

// MonthName возвращает название месяца ("Tháng 1" ... "Tháng 12")
func MonthName(m time.Month) string {
	return fmt.Sprintf("Tháng %d", int(m))
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth возвращает день недели первого числа месяца во Вьетнаме
func FirstWeekdayOfMonth(year int, month time.Month) time.Weekday {
	return Date(year, month, 1).Weekday()
}

// IsSameDay сравнивает календарные даты во вьетнамском часовом поясе
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := ToVietnam(a).Date()
	y2, m2, d2 := ToVietnam(b).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Lunar возвращает лунную дату для календарного дня t во Вьетнаме
func Lunar(t time.Time) lunar.LunarDate {
	v := ToVietnam(t)
	return lunar.Convert(v.Day(), int(v.Month()), v.Year())
}

// FormatLunar форматирует лунную дату как "d/m Âm lịch"
func FormatLunar(d lunar.LunarDate) string {
	if d.IsLeapMonth {
		return fmt.Sprintf("(nhuận) %d/%d Âm lịch", d.Day, d.Month)
	}
	return fmt.Sprintf("%d/%d Âm lịch", d.Day, d.Month)
}

// FormatLunarDate форматирует лунную дату для момента t
func FormatLunarDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatLunar(Lunar(t))
}

// FormatDateTimeWithLunar возвращает "Thứ Hai, 10/02/2024 - 1/1 Âm lịch"
func FormatDateTimeWithLunar(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	v := ToVietnam(t)
	return fmt.Sprintf("%s, %s - %s", WeekdayName(v.Weekday()), FormatDate(t), FormatLunarDate(t))
}
