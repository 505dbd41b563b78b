package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d+)-)?(\d+)$`)
	yearMonthRE    = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)
)

// ParseFlag parses a date given on the command line, relative to today.
//
// Supported forms:
//   - "0d": today
//   - relative durations with a mandatory sign: "-1d", "+2w", "-1m", "-1q", "+1y"
//   - "[MM-]DD" in the current year ("27", "8-27"); day 0 is the last day of the previous month
//   - "YYYY-MM" for the first day of a month
//   - any ledger format accepted by Parse
func ParseFlag(str string) (Date, error) {
	return parseFlag(str, Today())
}

func parseFlag(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)

	if str == "0d" || str == "" {
		return today, nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return New(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "q":
			return New(today.Year(), today.Month()+time.Month(num*3), today.Day()), nil
		case "y":
			return New(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	if match := yearMonthRE.FindStringSubmatch(str); match != nil {
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		if month < 1 || month > 12 {
			return Date{}, fmt.Errorf("invalid month in %q", str)
		}
		return New(year, time.Month(month), 1), nil
	}

	if match := monthDayDateRE.FindStringSubmatch(str); match != nil {
		day, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid day in date %q: %w", str, err)
		}
		year, month := today.Year(), today.Month()
		if match[1] != "" {
			m, err := strconv.Atoi(match[1])
			if err != nil {
				return Date{}, fmt.Errorf("invalid month in date %q: %w", str, err)
			}
			if m == 0 {
				year--
				month = time.December
			} else {
				month = time.Month(m)
			}
		}
		// day 0 is the last day of the previous month, New normalizes it.
		return New(year, month, day), nil
	}

	return Parse(str)
}
