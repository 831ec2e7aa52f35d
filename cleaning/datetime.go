package cleaning

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Explicit layouts tried in order before the generic fallback.
// Foodstory has shipped all three over time; day/month/year first
// because that is what the Thai exports use.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"1/2/2006",
}

var (
	clockHMSRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})`)
	clockHMRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
	hourMinRe  = regexp.MustCompile(`(\d+)\s*hours?\s*(\d+)\s*min(?:ute)?s?`)
	minOnlyRe  = regexp.MustCompile(`(\d+)\s*min(?:ute)?s?`)
	hourOnlyRe = regexp.MustCompile(`(\d+)\s*hours?`)
)

// RepairDate turns a heterogeneous date string into YYYY-MM-DD for
// storage. Unparseable input becomes "" (empty string sentinel, not
// NULL), so analysis can drop those rows without the import failing.
func RepairDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}

// RepairTime normalizes clock times and duration phrases to HH:MM:SS,
// in priority order: HH:MM:SS, HH:MM, "N hour M min", "N min",
// "N hour". Anything else becomes 00:00:00. Feeding the output back
// through returns the same string.
func RepairTime(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "00:00:00"
	}

	if m := clockHMSRe.FindStringSubmatch(s); m != nil {
		return clockString(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := clockHMRe.FindStringSubmatch(s); m != nil {
		return clockString(atoi(m[1]), atoi(m[2]), 0)
	}

	seconds := 0
	if m := hourMinRe.FindStringSubmatch(s); m != nil {
		seconds = atoi(m[1])*3600 + atoi(m[2])*60
	} else if m := minOnlyRe.FindStringSubmatch(s); m != nil {
		seconds = atoi(m[1]) * 60
	} else if m := hourOnlyRe.FindStringSubmatch(s); m != nil {
		seconds = atoi(m[1]) * 3600
	}
	if seconds > 0 {
		return clockString(seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return "00:00:00"
}

func clockString(h, m, s int) string {
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
