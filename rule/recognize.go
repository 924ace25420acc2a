package rule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// Recognize infers a rule from a short free-form phrase, in English or
// Chinese. Patterns are tried in a fixed priority order and the first match
// wins: plain frequency words first, then parameterized variants ("every N
// weeks", a specific weekday, a month day), then derived categories
// (weekdays, weekends). There is no best-match scoring and no fusion of
// multiple patterns.
//
// None means "could not infer a rule"; it is not an error.
func Recognize(text string) mo.Option[Rule] {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return mo.None[Rule]()
	}
	for _, p := range phrasePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return p.build(m)
		}
	}
	return mo.None[Rule]()
}

// phrasePattern pairs a phrase regexp with the rule it produces. The build
// func receives the submatches and may still return None when a captured
// parameter turns out to be unusable.
type phrasePattern struct {
	re    *regexp.Regexp
	build func(m []string) mo.Option[Rule]
}

// Order matters; see Recognize.
var phrasePatterns = []phrasePattern{
	// Plain frequency words.
	{regexp.MustCompile(`^(?:every ?day|daily|每天|每日)$`), fixed(FreqDaily, 1)},
	{regexp.MustCompile(`^(?:every ?week|weekly|每周|每星期|每個星期|每个星期)$`), fixed(FreqWeekly, 1)},
	{regexp.MustCompile(`^(?:every ?month|monthly|每月|每個月|每个月)$`), fixed(FreqMonthly, 1)},
	{regexp.MustCompile(`^(?:every ?year|yearly|annually|每年)$`), fixed(FreqYearly, 1)},

	// Biweekly gets its own entry so it outranks the generic "every N weeks".
	{regexp.MustCompile(`biweekly|bi-weekly|every other week|every two weeks|every second week|fortnightly|每两周|每兩周|每二周|隔周|隔週`), fixed(FreqWeekly, 2)},

	// Parameterized intervals.
	{regexp.MustCompile(`every (\d+) days?|每(\d+|[一二两兩三四五六七八九十])天`), interval(FreqDaily)},
	{regexp.MustCompile(`every (\d+) weeks?|每(\d+|[一二两兩三四五六七八九十])(?:周|週|个星期|個星期)`), interval(FreqWeekly)},
	{regexp.MustCompile(`every (\d+) months?|每(\d+|[一二两兩三四五六七八九十])(?:月|个月|個月)`), interval(FreqMonthly)},

	// A specific weekday ("every monday", "每周一").
	{
		regexp.MustCompile(`every (monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?|(?:每周|每週|每星期|周|週|星期)([一二三四五六日天])`),
		func(m []string) mo.Option[Rule] {
			day, ok := weekdayFromPhrase(pick(m))
			if !ok {
				return mo.None[Rule]()
			}
			return mo.Some(Rule{Freq: FreqWeekly, Interval: 1, ByDay: []Weekday{day}})
		},
	},

	// "every month on the 15th", "每月15号".
	{
		regexp.MustCompile(`every month on the (\d{1,2})(?:st|nd|rd|th)?|每月(\d{1,2})[号號日]`),
		func(m []string) mo.Option[Rule] {
			n, err := strconv.Atoi(pick(m))
			if err != nil || n < 1 || n > 31 {
				return mo.None[Rule]()
			}
			return mo.Some(Rule{Freq: FreqMonthly, Interval: 1, ByMonthDay: []int{n}})
		},
	},

	// Derived weekday categories come last.
	{regexp.MustCompile(`weekdays|every weekday|工作日`), func([]string) mo.Option[Rule] {
		return mo.Some(Rule{
			Freq:     FreqWeekly,
			Interval: 1,
			ByDay:    []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		})
	}},
	{regexp.MustCompile(`weekends|every weekend|周末|週末`), func([]string) mo.Option[Rule] {
		return mo.Some(Rule{
			Freq:     FreqWeekly,
			Interval: 1,
			ByDay:    []Weekday{Saturday, Sunday},
		})
	}},
}

func fixed(f Frequency, interval int) func([]string) mo.Option[Rule] {
	return func([]string) mo.Option[Rule] {
		return mo.Some(Rule{Freq: f, Interval: interval})
	}
}

func interval(f Frequency) func([]string) mo.Option[Rule] {
	return func(m []string) mo.Option[Rule] {
		n, ok := parseCount(pick(m))
		if !ok || n < 1 {
			return mo.None[Rule]()
		}
		return mo.Some(Rule{Freq: f, Interval: n})
	}
}

// pick returns the first non-empty capture group.
func pick(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

var chineseNumerals = map[string]int{
	"一": 1, "二": 2, "两": 2, "兩": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

func parseCount(s string) (int, bool) {
	if n, ok := chineseNumerals[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

var englishWeekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday, "sunday": time.Sunday,
}

var chineseWeekdays = map[string]time.Weekday{
	"一": time.Monday, "二": time.Tuesday, "三": time.Wednesday,
	"四": time.Thursday, "五": time.Friday, "六": time.Saturday,
	"日": time.Sunday, "天": time.Sunday,
}

func weekdayFromPhrase(s string) (Weekday, bool) {
	if d, ok := englishWeekdays[s]; ok {
		return WeekdayOf(d), true
	}
	if d, ok := chineseWeekdays[s]; ok {
		return WeekdayOf(d), true
	}
	return "", false
}
