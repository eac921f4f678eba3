package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// Result contains the guest units built from one raw input together with the
// warnings collected along the way.
type Result struct {
	Units    []*model.Guest
	Warnings []model.Warning
}

// TotalSeats sums the headcounts of all parsed units.
func (r Result) TotalSeats() int {
	total := 0
	for _, u := range r.Units {
		total += u.Seats()
	}
	return total
}

var (
	htmlTagPattern       = regexp.MustCompile(`<[^>]*>`)
	controlPattern       = regexp.MustCompile("[\x00-\x1f\x7f]")
	spacePattern         = regexp.MustCompile(`\s+`)
	digitsPattern        = regexp.MustCompile(`^\d+$`)
	parenConnectorDigits = regexp.MustCompile(`\(\s*([+&]\s*\d+)\s*\)`)
)

// Parse splits raw guest text on commas into guest-unit tokens and builds one
// guest unit per token. Malformed input never fails: empty tokens are skipped
// with a warning and tokens normalizing to an already seen key are merged into
// the existing unit, keeping the larger headcount.
func Parse(raw string, cfg model.ParserConfig) Result {
	result := Result{}
	if strings.TrimSpace(raw) == "" {
		return result
	}

	byKey := map[string]*model.Guest{}

	for i, token := range strings.Split(raw, ",") {
		row := i + 1

		clean := sanitize(token)
		if clean == "" {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Message: "empty guest entry skipped",
			})
			continue
		}

		unit := buildUnit(clean, cfg)

		if existing, ok := byKey[unit.NormalizedKey]; ok {
			if unit.Count > existing.Count {
				existing.Count = unit.Count
			}
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Token:   unit.DisplayName,
				Message: "duplicate guest entry merged",
			})
			continue
		}

		unit.ID = uuid.New()
		unit.CreatedAt = time.Now()
		byKey[unit.NormalizedKey] = unit
		result.Units = append(result.Units, unit)
	}

	return result
}

// buildUnit turns one sanitized token into a guest unit. Headcount rules, in
// precedence order: an explicit parenthesized count overrides everything;
// otherwise every sub-name contributes one seat, digits after a connector
// ("+3") contribute their value, and a literal "plus one" or standalone
// "guest" contributes one extra seat each.
func buildUnit(clean string, cfg model.ParserConfig) *model.Guest {
	// "(+2)" wraps connector syntax rather than an absolute count.
	clean = squash(parenConnectorDigits.ReplaceAllString(clean, " $1 "))

	explicit := 0
	working := clean
	nameText := clean
	if cfg.ExplicitCount != nil {
		if m := cfg.ExplicitCount.FindStringSubmatch(working); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				explicit = n
			}
			// The count is bookkeeping, the name is what identifies the unit.
			working = cfg.ExplicitCount.ReplaceAllString(working, " ")
			nameText = working
		}
	}

	display := buildDisplayName(nameText, cfg)

	working = strings.NewReplacer("(", " ", ")", " ").Replace(working)

	extra := 0
	if cfg.PlusOne != nil && cfg.PlusOne.MatchString(working) {
		extra++
		working = cfg.PlusOne.ReplaceAllString(working, " ")
	}
	if cfg.GuestKeyword != nil && cfg.GuestKeyword.MatchString(working) {
		extra++
		working = cfg.GuestKeyword.ReplaceAllString(working, " ")
	}

	pieces := splitConnectors(working, cfg)

	names := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if digitsPattern.MatchString(piece) {
			// The connector already contributed the first of these seats.
			if n, err := strconv.Atoi(piece); err == nil && n > 0 {
				extra += n - 1
			}
			continue
		}
		names = append(names, piece)
	}
	if len(names) == 0 {
		names = append(names, display)
	}

	count := explicit
	if count == 0 {
		count = max(1, len(pieces)) + extra
	}
	if count < 1 {
		count = 1
	}

	return &model.Guest{
		DisplayName:     display,
		NormalizedKey:   normalizeKey(display),
		SortKey:         extractSortKey(display, cfg),
		Count:           count,
		IndividualNames: names,
	}
}

// sanitize strips HTML tags and control characters from a token and squashes
// whitespace.
func sanitize(token string) string {
	token = htmlTagPattern.ReplaceAllString(token, "")
	token = controlPattern.ReplaceAllString(token, " ")
	return squash(token)
}

// buildDisplayName renders "+" and "and" connectors as "&" for presentation.
func buildDisplayName(clean string, cfg model.ParserConfig) string {
	if cfg.DisplayConnectors != nil {
		clean = cfg.DisplayConnectors.ReplaceAllString(clean, " & ")
	}
	return squash(clean)
}

// normalizeKey builds the deduplication identity of a display name.
func normalizeKey(display string) string {
	return strings.ToLower(squash(display))
}

// extractSortKey returns the explicit sort key following the marker token if
// present, otherwise the last whitespace-delimited word of the name (or the
// whole name when it has no spaces). Keys are lowercased.
func extractSortKey(display string, cfg model.ParserConfig) string {
	if cfg.SortKeyMarker != "" {
		if idx := strings.Index(display, cfg.SortKeyMarker); idx >= 0 {
			rest := display[idx+len(cfg.SortKeyMarker):]
			if sp := strings.IndexFunc(rest, unicode.IsSpace); sp >= 0 {
				rest = rest[:sp]
			}
			if rest != "" {
				return strings.ToLower(rest)
			}
		}
	}

	fields := strings.Fields(display)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

func splitConnectors(working string, cfg model.ParserConfig) []string {
	var parts []string
	if cfg.Connectors != nil {
		parts = cfg.Connectors.Split(working, -1)
	} else {
		parts = []string{working}
	}

	pieces := make([]string, 0, len(parts))
	for _, part := range parts {
		part = squash(part)
		if part != "" {
			pieces = append(pieces, part)
		}
	}
	return pieces
}

func squash(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
