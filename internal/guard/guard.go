// Package guard holds the local keyword checks that reject fictional or
// off-topic input before any AI call is made.
package guard

import (
	"regexp"
	"strings"
)

// Terms in these lists match as whole words only: "elf" blocks "Elf ranger"
// but not "Shelf stacker", and "cv" does not block "CVS".

// FictionalCareers is the base blocklist for job roles and careers.
var FictionalCareers = []string{
	"jedi", "wizard", "dragon rider", "superhero", "hobbit", "elf",
	"vampire hunter", "time lord", "starfleet",
}

// FictionalJobTitles extends FictionalCareers for resume analysis.
var FictionalJobTitles = append(append([]string{}, FictionalCareers...),
	"hogwarts professor", "quidditch player", "stormtrooper",
	"king", "queen", "emperor", "mythical creature",
)

// CVRequests are phrases asking the chat assistant to review personal documents.
var CVRequests = []string{
	"cv", "resume", "curriculum vitae", "analyze my profile", "review my resume",
}

// Blocklist matches any of its terms as whole words, case-insensitively.
type Blocklist struct {
	terms []string
	re    *regexp.Regexp
}

func NewBlocklist(terms []string) *Blocklist {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(t))
	}
	return &Blocklist{
		terms: terms,
		re:    regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// Match returns the first blocked term found in s.
func (b *Blocklist) Match(s string) (string, bool) {
	m := b.re.FindString(s)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

func (b *Blocklist) Contains(s string) bool {
	return b.re.MatchString(s)
}

var (
	Careers   = NewBlocklist(FictionalCareers)
	JobTitles = NewBlocklist(FictionalJobTitles)
	CVTopics  = NewBlocklist(CVRequests)
)
