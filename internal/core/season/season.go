// Package season replays announcements into a year-long leaderboard
package season

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/normalize"
	"wordlebot/internal/core/wordle"
	perr "wordlebot/internal/platform/errors"
)

// Aliases maps a canonical participant to every display name they have used
type Aliases map[string][]string

// User is one participant's running totals
type User struct {
	Key        string
	Attempts   int
	Placements map[int]int
	TotalScore int64
}

// Wins is the number of first placements
func (u *User) Wins() int { return u.Placements[1] }

// WinPercent is wins*100/attempts, truncated
func (u *User) WinPercent() int {
	if u.Attempts == 0 {
		return 0
	}
	return u.Wins() * 100 / u.Attempts
}

// AverageScore is totalScore/attempts, truncated
func (u *User) AverageScore() int64 {
	if u.Attempts == 0 {
		return 0
	}
	return u.TotalScore / int64(u.Attempts)
}

// ProcessDay records one day's placement and score
func (u *User) ProcessDay(placement int, score int64) {
	u.Attempts++
	u.Placements[placement]++
	u.TotalScore += score
}

// Aggregator folds announcements into per-user statistics. Each puzzle day is
// counted once no matter how often its announcement is fed
type Aggregator struct {
	exact  map[string]string
	folded map[string]string
	users  map[string]*User
	order  []string
	days   map[wordle.Day]struct{}
}

// New flattens aliases into a lookup table. The same display name, or two
// names that fold alike, listed under two canonical keys is an error
func New(aliases Aliases) (*Aggregator, error) {
	a := &Aggregator{
		exact:  make(map[string]string),
		folded: make(map[string]string),
		users:  make(map[string]*User),
		days:   make(map[wordle.Day]struct{}),
	}
	for _, canonical := range slices.Sorted(maps.Keys(aliases)) {
		for _, name := range aliases[canonical] {
			if prev, dup := a.exact[name]; dup {
				return nil, perr.WithField(perr.InvalidArgf("display name %q listed for both %q and %q", name, prev, canonical), "aliases")
			}
			f := normalize.Fold(name)
			if prev, dup := a.folded[f]; dup && prev != canonical {
				return nil, perr.WithField(perr.InvalidArgf("display name %q folds onto a name of %q, listed for %q", name, prev, canonical), "aliases")
			}
			a.exact[name] = canonical
			a.folded[f] = canonical
		}
	}
	return a, nil
}

// Resolve maps a display name to its canonical key. Exact matches win; a
// case- and width-folded match is tried next; otherwise the name is its own key
func (a *Aggregator) Resolve(name string) string {
	if k, ok := a.exact[name]; ok {
		return k
	}
	if k, ok := a.folded[normalize.Fold(name)]; ok {
		return k
	}
	return name
}

// Feed parses text and, when it is an announcement for an unseen day, credits
// the winner with placement 1 and runners-up with 2..N in listed order. It
// reports whether the text changed the statistics
func (a *Aggregator) Feed(text string) bool {
	ann, ok := announce.Parse(text)
	if !ok {
		return false
	}
	return a.Add(ann)
}

// Add is Feed for an already parsed announcement
func (a *Aggregator) Add(ann announce.Announcement) bool {
	if _, seen := a.days[ann.Day]; seen {
		return false
	}
	a.days[ann.Day] = struct{}{}

	a.user(a.Resolve(ann.Winner)).ProcessDay(1, int64(ann.WinnerScore))
	for i, p := range ann.RunnersUp {
		a.user(a.Resolve(p.Name)).ProcessDay(i+2, int64(p.Score))
	}
	return true
}

func (a *Aggregator) user(key string) *User {
	u, ok := a.users[key]
	if !ok {
		u = &User{Key: key, Placements: make(map[int]int)}
		a.users[key] = u
		a.order = append(a.order, key)
	}
	return u
}

// Days is the number of distinct puzzle days counted
func (a *Aggregator) Days() int { return len(a.days) }

// Users returns participants by wins descending; ties keep first-seen order
func (a *Aggregator) Users() []*User {
	out := make([]*User, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.users[k])
	}
	slices.SortStableFunc(out, func(x, y *User) int { return cmp.Compare(y.Wins(), x.Wins()) })
	return out
}

// User returns the totals for a canonical key
func (a *Aggregator) User(key string) (*User, bool) {
	u, ok := a.users[key]
	return u, ok
}

// Report renders the roundup text for year
func (a *Aggregator) Report(year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Roundup for %d so far\n", year)
	fmt.Fprintf(&b, "Completed the Wordle on %d days\n", a.Days())
	for _, u := range a.Users() {
		fmt.Fprintf(&b, "%s won %d out of %d, which is %d%% of their attempts. Their average score was %d\n",
			u.Key, u.Wins(), u.Attempts, u.WinPercent(), u.AverageScore())
	}
	return b.String()
}
