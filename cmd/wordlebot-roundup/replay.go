package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/answers"
	"wordlebot/internal/core/season"

	perr "wordlebot/internal/platform/errors"
)

// exported is one line of the JSON-lines export
type exported struct {
	AuthorID  string    `json:"author_id"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

type filter struct {
	Year int
	Self string
}

type result struct {
	Season  *season.Aggregator
	Answers *answers.Index
	Skipped int
}

const maxLine = 1 << 20

// readExport decodes every non-blank line; a bad line fails with its number
func readExport(r io.Reader) ([]exported, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []exported
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e exported
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "line %d", n)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "scan export")
	}
	return out, nil
}

// replay feeds the export into a season aggregator for f.Year and an answer
// index over every year. Messages not by f.Self are skipped when it is set
func replay(lines []exported, f filter, aliases season.Aliases, tick func()) (result, error) {
	agg, err := season.New(aliases)
	if err != nil {
		return result{}, err
	}
	res := result{Season: agg, Answers: answers.New()}
	for _, e := range lines {
		tick()
		if f.Self != "" && e.AuthorID != f.Self {
			res.Skipped++
			continue
		}
		a, ok := announce.Parse(e.Content)
		if !ok {
			res.Skipped++
			continue
		}
		res.Answers.Add(a.Day, a.Answer)
		if e.Timestamp.Year() == f.Year {
			agg.Add(a)
		}
	}
	return res, nil
}

// find renders the find command reply for word
func find(x *answers.Index, msgs announce.Messages, word string) string {
	word = strings.ToUpper(strings.TrimSpace(word))
	if d, ok := x.LookupDay(word); ok {
		return announce.Expand(msgs.FindHit, "word", word, "date", d.ISODate())
	}
	return announce.Expand(msgs.FindMiss, "word", word)
}
