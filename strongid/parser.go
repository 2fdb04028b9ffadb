package strongid

import (
	"fmt"
	"strings"
)

// parseText splits canonical identifier text into a codename and its
// segments under the grammar
//
//	Codename [Team ["-" Stronghold [Researcher]]]
//
// The codename is the maximal leading run of letters, at least two,
// regardless of CodenameMaxLen (that setting sizes storage, it never
// constrains parsing). Each segment is a digit run of exactly its
// configured width; a single "-" separates team from stronghold and
// appears nowhere else.
func parseText(text string, config Config) (string, []string, error) {
	letters := 0
	for letters < len(text) && isLetter(text[letters]) {
		letters++
	}
	if letters < codenameMinLen {
		return "", nil, fmt.Errorf("identifier %q: codename must be at least %d letters: %w", text, codenameMinLen, ErrMalformedIdentifier)
	}
	codename := strings.ToUpper(text[:letters])
	rest := text[letters:]
	if rest == "" {
		return codename, nil, nil
	}

	team, rest, err := takeDigitRun(rest, config.TeamDigits, "team")
	if err != nil {
		return "", nil, err
	}
	if rest == "" {
		return codename, []string{team}, nil
	}

	if rest[0] != '-' {
		return "", nil, fmt.Errorf("expected %q between team and stronghold, got %q: %w", "-", rest, ErrMalformedIdentifier)
	}
	stronghold, rest, err := takeDigitRun(rest[1:], config.StrongholdDigits, "stronghold")
	if err != nil {
		return "", nil, err
	}
	if rest == "" {
		return codename, []string{team, stronghold}, nil
	}

	researcher, rest, err := takeDigitRun(rest, config.ResearcherDigits, "researcher")
	if err != nil {
		return "", nil, err
	}
	if rest != "" {
		return "", nil, fmt.Errorf("trailing characters %q after researcher segment: %w", rest, ErrMalformedIdentifier)
	}
	return codename, []string{team, stronghold, researcher}, nil
}

// takeDigitRun consumes exactly width digits from the front of text and
// returns the run and the remainder.
func takeDigitRun(text string, width int, name string) (string, string, error) {
	if len(text) < width {
		return "", "", fmt.Errorf("%s segment needs %d digits, got %q: %w", name, width, text, ErrMalformedIdentifier)
	}
	run := text[:width]
	for i := 0; i < width; i++ {
		if run[i] < '0' || run[i] > '9' {
			return "", "", fmt.Errorf("%s segment %q contains non-digit %q: %w", name, run, run[i], ErrMalformedIdentifier)
		}
	}
	return run, text[width:], nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// printText renders the canonical text form: the codename, then each
// present segment, with the separator only between team and stronghold.
func printText(codename string, segments []string) string {
	var b strings.Builder
	b.WriteString(codename)
	for i, segment := range segments {
		if i == 1 {
			b.WriteByte('-')
		}
		b.WriteString(segment)
	}
	return b.String()
}
