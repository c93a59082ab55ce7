package command

import "strings"

// Parse splits a raw input line into a lower-cased verb and its argument
// tokens. The whole line is tokenized on whitespace, so `add` can take
// several phone numbers in one command; multi-word names are consequently
// not expressible from the prompt.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
