package testkit

import (
	"fmt"
	"regexp"
	"strings"
)

// CheckBlockInvariants runs a minimal set of structural invariants on a
// rendered HTML message block:
// 1) the block is a single <div class="messages ..."> container
// 2) it holds exactly one <ul>, with no whitespace between list items
// 3) the messages-single class agrees with the list item count
func CheckBlockInvariants(block string) error {
	if block == "" {
		return nil
	}
	if !strings.HasPrefix(block, `<div class="messages messages-`) {
		return fmt.Errorf("block does not open a messages div: %.60q", block)
	}
	if !strings.HasSuffix(block, "</div>\n") {
		return fmt.Errorf("block is not closed by </div>: %.60q", block)
	}
	if n := strings.Count(block, "<ul"); n != 1 {
		return fmt.Errorf("expected exactly one <ul>, found %d", n)
	}
	if strings.Contains(block, "</li> ") || strings.Contains(block, "</li>\n<li") {
		return fmt.Errorf("whitespace between list items")
	}

	items := CountListItems(block)
	if items == 0 {
		return fmt.Errorf("rendered block has no list items")
	}
	single := strings.Contains(block, " messages-single")
	if single != (items == 1) {
		return fmt.Errorf("messages-single=%v disagrees with %d list items", single, items)
	}
	return nil
}

var listItem = regexp.MustCompile(`<li[ >]`)

// CountListItems counts rendered messages the way a downstream consumer is
// promised to be able to: by counting <li> occurrences.
func CountListItems(block string) int {
	return len(listItem.FindAllString(block, -1))
}
