package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type invalidIDError struct {
	raw string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid task id: %q (expected a positive integer)", e.raw)
}

func parseTaskID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidIDError{raw: s}
	}
	return id, nil
}
