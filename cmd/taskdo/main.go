package main

import (
	"os"
	"strconv"
	"strings"

	"taskdo/internal/cli"
)

func isTaskID(s string) bool {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil && id > 0
}

// flagTakesValue lists root persistent flags whose value is a separate token.
var flagTakesValue = map[string]bool{
	"--api-url": true,
	"--format":  true,
}

// firstPositional returns the index of the first argument that is not a flag
// or a flag value, or -1.
func firstPositional(argv []string) int {
	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
		case a == "--":
			if i+1 < len(argv) {
				return i + 1
			}
			return -1
		case strings.HasPrefix(a, "-"):
			if flagTakesValue[a] {
				i++
			}
		default:
			return i
		}
	}
	return -1
}

// rewriteDirectTaskLookupArgs turns `taskdo [flags] <id>` into
// `taskdo [flags] tasks show <id>`.
func rewriteDirectTaskLookupArgs(argv []string) []string {
	i := firstPositional(argv)
	if i < 0 || !isTaskID(argv[i]) {
		return argv
	}
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:i]...)
	out = append(out, "tasks", "show")
	return append(out, argv[i:]...)
}

func main() {
	os.Args = rewriteDirectTaskLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
