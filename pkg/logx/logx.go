package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

var (
	level  = 1 // 0=debug,1=info,2=warn,3=error
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel accepts debug, info, warn or error. Unknown levels leave the
// current level untouched.
func SetLevel(l string) error {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug": level = 0
	case "info", "": level = 1
	case "warn": level = 2
	case "error": level = 3
	default:
		return fmt.Errorf("unknown log level %q", l)
	}
	return nil
}

// ValidLevel reports whether SetLevel would accept l.
func ValidLevel(l string) bool {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug", "info", "warn", "error", "":
		return true
	}
	return false
}

// SetOutput redirects log lines; stdout is left for solver output.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

func Debugf(f string, a ...any) { if level <= 0 { logger.Printf("DEBUG "+f, a...) } }
func Infof(f string, a ...any)  { if level <= 1 { logger.Printf("INFO  "+f, a...) } }
func Warnf(f string, a ...any)  { if level <= 2 { logger.Printf("WARN  "+f, a...) } }
func Errorf(f string, a ...any) { if level <= 3 { logger.Printf("ERROR "+f, a...) } }

// SprintKV renders kv as space separated key=value pairs in key order.
func SprintKV(kv map[string]any) string {
	keys := make([]string, 0, len(kv))
	for k := range kv { keys = append(keys, k) }
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 { b.WriteString(" ") }
		b.WriteString(fmt.Sprintf("%s=%v", k, kv[k]))
	}
	return b.String()
}
