package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors     int
	AuthFailures    int
	OrdersCreated   int
	PaymentsCreated int
	PaymentsSuccess int
	PaymentsFailed  int
	ResolveFailures int
	ErrorPatterns   map[string]int
}

var (
	authFailureRegex  = regexp.MustCompile(`(Merchant authentication failed|Missing API credentials)`)
	orderCreatedRegex = regexp.MustCompile(`Order order_[0-9a-f]+ created`)
	paymentRegex      = regexp.MustCompile(`Payment pay_[0-9a-f]+ created`)
	resolvedRegex     = regexp.MustCompile(`Payment pay_[0-9a-f]+ resolved to (success|failed)`)
	resolveFailRegex  = regexp.MustCompile(`Failed to resolve payment`)
)

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if authFailureRegex.MatchString(line) {
			stats.AuthFailures++
		}
		if resolveFailRegex.MatchString(line) {
			stats.ResolveFailures++
		}

		// Bucket errors by the text after the level prefix
		if idx := strings.Index(line, "ERROR: "); idx >= 0 {
			message := line[idx+len("ERROR: "):]
			if colon := strings.Index(message, ":"); colon > 0 {
				message = message[:colon]
			}
			stats.ErrorPatterns[message]++
		}
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if orderCreatedRegex.MatchString(line) {
			stats.OrdersCreated++
		}
		if paymentRegex.MatchString(line) {
			stats.PaymentsCreated++
		}
		if m := resolvedRegex.FindStringSubmatch(line); m != nil {
			if m[1] == "success" {
				stats.PaymentsSuccess++
			} else {
				stats.PaymentsFailed++
			}
		}
	}
}

func printReport(stats *LogStats) {
	fmt.Println("=== Gateway Log Report ===")
	fmt.Printf("Orders created:      %d\n", stats.OrdersCreated)
	fmt.Printf("Payments created:    %d\n", stats.PaymentsCreated)
	fmt.Printf("Payments succeeded:  %d\n", stats.PaymentsSuccess)
	fmt.Printf("Payments failed:     %d\n", stats.PaymentsFailed)
	fmt.Printf("Auth failures:       %d\n", stats.AuthFailures)
	fmt.Printf("Resolve failures:    %d\n", stats.ResolveFailures)
	fmt.Printf("Total error lines:   %d\n", stats.TotalErrors)

	if len(stats.ErrorPatterns) == 0 {
		return
	}

	fmt.Println("\nTop error patterns:")
	type patternCount struct {
		pattern string
		count   int
	}
	patterns := make([]patternCount, 0, len(stats.ErrorPatterns))
	for pattern, count := range stats.ErrorPatterns {
		patterns = append(patterns, patternCount{pattern, count})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].count > patterns[j].count })
	for _, p := range patterns {
		fmt.Printf("  %4d  %s\n", p.count, p.pattern)
	}
}
