package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/identity"
)

// Scenario is one kind of ledger request
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   func(uid string, others []string) any
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	UID          string
	StatusCode   int
	Code         string
	ResponseTime time.Duration
	Err          error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	mu            sync.Mutex
	Total         int
	Succeeded     int
	ResponseTimes []time.Duration
	ByScenario    map[string]int
	ByUser        map[string]int
	ByOutcome     map[string]int
}

func (s *TestStats) record(r TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ByScenario[r.Scenario]++
	s.ByUser[r.UID]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)

	switch {
	case r.Err != nil:
		s.ByOutcome["transport: "+r.Err.Error()]++
	case r.StatusCode >= 200 && r.StatusCode < 300:
		s.Succeeded++
	default:
		s.ByOutcome[fmt.Sprintf("%d %s", r.StatusCode, r.Code)]++
	}
}

func (s *TestStats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ResponseTimes)
}

var scenarios = []Scenario{
	{"topup", http.MethodPost, "/api/wallet/topup", func(string, []string) any {
		return map[string]any{"amount": 10 + rand.Intn(50)}
	}},
	{"spend", http.MethodPost, "/api/wallet/spend", func(string, []string) any {
		return map[string]any{"amount": 1 + rand.Intn(20)}
	}},
	{"balance", http.MethodGet, "/api/wallet/balance", nil},
	{"send-gift", http.MethodPost, "/api/gifts/send", func(uid string, others []string) any {
		return map[string]any{
			"receiverUid": pickOther(uid, others),
			"roomId":      "loadtest-room",
			"giftId":      "hoa-hong",
			"senderName":  uid,
		}
	}},
	{"received", http.MethodGet, "/api/gifts/received?limit=10", nil},
	{"purchase", http.MethodPost, "/api/shop/purchase", func(string, []string) any {
		return map[string]any{"itemId": "sticker-pack"}
	}},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	usersFlag := flag.String("u", "load-1,load-2,load-3", "Comma-separated list of uids to distribute load across")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("CL_AUTH_HMAC_SECRET"), "HMAC secret used to sign identity tokens")
	only := flag.String("scenario", "", "Run a single scenario by name")
	delay := flag.Duration("delay", 100*time.Millisecond, "Delay between requests of a worker")
	flag.Parse()

	if *secret == "" {
		fmt.Println("an HMAC secret is required (-secret or CL_AUTH_HMAC_SECRET)")
		os.Exit(2)
	}

	var uids []string
	for _, uid := range strings.Split(*usersFlag, ",") {
		if uid = strings.TrimSpace(uid); uid != "" {
			uids = append(uids, uid)
		}
	}
	if len(uids) == 0 {
		uids = []string{"load-1"}
	}

	active := scenarios
	if *only != "" {
		active = nil
		for _, s := range scenarios {
			if s.Name == *only {
				active = append(active, s)
			}
		}
		if len(active) == 0 {
			fmt.Printf("unknown scenario %q\n", *only)
			os.Exit(2)
		}
	}

	tokens := make(map[string]string, len(uids))
	for _, uid := range uids {
		token, err := identity.NewHMACToken(*secret, entity.Identity{UID: uid}, time.Now(), time.Hour)
		if err != nil {
			fmt.Printf("failed to sign token for %s: %v\n", uid, err)
			os.Exit(1)
		}
		tokens[uid] = token
	}

	fmt.Printf("Load testing %s across %d users: %v\n", *baseURL, len(uids), uids)
	fmt.Printf("Concurrency: %d, requests: %d, delay: %v\n", *concurrency, *totalRequests, *delay)

	stats := &TestStats{
		Total:         *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ByScenario:    make(map[string]int),
		ByUser:        make(map[string]int),
		ByOutcome:     make(map[string]int),
	}

	client := &http.Client{Timeout: 10 * time.Second}
	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			fmt.Printf("Progress: %d/%d\n", stats.completed(), stats.Total)
		}
	}()

	startTime := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < *concurrency; w++ {
		g.Go(func() error {
			for range jobs {
				if *delay > 0 {
					time.Sleep(*delay)
				}
				uid := uids[rand.Intn(len(uids))]
				scenario := active[rand.Intn(len(active))]
				stats.record(run(ctx, client, *baseURL, tokens[uid], uid, uids, scenario))
			}
			return nil
		})
	}
	_ = g.Wait()

	printResults(stats, time.Since(startTime))
}

func run(ctx context.Context, client *http.Client, baseURL, token, uid string, uids []string, s Scenario) TestResult {
	result := TestResult{Scenario: s.Name, UID: uid}

	var body bytes.Buffer
	if s.Body != nil {
		if err := json.NewEncoder(&body).Encode(s.Body(uid, uids)); err != nil {
			result.Err = err
			return result
		}
	}

	req, err := http.NewRequestWithContext(ctx, s.Method, baseURL+s.Path, &body)
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(started)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 300 {
		var payload struct {
			Code string `json:"code"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		result.Code = payload.Code
	}
	return result
}

func pickOther(uid string, uids []string) string {
	for _, i := range rand.Perm(len(uids)) {
		if uids[i] != uid {
			return uids[i]
		}
	}
	return uid + "-peer"
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func printResults(stats *TestStats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	done := len(sorted)
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Requests:       %d\n", done)
	if done > 0 {
		fmt.Printf("Succeeded:      %d (%.1f%%)\n", stats.Succeeded, float64(stats.Succeeded)/float64(done)*100)
	}
	fmt.Printf("Total time:     %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput:     %.2f req/s\n", float64(done)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	if done > 0 {
		fmt.Printf("Min:     %v\n", sorted[0])
		fmt.Printf("Max:     %v\n", sorted[done-1])
	}
	for _, p := range []int{50, 90, 95, 99} {
		fmt.Printf("P%d:     %v\n", p, percentile(sorted, p))
	}

	printDistribution("SCENARIOS", stats.ByScenario, done)
	printDistribution("USERS", stats.ByUser, done)
	if len(stats.ByOutcome) > 0 {
		printDistribution("REJECTIONS", stats.ByOutcome, done)
	}
}

func printDistribution(title string, counts map[string]int, total int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n----------------- %s -----------------\n", title)
	for _, k := range keys {
		fmt.Printf("%-36s %d (%.1f%%)\n", k, counts[k], float64(counts[k])/float64(total)*100)
	}
}
