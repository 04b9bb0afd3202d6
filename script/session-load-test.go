package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// actionPayload is the body of POST /players/:playerId/actions
type actionPayload struct {
	Operation string `json:"operation"`
	Amount    string `json:"amount"`
}

type playerResponse struct {
	PlayerID string `json:"playerId"`
}

type summaryResponse struct {
	Balance   string `json:"balance"`
	Deposited string `json:"deposited"`
	Withdrawn string `json:"withdrawn"`
	Wagered   string `json:"wagered"`
	Won       string `json:"won"`
	Bets      int    `json:"bets"`
}

// scenario is one kind of action fired at the session
type scenario struct {
	Name      string
	Operation string
	Amount    string
}

type result struct {
	Scenario     string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

type loadTestOptions struct {
	baseURL     string
	concurrency int
	requests    int
	delay       time.Duration
	bankroll    string
}

var scenarios = []scenario{
	{"Bet Min", "bet", "1.00"},
	{"Bet Mid", "bet", "5.50"},
	{"Bet Max", "bet", "10.00"},
	{"Bet Over", "bet", "10.01"},
	{"Deposit", "deposit", "25.00"},
	{"Withdraw", "withdraw", "15.00"},
}

func main() {
	var opts loadTestOptions

	cmd := &cobra.Command{
		Use:   "session-load-test",
		Short: "Fires concurrent actions at one casino session and checks the wallet totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoadTest(opts)
		},
	}
	cmd.Flags().StringVar(&opts.baseURL, "url", "http://127.0.0.1:8080", "Base URL of the casino HTTP API")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "Number of concurrent workers")
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 200, "Total number of actions to submit")
	cmd.Flags().DurationVar(&opts.delay, "delay", 20*time.Millisecond, "Delay between actions of one worker")
	cmd.Flags().StringVar(&opts.bankroll, "bankroll", "500.00", "Initial deposit")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLoadTest(opts loadTestOptions) error {
	client := &http.Client{Timeout: 10 * time.Second}

	playerID, err := createPlayer(client, opts.baseURL)
	if err != nil {
		return fmt.Errorf("creating player: %w", err)
	}
	if _, err := submit(client, opts.baseURL, playerID, actionPayload{Operation: "deposit", Amount: opts.bankroll}); err != nil {
		return fmt.Errorf("initial deposit: %w", err)
	}

	fmt.Printf("Player %s funded with $%s\n", playerID, opts.bankroll)
	fmt.Printf("Concurrency: %d, actions: %d, delay: %v\n", opts.concurrency, opts.requests, opts.delay)

	jobs := make(chan scenario, opts.requests)
	for i := 0; i < opts.requests; i++ {
		jobs <- scenarios[rand.Intn(len(scenarios))]
	}
	close(jobs)

	results := make(chan result, opts.requests)
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if opts.delay > 0 {
					time.Sleep(opts.delay)
				}
				began := time.Now()
				status, err := submit(client, opts.baseURL, playerID, actionPayload{Operation: job.Operation, Amount: job.Amount})
				results <- result{Scenario: job.Name, StatusCode: status, ResponseTime: time.Since(began), Err: err}
			}
		}()
	}
	wg.Wait()
	close(results)
	elapsed := time.Since(start)

	collected := make([]result, 0, opts.requests)
	for r := range results {
		collected = append(collected, r)
	}
	printResults(collected, elapsed)

	return checkSummary(client, opts.baseURL, playerID)
}

func createPlayer(client *http.Client, baseURL string) (string, error) {
	resp, err := client.Post(baseURL+"/players", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var created playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.PlayerID, nil
}

// submit posts one action; rejected actions are not transport errors
func submit(client *http.Client, baseURL, playerID string, payload actionPayload) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(fmt.Sprintf("%s/players/%s/actions", baseURL, playerID), "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// checkSummary verifies that the balance equals deposits minus withdrawals minus stakes plus payouts
func checkSummary(client *http.Client, baseURL, playerID string) error {
	resp, err := client.Get(fmt.Sprintf("%s/players/%s/summary", baseURL, playerID))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return err
	}

	parse := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	expected := parse(summary.Deposited).
		Sub(parse(summary.Withdrawn)).
		Sub(parse(summary.Wagered)).
		Add(parse(summary.Won))

	fmt.Println("\n----------------- WALLET -----------------")
	fmt.Printf("Balance: $%s after %d bets (wagered $%s, won $%s)\n",
		summary.Balance, summary.Bets, summary.Wagered, summary.Won)

	if !expected.Equal(parse(summary.Balance)) {
		return fmt.Errorf("balance %s does not match history total %s", summary.Balance, expected.StringFixed(2))
	}
	fmt.Println("Balance matches transaction history")
	return nil
}

func printResults(results []result, elapsed time.Duration) {
	failed := lo.Filter(results, func(r result, _ int) bool { return r.Err != nil })
	byStatus := lo.CountValuesBy(results, func(r result) int { return r.StatusCode })
	byScenario := lo.CountValuesBy(results, func(r result) string { return r.Scenario })

	times := lo.Map(results, func(r result, _ int) time.Duration { return r.ResponseTime })
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Actions:   %d\n", len(results))
	fmt.Printf("Transport/5xx:   %d\n", len(failed))
	fmt.Printf("Total Time:      %.2f seconds\n", elapsed.Seconds())
	if elapsed > 0 {
		fmt.Printf("Throughput:      %.2f actions/s\n", float64(len(results))/elapsed.Seconds())
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for status, count := range byStatus {
		fmt.Printf("%d: %d\n", status, count)
	}

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range byScenario {
		fmt.Printf("%-10s: %d\n", name, count)
	}
}
