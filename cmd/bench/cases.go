// README: Benchmark test cases; HTTP smoke checks, optional infra checks, and load runs.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

// estimatePayload is a three-day Orlando rental exercising the full compare
// path. Dates are fixed so reruns hit the lookup cache when one is wired.
func estimatePayload() map[string]any {
	return map[string]any{
		"rentalStart":  "2025-08-25T10:00:00-04:00",
		"rentalEnd":    "2025-08-27T23:59:59-04:00",
		"jurisdiction": "FL",
		"vehicleType":  "2AxlesAuto",
		"currency":     "USD",
		"days": []map[string]any{
			{"origin": "Miami, FL", "destination": "Orlando, FL"},
			{"origin": "Orlando, FL", "destination": "Miami, FL", "departureTime": "2025-08-27T09:00:00-04:00"},
		},
	}
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "dsn not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Env: Redis connect (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "DB: jurisdiction_rates table exists (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "dsn not configured"}
				}
				var exists bool
				err := r.db.QueryRow(ctx,
					"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
					"jurisdiction_rates",
				).Scan(&exists)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if !exists {
					return Result{Status: "FAIL", Note: "missing table: jurisdiction_rates"}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				resp, err := r.httpc.Get(base + "/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name: "API: CORS preflight",
			Run: func(ctx context.Context, r *Runner) Result {
				req, _ := http.NewRequestWithContext(ctx, http.MethodOptions, base+"/api/estimate", nil)
				resp, err := r.httpc.Do(req)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
					return Result{Status: "FAIL", Note: "missing allow-origin header"}
				}
				return Result{Status: "PASS"}
			},
		},

		httpCase("Estimate: valid three-day rental", base+"/api/estimate", estimatePayload(), []int{200}),

		httpCase("Estimate: missing window -> 400", base+"/api/estimate", map[string]any{
			"jurisdiction": "FL",
			"vehicleType":  "2AxlesAuto",
			"currency":     "USD",
		}, []int{400}),

		httpCase("Estimate: unknown jurisdiction -> 400", base+"/api/estimate", func() map[string]any {
			p := estimatePayload()
			p["jurisdiction"] = "ZZ"
			return p
		}(), []int{400}),

		httpCase("Estimate: end before start -> 400", base+"/api/estimate", func() map[string]any {
			p := estimatePayload()
			p["rentalStart"], p["rentalEnd"] = p["rentalEnd"], p["rentalStart"]
			return p
		}(), []int{400}),

		httpCase("Trips: Orlando wizard plan", base+"/api/trips/plan", map[string]any{
			"rentalStart":     "2025-08-25T10:00:00-04:00",
			"rentalEnd":       "2025-08-29T10:00:00-04:00",
			"disneyDays":      2,
			"universalVisits": 1,
			"airportTrips":    2,
		}, []int{200}),

		httpCase("Trips: empty plan -> 400", base+"/api/trips/plan", map[string]any{
			"rentalStart": "2025-08-25T10:00:00-04:00",
			"rentalEnd":   "2025-08-29T10:00:00-04:00",
		}, []int{400}),

		httpCase("Assist: explain (503 when unconfigured)", base+"/api/assist", map[string]any{
			"prompt": "Is Unlimited worth it for a week in Orlando?",
		}, []int{200, 503}),

		httpCase("Routes: preview (503 when unconfigured)", base+"/api/routes/preview", map[string]any{
			"origin":      "Orlando, FL",
			"destination": "Miami, FL",
		}, []int{200, 503}),

		{
			Name: "Perf: estimate throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/estimate", estimatePayload())
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses []int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}
