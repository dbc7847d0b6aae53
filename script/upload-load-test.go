package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UploadResult contains metrics for a single upload
type UploadResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Km           int64
	RewardINR    decimal.Decimal
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ExpectedBalance    decimal.Decimal
	RewardMismatches   int
	Lock               sync.Mutex
}

type userResponse struct {
	ID          uint64 `json:"id"`
	VehicleType string `json:"vehicleType"`
}

type uploadResponse struct {
	EstimatedKm int64  `json:"estimatedKm"`
	RewardINR   string `json:"rewardINR"`
}

type walletResponse struct {
	BalanceINR   string `json:"balanceINR"`
	TotalUploads int64  `json:"totalUploads"`
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of uploads to submit")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	vehicle := flag.String("vehicle", string(entity.VehicleERickshaw), "Vehicle type of the load-test driver")
	token := flag.String("token", "", "Bearer token when authentication is enabled")
	delayMs := flag.Int("delay", 0, "Delay between uploads in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	email := fmt.Sprintf("loadtest+%d@evrewards.in", time.Now().UnixNano())
	user, err := createUser(client, *baseURL, *token, email, *vehicle)
	if err != nil {
		fmt.Println("Failed to create load-test user:", err)
		os.Exit(1)
	}

	photo, err := samplePhoto()
	if err != nil {
		fmt.Println("Failed to build sample photo:", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing uploads for user %d (%s, %s)\n", user.ID, email, user.VehicleType)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total uploads: %d\n", *totalRequests)
	fmt.Println("Disable rateLimit or raise its limit, otherwise most uploads are rejected with 429")

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ExpectedBalance: decimal.Zero,
	}

	results := make(chan UploadResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *token, *delayMs, user, photo, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		vehicleType := entity.VehicleType(user.VehicleType)
		for result := range results {
			stats.Lock.Lock()
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			if result.Success {
				stats.SuccessfulRequests++
				stats.ExpectedBalance = stats.ExpectedBalance.Add(result.RewardINR)
				expected := entity.ComputeReward(result.Km, vehicleType).RewardAmount
				if !expected.Equal(result.RewardINR) {
					stats.RewardMismatches++
				}
			} else {
				stats.FailedRequests++
				stats.ErrorCounts[result.Error.Error()]++
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	wallet, err := getWallet(client, *baseURL, *token, user.ID)
	if err != nil {
		fmt.Println("Failed to read wallet:", err)
		os.Exit(1)
	}

	if !printResults(stats, wallet) {
		os.Exit(1)
	}
}

func worker(client *http.Client, baseURL, token string, delayMs int, user *userResponse,
	photo []byte, jobs <-chan int, results chan<- UploadResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		km := int64(50 + rand.Intn(150))
		filename := fmt.Sprintf("odometer_%d.png", km)

		body, contentType, err := multipartUpload(user.ID, filename, photo)
		if err != nil {
			results <- UploadResult{Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/upload", body)
		if err != nil {
			results <- UploadResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", contentType)
		setAuth(req, token)

		start := time.Now()
		resp, err := client.Do(req)
		result := UploadResult{ResponseTime: time.Since(start), Km: km}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if resp.StatusCode != http.StatusCreated {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			resp.Body.Close()
			results <- result
			continue
		}

		var uploaded uploadResponse
		err = json.NewDecoder(resp.Body).Decode(&uploaded)
		resp.Body.Close()
		if err == nil {
			result.RewardINR, err = decimal.NewFromString(uploaded.RewardINR)
		}
		if err != nil {
			result.Error = fmt.Errorf("decode upload: %w", err)
			results <- result
			continue
		}

		result.Km = uploaded.EstimatedKm
		result.Success = true
		results <- result
	}
}

func createUser(client *http.Client, baseURL, token, email, vehicle string) (*userResponse, error) {
	payload, err := json.Marshal(map[string]string{
		"email":       email,
		"name":        "Load Test Driver",
		"vehicleType": vehicle,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/user", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)

	var user userResponse
	if err := doJSON(client, req, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func getWallet(client *http.Client, baseURL, token string, userID uint64) (*walletResponse, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/wallet/%d", baseURL, userID), nil)
	if err != nil {
		return nil, err
	}
	setAuth(req, token)

	var wallet walletResponse
	if err := doJSON(client, req, http.StatusOK, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func doJSON(client *http.Client, req *http.Request, want int, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP status code %d: %s", resp.StatusCode, raw)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func multipartUpload(userID uint64, filename string, photo []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("userId", fmt.Sprint(userID)); err != nil {
		return nil, "", err
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(photo); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

// samplePhoto renders a small gradient so every upload passes decoding
func samplePhoto() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// printResults reports the run and whether the wallet matches the sum of
// accepted rewards
func printResults(stats *TestStats, wallet *walletResponse) bool {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var p50, p90, p99, avg time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		var total time.Duration
		for _, d := range sorted {
			total += d
		}
		avg = total / time.Duration(n)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Uploads:       %d\n", stats.TotalRequests)
	fmt.Printf("Accepted Uploads:    %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Uploads:      %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Accepted per second: %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n----------------- WALLET CHECK -----------------")
	fmt.Printf("Sum of rewards:      %s\n", entity.FormatAmount(stats.ExpectedBalance))
	fmt.Printf("Wallet balance:      %s\n", wallet.BalanceINR)
	fmt.Printf("Wallet uploads:      %d\n", wallet.TotalUploads)
	fmt.Printf("Reward mismatches:   %d\n", stats.RewardMismatches)

	balance, err := decimal.NewFromString(wallet.BalanceINR)
	ok := err == nil &&
		balance.Equal(stats.ExpectedBalance) &&
		wallet.TotalUploads == int64(stats.SuccessfulRequests) &&
		stats.RewardMismatches == 0

	fmt.Println("\n================= CONCLUSION =================")
	if ok {
		fmt.Println("Wallet is consistent with every accepted upload")
	} else {
		fmt.Println("Wallet does NOT match the accepted uploads")
	}
	fmt.Println("================================================")
	return ok
}
