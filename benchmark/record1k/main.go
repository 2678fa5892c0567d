package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxRecords int = 1000
var httpHostPort string = "127.0.0.1:5011"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var colors = []string{"blue", "green", "red", "purple", "black", "silver"}
var sources = []string{"China", "Japan", "Korea", "Germany", "USA"}

type recordPayload struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Resistance float64 `json:"resistance"`
	Voltage    float64 `json:"voltage"`
	Source     string  `json:"source"`
	Capacity   int     `json:"capacity"`
	Weight     float64 `json:"weight"`
}

type addResponse struct {
	Success string `json:"success"`
	Barcode int    `json:"barcode"`
}

func randomPayload() recordPayload {
	return recordPayload{
		Name:       fmt.Sprintf("cell-%04d", rnd.Intn(10000)),
		Color:      colors[rnd.Intn(len(colors))],
		Resistance: float64(rnd.Intn(99900))/100.0 + 0.01,
		Voltage:    float64(rnd.Intn(450)) / 100.0,
		Source:     sources[rnd.Intn(len(sources))],
		Capacity:   500 + rnd.Intn(3500),
		Weight:     10.0 + rnd.Float64()*60.0,
	}
}

func insertRecord() (int, error) {
	body, _ := json.Marshal(randomPayload())
	resp, err := http.Post(
		fmt.Sprintf("http://%s/api/records", httpHostPort),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %v", resp.StatusCode)
	}

	var parsed addResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	return parsed.Barcode, nil
}

func fetchRecord(barcode int) error {
	resp, err := http.Get(fmt.Sprintf("http://%s/api/records/%d", httpHostPort, barcode))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %v for barcode %v", resp.StatusCode, barcode)
	}
	return nil
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	barcodes := make([]int, maxRecords)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxRecords; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			barcode, err := insertRecord()
			if err != nil {
				fmt.Printf("\ninsert %v failed: %v\n", i, err)
				return
			}
			barcodes[i] = barcode
			fmt.Printf("\rinserted record %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted %v records: used time=%v seconds, throughput=%v action/second\n",
		maxRecords, usedTime.Seconds(), float64(maxRecords)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxRecords; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if barcodes[i] == 0 {
				return
			}
			if err := fetchRecord(barcodes[i]); err != nil {
				fmt.Printf("\nfetch %v failed: %v\n", i, err)
				return
			}
			fmt.Printf("\rfetched record %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rfetched %v records: used time=%v seconds, throughput=%v action/second\n",
		maxRecords, usedTime.Seconds(), float64(maxRecords)/usedTime.Seconds(),
	)
}
