//go:build ignore

// This script imports products from a CSV file into a running service.
// CSV columns: lot number, label, price, kg, unit, price-by-weight flag (Y/N).
// Run with: go run scripts/import_products.go [products.csv] [base URL]
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

func main() {
	path := "products.csv"
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if len(os.Args) > 2 {
		baseURL = os.Args[2]
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	requestURL := baseURL + "/api/products"
	client := &http.Client{}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
			os.Exit(1)
		}
		if len(record) < 6 {
			fmt.Fprintf(os.Stderr, "Skipping short record: %v\n", record)
			continue
		}

		price, _ := strconv.ParseFloat(record[2], 64)
		kg, _ := strconv.ParseFloat(record[3], 64)

		product := map[string]interface{}{
			"lot_number":      record[0],
			"label":           record[1],
			"price":           price,
			"kg":              kg,
			"unit":            record[4],
			"is_active":       true,
			"price_by_weight": record[5] == "Y",
		}

		payload, err := json.Marshal(product)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling %s: %v\n", record[1], err)
			os.Exit(1)
		}

		req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(payload))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building request: %v\n", err)
			os.Exit(1)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error posting %s: %v\n", record[1], err)
			os.Exit(1)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			fmt.Fprintf(os.Stderr, "Unexpected status %d for %s: %s\n", resp.StatusCode, record[1], body)
			os.Exit(1)
		}

		imported++
		fmt.Printf("Imported %s\n", record[1])
	}

	fmt.Printf("Done: %d products imported\n", imported)
}
