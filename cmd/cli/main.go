package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a domain to check (e.g., example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fmt.Println("Nothing to check.")
		return
	}

	body, _ := json.Marshal(map[string]string{"domain": raw})
	resp, err := http.Post(api+"/api/check-single", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("API returned status:", resp.Status)
		return
	}

	var result struct {
		Domain       string          `json:"domain"`
		Status       json.RawMessage `json:"status"`
		Message      string          `json:"message"`
		Timestamp    string          `json:"timestamp"`
		ResponseTime *float64        `json:"response_time"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Println("Bad response:", err)
		return
	}

	status := strings.Trim(string(result.Status), `"`)
	fmt.Printf("%s  %s  [%s]", result.Domain, result.Message, status)
	if result.ResponseTime != nil {
		fmt.Printf("  %.2fs", *result.ResponseTime)
	}
	fmt.Println()
}
