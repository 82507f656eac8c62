package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/api"
)

var (
	serverURL = flag.String("server", "http://localhost:8080", "Smart farming agent API URL")
	langFlag  = flag.String("lang", "", "Target language code (en|hi|mr), detected from input when empty")
)

func main() {
	flag.Parse()

	// Handle interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nShutting down...")
		os.Exit(0)
	}()

	httpClient := &http.Client{Timeout: 120 * time.Second}

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Println(boldGreen("🌾 KrishiMitra Chat"))
	fmt.Printf("Server: %s\n", boldCyan(*serverURL))
	fmt.Println("Ask about crops, weather, pests, soil or mandi prices.")
	fmt.Println("Type your question and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		userInput := strings.TrimSpace(scanner.Text())
		if userInput == "" {
			continue
		}
		if strings.EqualFold(userInput, "exit") || strings.EqualFold(userInput, "quit") {
			break
		}

		response, err := askAgent(httpClient, userInput)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		fmt.Printf("%s %s\n", boldCyan("KrishiMitra:"), response.Answer)
		if len(response.Sources) > 0 {
			fmt.Printf("%s %s\n", yellow("Sources:"), strings.Join(response.Sources, "; "))
		}
		fmt.Printf("%s confidence=%s detected=%s\n\n", yellow("--"), response.Confidence, response.DetectedLanguage)
	}
}

func askAgent(client *http.Client, query string) (*api.ChatResponse, error) {
	payload, err := json.Marshal(api.ChatRequest{Query: query, Language: *langFlag})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(*serverURL+"/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error.Message != "" {
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, errBody.Error.Message)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var chatResp api.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, err
	}
	return &chatResp, nil
}
