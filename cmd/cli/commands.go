package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered club players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the persisted match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var stateCmd = &cobra.Command{
	Use:   "state <matchID>",
	Short: "Show the live scoring state of a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/match/state?matchID=" + args[0])
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <matchID>",
	Short: "Advance a match to its next innings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"match_id":%q}`, args[0])
		return performPostRequest("/match/advance", body)
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the completion pipeline over finalized matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/process")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career stats for every player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats/all")
	},
}

var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Show the top performers for a metric (runs, wickets, wins, mom)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats/top?metric=" + args[0])
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
