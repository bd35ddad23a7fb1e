package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mauv0809/ace-tracker/internal/tennis"
	"github.com/spf13/cobra"
)

var (
	topCount   int
	rawOutput  bool
	reason     string
	httpClient = &http.Client{Timeout: 30 * time.Second}
)

func init() {
	playersCmd.Flags().IntVar(&topCount, "top", 0, "Only show the N best ranked players")
	invalidateCmd.Flags().StringVar(&reason, "reason", "", "Why the cache is being invalidated")
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "Print the raw response body instead of a table")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(invalidateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players in ranking order",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/players"
		if topCount > 0 {
			endpoint = fmt.Sprintf("/players?top=%d", topCount)
		}
		if rawOutput {
			return performRequest(http.MethodGet, endpoint)
		}

		var players []tennis.Player
		if err := getJSON(endpoint, &players); err != nil {
			return err
		}
		renderPlayers(os.Stdout, players)
		return nil
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show one player's summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/players/" + url.PathEscape(args[0]) + "/summary"
		if rawOutput {
			return performRequest(http.MethodGet, endpoint)
		}

		var summary tennis.Summary
		if err := getJSON(endpoint, &summary); err != nil {
			return err
		}
		renderSummary(os.Stdout, summary)
		return nil
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches <id>",
	Short: "Show a player's matches, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/players/" + url.PathEscape(args[0]) + "/matches"
		if rawOutput {
			return performRequest(http.MethodGet, endpoint)
		}

		var matches []tennis.MatchResult
		if err := getJSON(endpoint, &matches); err != nil {
			return err
		}
		renderMatches(os.Stdout, matches)
		return nil
	},
}

var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Clear the rankings cache on every instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/cache/invalidate?reason="+url.QueryEscape(reason))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the archived match export and its last import",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rawOutput {
			return performRequest(http.MethodGet, "/archive/status")
		}

		var status archiveStatus
		if err := getJSON("/archive/status", &status); err != nil {
			return err
		}
		renderStatus(os.Stdout, status)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

func getJSON(endpoint string, v any) error {
	resp, err := httpClient.Get(host + endpoint)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
